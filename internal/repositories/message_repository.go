package repositories

import (
	"context"
	"io"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

const messageColumns = `id, sender_id, recipient_id, event_id, body, attachment_url, is_read, created_at`

func scanMessage(row scanner) (models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.EventID, &m.Body, &m.AttachmentURL, &m.IsRead, &m.CreatedAt)
	return m, err
}

// GetMessages lists the messages a user sent or received, newest first.
func (s *LocalStore) GetMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	msgs, err := queryAll(ctx, s.db,
		s.q(`SELECT `+messageColumns+` FROM messages WHERE sender_id = ? OR recipient_id = ? ORDER BY created_at DESC, id DESC`),
		scanMessage, userID, userID)
	if err != nil {
		return nil, storeErr("message", "list", err)
	}
	return msgs, nil
}

func (s *LocalStore) AddMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	id, err := s.insertMessage(ctx, s.db, &message)
	if err != nil {
		return nil, storeErr("message", "create", err)
	}
	m, err := scanMessage(s.db.QueryRowContext(ctx, s.q(`SELECT `+messageColumns+` FROM messages WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("message", "get", err)
	}
	return &m, nil
}

func (s *LocalStore) insertMessage(ctx context.Context, executor SQLExecutor, m *models.Message) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO messages (sender_id, recipient_id, event_id, body, attachment_url, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.SenderID, m.RecipientID, m.EventID, m.Body, m.AttachmentURL, m.IsRead, s.now())
}

func (s *LocalStore) MarkMessageRead(ctx context.Context, id int64) error {
	read := true
	patch := struct {
		IsRead *bool `db:"is_read"`
	}{IsRead: &read}
	return s.updateRow(ctx, models.TableMessages, "message", id, patch, false)
}

func (s *LocalStore) DeleteMessage(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableMessages, "message", id)
}

// UploadMessageAttachment is not available locally: the embedded store keeps no files.
func (s *LocalStore) UploadMessageAttachment(_ context.Context, _ int64, _ string, _ io.Reader) (*models.MessageAttachment, error) {
	return nil, datastore.Wrap(datastore.StoreLocal, "message attachment", "upload", datastore.ErrUnsupportedOperation)
}
