package federation

import (
	"context"
	"io"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

// GetMessages reads the mailbox from the store the user lives in.
func (r *Router) GetMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	return gatherScoped(ctx, r, "message", userID, datastore.DataService.GetMessages)
}

func (r *Router) AddMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	return create(ctx, r, "message", message, datastore.DataService.AddMessage)
}

func (r *Router) MarkMessageRead(ctx context.Context, id int64) error {
	return remove(ctx, r, "message", "mark read", id, datastore.DataService.MarkMessageRead)
}

func (r *Router) DeleteMessage(ctx context.Context, id int64) error {
	return remove(ctx, r, "message", "delete", id, datastore.DataService.DeleteMessage)
}

// UploadMessageAttachment sends the file to the store holding the message.
func (r *Router) UploadMessageAttachment(ctx context.Context, messageID int64, fileName string, content io.Reader) (*models.MessageAttachment, error) {
	ref, err := ParseRef(messageID)
	if err != nil {
		return nil, invalidID("message attachment", "upload", err)
	}
	att, err := r.store(ref.Origin).UploadMessageAttachment(ctx, ref.Native, fileName, content)
	if err != nil {
		return nil, err
	}
	att.MessageID = ref.Shared()
	return att, nil
}
