package repositories

import (
	"context"

	"catering_backend/internal/models"
)

const eventColumns = `id, name, client_id, status, start_time, end_time, guest_count, location, notes, is_sample, created_at, updated_at`

func scanEvent(row scanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Name, &e.ClientID, &e.Status, &e.StartTime, &e.EndTime, &e.GuestCount,
		&e.Location, &e.Notes, &e.IsSample, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// GetEvents lists events, soonest first.
func (s *LocalStore) GetEvents(ctx context.Context) ([]models.Event, error) {
	events, err := queryAll(ctx, s.db, s.q(`SELECT `+eventColumns+` FROM events ORDER BY start_time, id`), scanEvent)
	if err != nil {
		return nil, storeErr("event", "list", err)
	}
	return events, nil
}

func (s *LocalStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	e, err := scanEvent(s.db.QueryRowContext(ctx, s.q(`SELECT `+eventColumns+` FROM events WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("event", "get", err)
	}
	return &e, nil
}

func (s *LocalStore) GetEventsByClient(ctx context.Context, clientID int64) ([]models.Event, error) {
	events, err := queryAll(ctx, s.db,
		s.q(`SELECT `+eventColumns+` FROM events WHERE client_id = ? ORDER BY start_time, id`), scanEvent, clientID)
	if err != nil {
		return nil, storeErr("event", "list by client", err)
	}
	return events, nil
}

func (s *LocalStore) AddEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	id, err := s.insertEvent(ctx, s.db, &event)
	if err != nil {
		return nil, storeErr("event", "create", err)
	}
	return s.GetEvent(ctx, id)
}

func (s *LocalStore) insertEvent(ctx context.Context, executor SQLExecutor, event *models.Event) (int64, error) {
	if event.Status == "" {
		event.Status = models.EventStatusInquiry
	}
	now := s.now()
	return s.insert(ctx, executor,
		`INSERT INTO events (name, client_id, status, start_time, end_time, guest_count, location, notes, is_sample, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.Name, event.ClientID, event.Status, event.StartTime.UTC(), event.EndTime.UTC(), event.GuestCount,
		event.Location, event.Notes, event.IsSample, now, now)
}

func (s *LocalStore) UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	if err := s.updateRow(ctx, models.TableEvents, "event", id, patch, true); err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, id)
}

// DeleteEvent removes an event together with its assignments, tasks and shifts.
func (s *LocalStore) DeleteEvent(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableEvents, "event", id)
}
