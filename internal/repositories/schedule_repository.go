package repositories

import (
	"context"
	"fmt"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

const (
	availabilityColumns = `id, user_id, day_of_week, start_time, end_time, notes`
	blackoutColumns     = `id, user_id, date, reason`
	openShiftColumns    = `id, event_id, role, start_time, end_time, hourly_rate, status, assigned_user_id, created_at`
	shiftBidColumns     = `id, shift_id, user_id, status, note, created_at`
)

func scanAvailability(row scanner) (models.StaffAvailability, error) {
	var a models.StaffAvailability
	err := row.Scan(&a.ID, &a.UserID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.Notes)
	return a, err
}

func scanBlackout(row scanner) (models.BlackoutDate, error) {
	var b models.BlackoutDate
	err := row.Scan(&b.ID, &b.UserID, &b.Date, &b.Reason)
	return b, err
}

func scanOpenShift(row scanner) (models.OpenShift, error) {
	var o models.OpenShift
	err := row.Scan(&o.ID, &o.EventID, &o.Role, &o.StartTime, &o.EndTime, &o.HourlyRate, &o.Status,
		&o.AssignedUserID, &o.CreatedAt)
	return o, err
}

func scanShiftBid(row scanner) (models.ShiftBid, error) {
	var b models.ShiftBid
	err := row.Scan(&b.ID, &b.ShiftID, &b.UserID, &b.Status, &b.Note, &b.CreatedAt)
	return b, err
}

// GetStaffAvailability lists the weekly availability windows of a user.
func (s *LocalStore) GetStaffAvailability(ctx context.Context, userID int64) ([]models.StaffAvailability, error) {
	list, err := queryAll(ctx, s.db,
		s.q(`SELECT `+availabilityColumns+` FROM staff_availability WHERE user_id = ? ORDER BY day_of_week, start_time, id`),
		scanAvailability, userID)
	if err != nil {
		return nil, storeErr("staff availability", "list", err)
	}
	return list, nil
}

func (s *LocalStore) getAvailability(ctx context.Context, id int64) (*models.StaffAvailability, error) {
	a, err := scanAvailability(s.db.QueryRowContext(ctx, s.q(`SELECT `+availabilityColumns+` FROM staff_availability WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("staff availability", "get", err)
	}
	return &a, nil
}

func (s *LocalStore) AddStaffAvailability(ctx context.Context, availability models.StaffAvailability) (*models.StaffAvailability, error) {
	id, err := s.insertAvailability(ctx, s.db, &availability)
	if err != nil {
		return nil, storeErr("staff availability", "create", err)
	}
	return s.getAvailability(ctx, id)
}

func (s *LocalStore) insertAvailability(ctx context.Context, executor SQLExecutor, a *models.StaffAvailability) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO staff_availability (user_id, day_of_week, start_time, end_time, notes) VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.DayOfWeek, a.StartTime, a.EndTime, a.Notes)
}

func (s *LocalStore) UpdateStaffAvailability(ctx context.Context, id int64, patch models.StaffAvailabilityPatch) (*models.StaffAvailability, error) {
	if err := s.updateRow(ctx, models.TableStaffAvailability, "staff availability", id, patch, false); err != nil {
		return nil, err
	}
	return s.getAvailability(ctx, id)
}

func (s *LocalStore) DeleteStaffAvailability(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableStaffAvailability, "staff availability", id)
}

func (s *LocalStore) GetBlackoutDates(ctx context.Context, userID int64) ([]models.BlackoutDate, error) {
	list, err := queryAll(ctx, s.db,
		s.q(`SELECT `+blackoutColumns+` FROM blackout_dates WHERE user_id = ? ORDER BY date, id`), scanBlackout, userID)
	if err != nil {
		return nil, storeErr("blackout date", "list", err)
	}
	return list, nil
}

func (s *LocalStore) AddBlackoutDate(ctx context.Context, blackout models.BlackoutDate) (*models.BlackoutDate, error) {
	id, err := s.insertBlackout(ctx, s.db, &blackout)
	if err != nil {
		return nil, storeErr("blackout date", "create", err)
	}
	b, err := scanBlackout(s.db.QueryRowContext(ctx, s.q(`SELECT `+blackoutColumns+` FROM blackout_dates WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("blackout date", "get", err)
	}
	return &b, nil
}

func (s *LocalStore) insertBlackout(ctx context.Context, executor SQLExecutor, b *models.BlackoutDate) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO blackout_dates (user_id, date, reason) VALUES (?, ?, ?)`, b.UserID, b.Date, b.Reason)
}

func (s *LocalStore) DeleteBlackoutDate(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableBlackoutDates, "blackout date", id)
}

// GetOpenShifts lists every shift, soonest first.
func (s *LocalStore) GetOpenShifts(ctx context.Context) ([]models.OpenShift, error) {
	shifts, err := queryAll(ctx, s.db, s.q(`SELECT `+openShiftColumns+` FROM open_shifts ORDER BY start_time, id`), scanOpenShift)
	if err != nil {
		return nil, storeErr("open shift", "list", err)
	}
	return shifts, nil
}

func (s *LocalStore) GetOpenShift(ctx context.Context, id int64) (*models.OpenShift, error) {
	o, err := scanOpenShift(s.db.QueryRowContext(ctx, s.q(`SELECT `+openShiftColumns+` FROM open_shifts WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("open shift", "get", err)
	}
	return &o, nil
}

func (s *LocalStore) AddOpenShift(ctx context.Context, shift models.OpenShift) (*models.OpenShift, error) {
	id, err := s.insertOpenShift(ctx, s.db, &shift)
	if err != nil {
		return nil, storeErr("open shift", "create", err)
	}
	return s.GetOpenShift(ctx, id)
}

func (s *LocalStore) insertOpenShift(ctx context.Context, executor SQLExecutor, o *models.OpenShift) (int64, error) {
	if o.Status == "" {
		o.Status = models.ShiftStatusOpen
	}
	return s.insert(ctx, executor,
		`INSERT INTO open_shifts (event_id, role, start_time, end_time, hourly_rate, status, assigned_user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.EventID, o.Role, o.StartTime.UTC(), o.EndTime.UTC(), o.HourlyRate, o.Status, o.AssignedUserID, s.now())
}

func (s *LocalStore) UpdateOpenShift(ctx context.Context, id int64, patch models.OpenShiftPatch) (*models.OpenShift, error) {
	if err := s.updateRow(ctx, models.TableOpenShifts, "open shift", id, patch, false); err != nil {
		return nil, err
	}
	return s.GetOpenShift(ctx, id)
}

// DeleteOpenShift removes a shift and its bids.
func (s *LocalStore) DeleteOpenShift(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableOpenShifts, "open shift", id)
}

func (s *LocalStore) GetShiftBids(ctx context.Context, shiftID int64) ([]models.ShiftBid, error) {
	bids, err := queryAll(ctx, s.db, s.q(`SELECT `+shiftBidColumns+` FROM shift_bids WHERE shift_id = ? ORDER BY created_at, id`), scanShiftBid, shiftID)
	if err != nil {
		return nil, storeErr("shift bid", "list", err)
	}
	return bids, nil
}

func (s *LocalStore) getShiftBid(ctx context.Context, id int64) (*models.ShiftBid, error) {
	b, err := scanShiftBid(s.db.QueryRowContext(ctx, s.q(`SELECT `+shiftBidColumns+` FROM shift_bids WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("shift bid", "get", err)
	}
	return &b, nil
}

func (s *LocalStore) AddShiftBid(ctx context.Context, bid models.ShiftBid) (*models.ShiftBid, error) {
	id, err := s.insertShiftBid(ctx, s.db, &bid)
	if err != nil {
		return nil, storeErr("shift bid", "create", err)
	}
	return s.getShiftBid(ctx, id)
}

func (s *LocalStore) insertShiftBid(ctx context.Context, executor SQLExecutor, b *models.ShiftBid) (int64, error) {
	if b.Status == "" {
		b.Status = models.BidStatusPending
	}
	return s.insert(ctx, executor,
		`INSERT INTO shift_bids (shift_id, user_id, status, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.ShiftID, b.UserID, b.Status, b.Note, s.now())
}

// UpdateShiftBidStatus moves a bid to pending, accepted or rejected.
func (s *LocalStore) UpdateShiftBidStatus(ctx context.Context, id int64, status string) (*models.ShiftBid, error) {
	if !models.ValidBidStatus(status) {
		return nil, datastore.Wrap(datastore.StoreLocal, "shift bid", "update status",
			fmt.Errorf("%w: unknown bid status %q", datastore.ErrValidation, status))
	}
	patch := struct {
		Status *string `db:"status"`
	}{Status: &status}
	if err := s.updateRow(ctx, models.TableShiftBids, "shift bid", id, patch, false); err != nil {
		return nil, err
	}
	return s.getShiftBid(ctx, id)
}
