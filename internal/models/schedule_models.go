package models

import "time"

// StaffAvailability is a weekly window in which a staff member can work.
type StaffAvailability struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"user_id" db:"user_id" binding:"required"`
	DayOfWeek int     `json:"day_of_week" db:"day_of_week"` // 0 = Sunday
	StartTime string  `json:"start_time" db:"start_time"`   // HH:MM
	EndTime   string  `json:"end_time" db:"end_time"`       // HH:MM
	Notes     *string `json:"notes,omitempty" db:"notes"`
}

func (StaffAvailability) Schema() Schema {
	return Schema{
		Table: TableStaffAvailability,
		ForeignKeys: []ForeignKey{
			{Field: "UserID", Column: "user_id", References: TableUsers, Required: true},
		},
	}
}

// StaffAvailabilityPatch is a sparse update of a StaffAvailability window.
type StaffAvailabilityPatch struct {
	DayOfWeek *int    `json:"day_of_week,omitempty" db:"day_of_week"`
	StartTime *string `json:"start_time,omitempty" db:"start_time"`
	EndTime   *string `json:"end_time,omitempty" db:"end_time"`
	Notes     *string `json:"notes,omitempty" db:"notes"`
}

func (StaffAvailabilityPatch) Schema() Schema { return StaffAvailability{}.Schema() }

// BlackoutDate is a day a staff member cannot work.
type BlackoutDate struct {
	ID     int64   `json:"id" db:"id"`
	UserID int64   `json:"user_id" db:"user_id" binding:"required"`
	Date   string  `json:"date" db:"date" binding:"required"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty" db:"reason"`
}

func (BlackoutDate) Schema() Schema {
	return Schema{
		Table: TableBlackoutDates,
		ForeignKeys: []ForeignKey{
			{Field: "UserID", Column: "user_id", References: TableUsers, Required: true},
		},
	}
}

// Open shift statuses.
const (
	ShiftStatusOpen      = "open"
	ShiftStatusFilled    = "filled"
	ShiftStatusCancelled = "cancelled"
)

// OpenShift is an unfilled staffing slot for an event that staff can bid on.
type OpenShift struct {
	ID             int64     `json:"id" db:"id"`
	EventID        int64     `json:"event_id" db:"event_id" binding:"required"`
	Role           string    `json:"role" db:"role"`
	StartTime      time.Time `json:"start_time" db:"start_time"`
	EndTime        time.Time `json:"end_time" db:"end_time"`
	HourlyRate     *float64  `json:"hourly_rate,omitempty" db:"hourly_rate"`
	Status         string    `json:"status" db:"status"`
	AssignedUserID *int64    `json:"assigned_user_id,omitempty" db:"assigned_user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

func (OpenShift) Schema() Schema {
	return Schema{
		Table: TableOpenShifts,
		ForeignKeys: []ForeignKey{
			{Field: "EventID", Column: "event_id", References: TableEvents, Required: true},
			{Field: "AssignedUserID", Column: "assigned_user_id", References: TableUsers},
		},
	}
}

// OpenShiftPatch is a sparse update of an OpenShift.
type OpenShiftPatch struct {
	Role           *string    `json:"role,omitempty" db:"role"`
	StartTime      *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty" db:"end_time"`
	HourlyRate     *float64   `json:"hourly_rate,omitempty" db:"hourly_rate"`
	Status         *string    `json:"status,omitempty" db:"status"`
	AssignedUserID *int64     `json:"assigned_user_id,omitempty" db:"assigned_user_id"`
}

func (OpenShiftPatch) Schema() Schema { return OpenShift{}.Schema() }

// Shift bid statuses.
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

// ShiftBid is a staff member's request to take an open shift.
type ShiftBid struct {
	ID        int64     `json:"id" db:"id"`
	ShiftID   int64     `json:"shift_id" db:"shift_id" binding:"required"`
	UserID    int64     `json:"user_id" db:"user_id" binding:"required"`
	Status    string    `json:"status" db:"status"`
	Note      *string   `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (ShiftBid) Schema() Schema {
	return Schema{
		Table: TableShiftBids,
		ForeignKeys: []ForeignKey{
			{Field: "ShiftID", Column: "shift_id", References: TableOpenShifts, Required: true},
			{Field: "UserID", Column: "user_id", References: TableUsers, Required: true},
		},
	}
}

// ValidBidStatus reports whether s is a known shift bid status.
func ValidBidStatus(s string) bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected:
		return true
	}
	return false
}
