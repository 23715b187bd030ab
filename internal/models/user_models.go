package models

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusInvited  = "invited"
)

// User is an admin, a staff member or a catering client.
type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name" binding:"required"`
	Email      string    `json:"email" db:"email" binding:"required"` // unique within a store
	Role       string    `json:"role" db:"role"`
	Status     string    `json:"status" db:"status"`
	HourlyRate *float64  `json:"hourly_rate,omitempty" db:"hourly_rate"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	IsSample   bool      `json:"is_sample" db:"is_sample"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (User) Schema() Schema {
	return Schema{Table: TableUsers, SampleFlag: true}
}

func (u User) SampleData() bool { return u.IsSample }

// UserPatch is a sparse update of a User. Nil fields are left unchanged.
type UserPatch struct {
	Name       *string  `json:"name,omitempty" db:"name"`
	Email      *string  `json:"email,omitempty" db:"email"`
	Role       *string  `json:"role,omitempty" db:"role"`
	Status     *string  `json:"status,omitempty" db:"status"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" db:"hourly_rate"`
	Phone      *string  `json:"phone,omitempty" db:"phone"`
}

func (UserPatch) Schema() Schema { return User{}.Schema() }
