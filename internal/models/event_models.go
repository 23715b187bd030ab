package models

import "time"

// Event lifecycle: inquiry -> quote -> approved -> active -> completed.
const (
	EventStatusInquiry   = "inquiry"
	EventStatusQuote     = "quote"
	EventStatusApproved  = "approved"
	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is a catered occasion, optionally booked by a client user.
type Event struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name" binding:"required"`
	ClientID   *int64    `json:"client_id,omitempty" db:"client_id"`
	Status     string    `json:"status" db:"status"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	EndTime    time.Time `json:"end_time" db:"end_time"`
	GuestCount int       `json:"guest_count" db:"guest_count"`
	Location   *string   `json:"location,omitempty" db:"location"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	IsSample   bool      `json:"is_sample" db:"is_sample"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (Event) Schema() Schema {
	return Schema{
		Table:      TableEvents,
		SampleFlag: true,
		ForeignKeys: []ForeignKey{
			{Field: "ClientID", Column: "client_id", References: TableUsers},
		},
	}
}

func (e Event) SampleData() bool { return e.IsSample }

// EventPatch is a sparse update of an Event.
type EventPatch struct {
	Name       *string    `json:"name,omitempty" db:"name"`
	ClientID   *int64     `json:"client_id,omitempty" db:"client_id"`
	Status     *string    `json:"status,omitempty" db:"status"`
	StartTime  *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty" db:"end_time"`
	GuestCount *int       `json:"guest_count,omitempty" db:"guest_count"`
	Location   *string    `json:"location,omitempty" db:"location"`
	Notes      *string    `json:"notes,omitempty" db:"notes"`
}

func (EventPatch) Schema() Schema { return Event{}.Schema() }

// EventMenuItem attaches a menu item to an event with event-specific quantity and price.
type EventMenuItem struct {
	ID            int64    `json:"id" db:"id"`
	EventID       int64    `json:"event_id" db:"event_id" binding:"required"`
	MenuItemID    int64    `json:"menu_item_id" db:"menu_item_id" binding:"required"`
	Quantity      int      `json:"quantity" db:"quantity"`
	PriceOverride *float64 `json:"price_override,omitempty" db:"price_override"`
	Notes         *string  `json:"notes,omitempty" db:"notes"`
	MenuItemName  string   `json:"menu_item_name,omitempty" db:"-"`
	BasePrice     float64  `json:"base_price,omitempty" db:"-"`
}

func (EventMenuItem) Schema() Schema {
	return Schema{
		Table: TableEventMenuItems,
		ForeignKeys: []ForeignKey{
			{Field: "EventID", Column: "event_id", References: TableEvents, Required: true},
			{Field: "MenuItemID", Column: "menu_item_id", References: TableMenuItems, Required: true},
		},
	}
}

// UnitPrice is the override when present, the menu item's price otherwise.
func (e EventMenuItem) UnitPrice() float64 {
	if e.PriceOverride != nil {
		return *e.PriceOverride
	}
	return e.BasePrice
}

// EventMenuItemPatch is a sparse update of an EventMenuItem.
type EventMenuItemPatch struct {
	Quantity      *int     `json:"quantity,omitempty" db:"quantity"`
	PriceOverride *float64 `json:"price_override,omitempty" db:"price_override"`
	Notes         *string  `json:"notes,omitempty" db:"notes"`
}

func (EventMenuItemPatch) Schema() Schema { return EventMenuItem{}.Schema() }

// EventStaff assigns a user to work an event.
type EventStaff struct {
	ID                 int64    `json:"id" db:"id"`
	EventID            int64    `json:"event_id" db:"event_id" binding:"required"`
	UserID             int64    `json:"user_id" db:"user_id" binding:"required"`
	Role               *string  `json:"role,omitempty" db:"role"`
	HourlyRateOverride *float64 `json:"hourly_rate_override,omitempty" db:"hourly_rate_override"`
	UserName           string   `json:"user_name,omitempty" db:"-"`
}

func (EventStaff) Schema() Schema {
	return Schema{
		Table: TableEventStaff,
		ForeignKeys: []ForeignKey{
			{Field: "EventID", Column: "event_id", References: TableEvents, Required: true},
			{Field: "UserID", Column: "user_id", References: TableUsers, Required: true},
		},
	}
}

// EventStaffPatch is a sparse update of an EventStaff assignment.
type EventStaffPatch struct {
	Role               *string  `json:"role,omitempty" db:"role"`
	HourlyRateOverride *float64 `json:"hourly_rate_override,omitempty" db:"hourly_rate_override"`
}

func (EventStaffPatch) Schema() Schema { return EventStaff{}.Schema() }

// EventEquipment reserves equipment for an event.
type EventEquipment struct {
	ID                 int64    `json:"id" db:"id"`
	EventID            int64    `json:"event_id" db:"event_id" binding:"required"`
	EquipmentID        int64    `json:"equipment_id" db:"equipment_id" binding:"required"`
	Quantity           int      `json:"quantity" db:"quantity"`
	RentalCostOverride *float64 `json:"rental_cost_override,omitempty" db:"rental_cost_override"`
	EquipmentName      string   `json:"equipment_name,omitempty" db:"-"`
}

func (EventEquipment) Schema() Schema {
	return Schema{
		Table: TableEventEquipment,
		ForeignKeys: []ForeignKey{
			{Field: "EventID", Column: "event_id", References: TableEvents, Required: true},
			{Field: "EquipmentID", Column: "equipment_id", References: TableEquipment, Required: true},
		},
	}
}

// EventEquipmentPatch is a sparse update of an EventEquipment reservation.
type EventEquipmentPatch struct {
	Quantity           *int     `json:"quantity,omitempty" db:"quantity"`
	RentalCostOverride *float64 `json:"rental_cost_override,omitempty" db:"rental_cost_override"`
}

func (EventEquipmentPatch) Schema() Schema { return EventEquipment{}.Schema() }

// Task statuses.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task is a to-do item on an event's preparation checklist.
type Task struct {
	ID             int64      `json:"id" db:"id"`
	EventID        int64      `json:"event_id" db:"event_id" binding:"required"`
	Title          string     `json:"title" db:"title" binding:"required"`
	Status         string     `json:"status" db:"status"`
	DueDate        *time.Time `json:"due_date,omitempty" db:"due_date"`
	AssignedUserID *int64     `json:"assigned_user_id,omitempty" db:"assigned_user_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

func (Task) Schema() Schema {
	return Schema{
		Table: TableTasks,
		ForeignKeys: []ForeignKey{
			{Field: "EventID", Column: "event_id", References: TableEvents, Required: true},
			{Field: "AssignedUserID", Column: "assigned_user_id", References: TableUsers},
		},
	}
}

// TaskPatch is a sparse update of a Task.
type TaskPatch struct {
	Title          *string    `json:"title,omitempty" db:"title"`
	Status         *string    `json:"status,omitempty" db:"status"`
	DueDate        *time.Time `json:"due_date,omitempty" db:"due_date"`
	AssignedUserID *int64     `json:"assigned_user_id,omitempty" db:"assigned_user_id"`
}

func (TaskPatch) Schema() Schema { return Task{}.Schema() }
