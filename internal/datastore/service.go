// Package datastore defines the capability contract shared by every store
// implementation (local, remote, federated, null) and the error taxonomy
// callers use to tell store failures apart.
package datastore

import (
	"context"
	"io"

	"catering_backend/internal/models"
)

// UserStore covers users.
type UserStore interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	AddUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// EventStore covers events.
type EventStore interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	GetEventsByClient(ctx context.Context, clientID int64) ([]models.Event, error)
	AddEvent(ctx context.Context, event models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// MenuStore covers menus.
type MenuStore interface {
	GetMenus(ctx context.Context) ([]models.Menu, error)
	GetMenu(ctx context.Context, id int64) (*models.Menu, error)
	AddMenu(ctx context.Context, menu models.Menu) (*models.Menu, error)
	UpdateMenu(ctx context.Context, id int64, patch models.MenuPatch) (*models.Menu, error)
	DeleteMenu(ctx context.Context, id int64) error
}

// MenuItemStore covers menu items.
type MenuItemStore interface {
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItemsByMenu(ctx context.Context, menuID int64) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
	AddMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// IngredientStore covers ingredients.
type IngredientStore interface {
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	AddIngredient(ctx context.Context, ingredient models.Ingredient) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, patch models.IngredientPatch) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
}

// RecipeStore covers recipe lines joined with their ingredients.
type RecipeStore interface {
	GetRecipe(ctx context.Context, menuItemID int64) ([]models.RecipeLine, error)
	AddRecipeLine(ctx context.Context, line models.RecipeLine) (*models.RecipeLine, error)
	UpdateRecipeLine(ctx context.Context, id int64, patch models.RecipeLinePatch) (*models.RecipeLine, error)
	DeleteRecipeLine(ctx context.Context, id int64) error
}

// EquipmentStore covers equipment inventory.
type EquipmentStore interface {
	GetEquipment(ctx context.Context) ([]models.Equipment, error)
	GetEquipmentItem(ctx context.Context, id int64) (*models.Equipment, error)
	AddEquipment(ctx context.Context, equipment models.Equipment) (*models.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, patch models.EquipmentPatch) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error
}

// EventAssignmentStore covers the menu item, staff and equipment joins of an event.
type EventAssignmentStore interface {
	GetEventMenuItems(ctx context.Context, eventID int64) ([]models.EventMenuItem, error)
	AddEventMenuItem(ctx context.Context, item models.EventMenuItem) (*models.EventMenuItem, error)
	UpdateEventMenuItem(ctx context.Context, id int64, patch models.EventMenuItemPatch) (*models.EventMenuItem, error)
	DeleteEventMenuItem(ctx context.Context, id int64) error

	GetEventStaff(ctx context.Context, eventID int64) ([]models.EventStaff, error)
	AddEventStaff(ctx context.Context, staff models.EventStaff) (*models.EventStaff, error)
	UpdateEventStaff(ctx context.Context, id int64, patch models.EventStaffPatch) (*models.EventStaff, error)
	DeleteEventStaff(ctx context.Context, id int64) error

	GetEventEquipment(ctx context.Context, eventID int64) ([]models.EventEquipment, error)
	AddEventEquipment(ctx context.Context, equipment models.EventEquipment) (*models.EventEquipment, error)
	UpdateEventEquipment(ctx context.Context, id int64, patch models.EventEquipmentPatch) (*models.EventEquipment, error)
	DeleteEventEquipment(ctx context.Context, id int64) error
}

// TaskStore covers event tasks.
type TaskStore interface {
	GetTasks(ctx context.Context, eventID int64) ([]models.Task, error)
	AddTask(ctx context.Context, task models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// SchedulingStore covers availability, blackout dates, open shifts and shift bids.
type SchedulingStore interface {
	GetStaffAvailability(ctx context.Context, userID int64) ([]models.StaffAvailability, error)
	AddStaffAvailability(ctx context.Context, availability models.StaffAvailability) (*models.StaffAvailability, error)
	UpdateStaffAvailability(ctx context.Context, id int64, patch models.StaffAvailabilityPatch) (*models.StaffAvailability, error)
	DeleteStaffAvailability(ctx context.Context, id int64) error

	GetBlackoutDates(ctx context.Context, userID int64) ([]models.BlackoutDate, error)
	AddBlackoutDate(ctx context.Context, blackout models.BlackoutDate) (*models.BlackoutDate, error)
	DeleteBlackoutDate(ctx context.Context, id int64) error

	GetOpenShifts(ctx context.Context) ([]models.OpenShift, error)
	GetOpenShift(ctx context.Context, id int64) (*models.OpenShift, error)
	AddOpenShift(ctx context.Context, shift models.OpenShift) (*models.OpenShift, error)
	UpdateOpenShift(ctx context.Context, id int64, patch models.OpenShiftPatch) (*models.OpenShift, error)
	DeleteOpenShift(ctx context.Context, id int64) error

	GetShiftBids(ctx context.Context, shiftID int64) ([]models.ShiftBid, error)
	AddShiftBid(ctx context.Context, bid models.ShiftBid) (*models.ShiftBid, error)
	UpdateShiftBidStatus(ctx context.Context, id int64, status string) (*models.ShiftBid, error)
}

// MessageStore covers messages and their attachments.
type MessageStore interface {
	GetMessages(ctx context.Context, userID int64) ([]models.Message, error)
	AddMessage(ctx context.Context, message models.Message) (*models.Message, error)
	MarkMessageRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error
	UploadMessageAttachment(ctx context.Context, messageID int64, fileName string, content io.Reader) (*models.MessageAttachment, error)
}

// MaintenanceStore covers bulk operations on demo data.
type MaintenanceStore interface {
	// SeedSampleData inserts a small demo dataset flagged as sample data.
	SeedSampleData(ctx context.Context) error
	// ClearSampleData removes sample-flagged rows and every row depending on them.
	ClearSampleData(ctx context.Context) error
	// ClearAllData removes every row. Only the local store supports it.
	ClearAllData(ctx context.Context) error
}

// DataService is the full capability set every store implements.
type DataService interface {
	UserStore
	EventStore
	MenuStore
	MenuItemStore
	IngredientStore
	RecipeStore
	EquipmentStore
	EventAssignmentStore
	TaskStore
	SchedulingStore
	MessageStore
	MaintenanceStore
}
