package datastore

import (
	"context"
	"io"

	"catering_backend/internal/models"
)

// NullService is the store of last resort: collection reads are empty, keyed
// reads report ErrNotFound, writes that must return a record report
// ErrUnsupportedOperation and every other write is a no-op. The zero value is
// ready to use.
type NullService struct{}

var _ DataService = NullService{}

func nullNotFound(entity string) error {
	return Wrap(StoreNone, entity, "get", ErrNotFound)
}

func nullUnsupported(entity, op string) error {
	return Wrap(StoreNone, entity, op, ErrUnsupportedOperation)
}

func (NullService) GetUsers(context.Context) ([]models.User, error) { return []models.User{}, nil }
func (NullService) GetUser(context.Context, int64) (*models.User, error) {
	return nil, nullNotFound("user")
}
func (NullService) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, nullNotFound("user")
}
func (NullService) AddUser(context.Context, models.User) (*models.User, error) {
	return nil, nullUnsupported("user", "add")
}
func (NullService) UpdateUser(context.Context, int64, models.UserPatch) (*models.User, error) {
	return nil, nullUnsupported("user", "update")
}
func (NullService) DeleteUser(context.Context, int64) error { return nil }

func (NullService) GetEvents(context.Context) ([]models.Event, error) { return []models.Event{}, nil }
func (NullService) GetEvent(context.Context, int64) (*models.Event, error) {
	return nil, nullNotFound("event")
}
func (NullService) GetEventsByClient(context.Context, int64) ([]models.Event, error) {
	return []models.Event{}, nil
}
func (NullService) AddEvent(context.Context, models.Event) (*models.Event, error) {
	return nil, nullUnsupported("event", "add")
}
func (NullService) UpdateEvent(context.Context, int64, models.EventPatch) (*models.Event, error) {
	return nil, nullUnsupported("event", "update")
}
func (NullService) DeleteEvent(context.Context, int64) error { return nil }

func (NullService) GetMenus(context.Context) ([]models.Menu, error) { return []models.Menu{}, nil }
func (NullService) GetMenu(context.Context, int64) (*models.Menu, error) {
	return nil, nullNotFound("menu")
}
func (NullService) AddMenu(context.Context, models.Menu) (*models.Menu, error) {
	return nil, nullUnsupported("menu", "add")
}
func (NullService) UpdateMenu(context.Context, int64, models.MenuPatch) (*models.Menu, error) {
	return nil, nullUnsupported("menu", "update")
}
func (NullService) DeleteMenu(context.Context, int64) error { return nil }

func (NullService) GetMenuItems(context.Context) ([]models.MenuItem, error) {
	return []models.MenuItem{}, nil
}
func (NullService) GetMenuItemsByMenu(context.Context, int64) ([]models.MenuItem, error) {
	return []models.MenuItem{}, nil
}
func (NullService) GetMenuItem(context.Context, int64) (*models.MenuItem, error) {
	return nil, nullNotFound("menu item")
}
func (NullService) AddMenuItem(context.Context, models.MenuItem) (*models.MenuItem, error) {
	return nil, nullUnsupported("menu item", "add")
}
func (NullService) UpdateMenuItem(context.Context, int64, models.MenuItemPatch) (*models.MenuItem, error) {
	return nil, nullUnsupported("menu item", "update")
}
func (NullService) DeleteMenuItem(context.Context, int64) error { return nil }

func (NullService) GetIngredients(context.Context) ([]models.Ingredient, error) {
	return []models.Ingredient{}, nil
}
func (NullService) GetIngredient(context.Context, int64) (*models.Ingredient, error) {
	return nil, nullNotFound("ingredient")
}
func (NullService) AddIngredient(context.Context, models.Ingredient) (*models.Ingredient, error) {
	return nil, nullUnsupported("ingredient", "add")
}
func (NullService) UpdateIngredient(context.Context, int64, models.IngredientPatch) (*models.Ingredient, error) {
	return nil, nullUnsupported("ingredient", "update")
}
func (NullService) DeleteIngredient(context.Context, int64) error { return nil }

func (NullService) GetRecipe(context.Context, int64) ([]models.RecipeLine, error) {
	return []models.RecipeLine{}, nil
}
func (NullService) AddRecipeLine(context.Context, models.RecipeLine) (*models.RecipeLine, error) {
	return nil, nullUnsupported("recipe line", "add")
}
func (NullService) UpdateRecipeLine(context.Context, int64, models.RecipeLinePatch) (*models.RecipeLine, error) {
	return nil, nullUnsupported("recipe line", "update")
}
func (NullService) DeleteRecipeLine(context.Context, int64) error { return nil }

func (NullService) GetEquipment(context.Context) ([]models.Equipment, error) {
	return []models.Equipment{}, nil
}
func (NullService) GetEquipmentItem(context.Context, int64) (*models.Equipment, error) {
	return nil, nullNotFound("equipment")
}
func (NullService) AddEquipment(context.Context, models.Equipment) (*models.Equipment, error) {
	return nil, nullUnsupported("equipment", "add")
}
func (NullService) UpdateEquipment(context.Context, int64, models.EquipmentPatch) (*models.Equipment, error) {
	return nil, nullUnsupported("equipment", "update")
}
func (NullService) DeleteEquipment(context.Context, int64) error { return nil }

func (NullService) GetEventMenuItems(context.Context, int64) ([]models.EventMenuItem, error) {
	return []models.EventMenuItem{}, nil
}
func (NullService) AddEventMenuItem(context.Context, models.EventMenuItem) (*models.EventMenuItem, error) {
	return nil, nullUnsupported("event menu item", "add")
}
func (NullService) UpdateEventMenuItem(context.Context, int64, models.EventMenuItemPatch) (*models.EventMenuItem, error) {
	return nil, nullUnsupported("event menu item", "update")
}
func (NullService) DeleteEventMenuItem(context.Context, int64) error { return nil }

func (NullService) GetEventStaff(context.Context, int64) ([]models.EventStaff, error) {
	return []models.EventStaff{}, nil
}
func (NullService) AddEventStaff(context.Context, models.EventStaff) (*models.EventStaff, error) {
	return nil, nullUnsupported("event staff", "add")
}
func (NullService) UpdateEventStaff(context.Context, int64, models.EventStaffPatch) (*models.EventStaff, error) {
	return nil, nullUnsupported("event staff", "update")
}
func (NullService) DeleteEventStaff(context.Context, int64) error { return nil }

func (NullService) GetEventEquipment(context.Context, int64) ([]models.EventEquipment, error) {
	return []models.EventEquipment{}, nil
}
func (NullService) AddEventEquipment(context.Context, models.EventEquipment) (*models.EventEquipment, error) {
	return nil, nullUnsupported("event equipment", "add")
}
func (NullService) UpdateEventEquipment(context.Context, int64, models.EventEquipmentPatch) (*models.EventEquipment, error) {
	return nil, nullUnsupported("event equipment", "update")
}
func (NullService) DeleteEventEquipment(context.Context, int64) error { return nil }

func (NullService) GetTasks(context.Context, int64) ([]models.Task, error) { return []models.Task{}, nil }
func (NullService) AddTask(context.Context, models.Task) (*models.Task, error) {
	return nil, nullUnsupported("task", "add")
}
func (NullService) UpdateTask(context.Context, int64, models.TaskPatch) (*models.Task, error) {
	return nil, nullUnsupported("task", "update")
}
func (NullService) DeleteTask(context.Context, int64) error { return nil }

func (NullService) GetStaffAvailability(context.Context, int64) ([]models.StaffAvailability, error) {
	return []models.StaffAvailability{}, nil
}
func (NullService) AddStaffAvailability(context.Context, models.StaffAvailability) (*models.StaffAvailability, error) {
	return nil, nullUnsupported("staff availability", "add")
}
func (NullService) UpdateStaffAvailability(context.Context, int64, models.StaffAvailabilityPatch) (*models.StaffAvailability, error) {
	return nil, nullUnsupported("staff availability", "update")
}
func (NullService) DeleteStaffAvailability(context.Context, int64) error { return nil }

func (NullService) GetBlackoutDates(context.Context, int64) ([]models.BlackoutDate, error) {
	return []models.BlackoutDate{}, nil
}
func (NullService) AddBlackoutDate(context.Context, models.BlackoutDate) (*models.BlackoutDate, error) {
	return nil, nullUnsupported("blackout date", "add")
}
func (NullService) DeleteBlackoutDate(context.Context, int64) error { return nil }

func (NullService) GetOpenShifts(context.Context) ([]models.OpenShift, error) {
	return []models.OpenShift{}, nil
}
func (NullService) GetOpenShift(context.Context, int64) (*models.OpenShift, error) {
	return nil, nullNotFound("open shift")
}
func (NullService) AddOpenShift(context.Context, models.OpenShift) (*models.OpenShift, error) {
	return nil, nullUnsupported("open shift", "add")
}
func (NullService) UpdateOpenShift(context.Context, int64, models.OpenShiftPatch) (*models.OpenShift, error) {
	return nil, nullUnsupported("open shift", "update")
}
func (NullService) DeleteOpenShift(context.Context, int64) error { return nil }

func (NullService) GetShiftBids(context.Context, int64) ([]models.ShiftBid, error) {
	return []models.ShiftBid{}, nil
}
func (NullService) AddShiftBid(context.Context, models.ShiftBid) (*models.ShiftBid, error) {
	return nil, nullUnsupported("shift bid", "add")
}
func (NullService) UpdateShiftBidStatus(context.Context, int64, string) (*models.ShiftBid, error) {
	return nil, nullUnsupported("shift bid", "update")
}

func (NullService) GetMessages(context.Context, int64) ([]models.Message, error) {
	return []models.Message{}, nil
}
func (NullService) AddMessage(context.Context, models.Message) (*models.Message, error) {
	return nil, nullUnsupported("message", "add")
}
func (NullService) MarkMessageRead(context.Context, int64) error { return nil }
func (NullService) DeleteMessage(context.Context, int64) error  { return nil }
func (NullService) UploadMessageAttachment(context.Context, int64, string, io.Reader) (*models.MessageAttachment, error) {
	return nil, nullUnsupported("message attachment", "upload")
}

func (NullService) SeedSampleData(context.Context) error  { return nil }
func (NullService) ClearSampleData(context.Context) error { return nil }
func (NullService) ClearAllData(context.Context) error    { return nil }
