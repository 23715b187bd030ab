package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
	"catering_backend/pkg/utils"
)

var (
	usersEP          = endpoint{path: "/api/users"}
	eventsEP         = endpoint{path: "/api/events"}
	menusEP          = endpoint{path: "/api/menus"}
	menuItemsEP      = endpoint{path: "/api/menu-items"}
	ingredientsEP    = endpoint{path: "/api/ingredients"}
	recipesEP        = endpoint{path: "/api/recipes"}
	equipmentEP      = endpoint{path: "/api/equipment"}
	eventMenuItemsEP = endpoint{path: "/api/event-menu-items"}
	eventStaffEP     = endpoint{path: "/api/event-staff"}
	eventEquipmentEP = endpoint{path: "/api/event-equipment"}
	tasksEP          = endpoint{path: "/api/tasks"}
	availabilityEP   = endpoint{path: "/api/scheduling", action: "availability"}
	blackoutsEP      = endpoint{path: "/api/scheduling", action: "blackouts"}
	shiftsEP         = endpoint{path: "/api/scheduling", action: "shifts"}
	bidsEP           = endpoint{path: "/api/scheduling", action: "bids"}
	messagesEP       = endpoint{path: "/api/messages"}
	attachmentsEP    = endpoint{path: "/api/messages/attachments"}
)

// Users

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	return listOf[models.User](ctx, c, "user", usersEP, nil)
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return getByID[models.User](ctx, c, "user", usersEP, id)
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return getOne[models.User](ctx, c, "user", "get by email", usersEP, url.Values{"email": {email}})
}

func (c *Client) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	return create(ctx, c, "user", usersEP, user)
}

func (c *Client) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	return update[models.User](ctx, c, "user", usersEP, id, patch)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.remove(ctx, "user", usersEP, id)
}

// Events

func (c *Client) GetEvents(ctx context.Context) ([]models.Event, error) {
	return listOf[models.Event](ctx, c, "event", eventsEP, nil)
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return getByID[models.Event](ctx, c, "event", eventsEP, id)
}

func (c *Client) GetEventsByClient(ctx context.Context, clientID int64) ([]models.Event, error) {
	return listOf[models.Event](ctx, c, "event", eventsEP, idQuery("client_id", clientID))
}

func (c *Client) AddEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	return create(ctx, c, "event", eventsEP, event)
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	return update[models.Event](ctx, c, "event", eventsEP, id, patch)
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.remove(ctx, "event", eventsEP, id)
}

// Menus and menu items

func (c *Client) GetMenus(ctx context.Context) ([]models.Menu, error) {
	return listOf[models.Menu](ctx, c, "menu", menusEP, nil)
}

// GetMenu expects the service to embed the menu's items.
func (c *Client) GetMenu(ctx context.Context, id int64) (*models.Menu, error) {
	return getByID[models.Menu](ctx, c, "menu", menusEP, id)
}

func (c *Client) AddMenu(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	return create(ctx, c, "menu", menusEP, menu)
}

func (c *Client) UpdateMenu(ctx context.Context, id int64, patch models.MenuPatch) (*models.Menu, error) {
	return update[models.Menu](ctx, c, "menu", menusEP, id, patch)
}

func (c *Client) DeleteMenu(ctx context.Context, id int64) error {
	return c.remove(ctx, "menu", menusEP, id)
}

func (c *Client) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return listOf[models.MenuItem](ctx, c, "menu item", menuItemsEP, nil)
}

func (c *Client) GetMenuItemsByMenu(ctx context.Context, menuID int64) ([]models.MenuItem, error) {
	return listOf[models.MenuItem](ctx, c, "menu item", menuItemsEP, idQuery("menu_id", menuID))
}

func (c *Client) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return getByID[models.MenuItem](ctx, c, "menu item", menuItemsEP, id)
}

func (c *Client) AddMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	return create(ctx, c, "menu item", menuItemsEP, item)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	return update[models.MenuItem](ctx, c, "menu item", menuItemsEP, id, patch)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.remove(ctx, "menu item", menuItemsEP, id)
}

// Ingredients and recipes

func (c *Client) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return listOf[models.Ingredient](ctx, c, "ingredient", ingredientsEP, nil)
}

func (c *Client) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	return getByID[models.Ingredient](ctx, c, "ingredient", ingredientsEP, id)
}

func (c *Client) AddIngredient(ctx context.Context, ingredient models.Ingredient) (*models.Ingredient, error) {
	return create(ctx, c, "ingredient", ingredientsEP, ingredient)
}

func (c *Client) UpdateIngredient(ctx context.Context, id int64, patch models.IngredientPatch) (*models.Ingredient, error) {
	return update[models.Ingredient](ctx, c, "ingredient", ingredientsEP, id, patch)
}

func (c *Client) DeleteIngredient(ctx context.Context, id int64) error {
	return c.remove(ctx, "ingredient", ingredientsEP, id)
}

func (c *Client) GetRecipe(ctx context.Context, menuItemID int64) ([]models.RecipeLine, error) {
	return listOf[models.RecipeLine](ctx, c, "recipe line", recipesEP, idQuery("menu_item_id", menuItemID))
}

func (c *Client) AddRecipeLine(ctx context.Context, line models.RecipeLine) (*models.RecipeLine, error) {
	return create(ctx, c, "recipe line", recipesEP, line)
}

func (c *Client) UpdateRecipeLine(ctx context.Context, id int64, patch models.RecipeLinePatch) (*models.RecipeLine, error) {
	return update[models.RecipeLine](ctx, c, "recipe line", recipesEP, id, patch)
}

func (c *Client) DeleteRecipeLine(ctx context.Context, id int64) error {
	return c.remove(ctx, "recipe line", recipesEP, id)
}

// Equipment

func (c *Client) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	return listOf[models.Equipment](ctx, c, "equipment", equipmentEP, nil)
}

func (c *Client) GetEquipmentItem(ctx context.Context, id int64) (*models.Equipment, error) {
	return getByID[models.Equipment](ctx, c, "equipment", equipmentEP, id)
}

func (c *Client) AddEquipment(ctx context.Context, equipment models.Equipment) (*models.Equipment, error) {
	return create(ctx, c, "equipment", equipmentEP, equipment)
}

func (c *Client) UpdateEquipment(ctx context.Context, id int64, patch models.EquipmentPatch) (*models.Equipment, error) {
	return update[models.Equipment](ctx, c, "equipment", equipmentEP, id, patch)
}

func (c *Client) DeleteEquipment(ctx context.Context, id int64) error {
	return c.remove(ctx, "equipment", equipmentEP, id)
}

// Event assignments

func (c *Client) GetEventMenuItems(ctx context.Context, eventID int64) ([]models.EventMenuItem, error) {
	return listOf[models.EventMenuItem](ctx, c, "event menu item", eventMenuItemsEP, idQuery("event_id", eventID))
}

func (c *Client) AddEventMenuItem(ctx context.Context, item models.EventMenuItem) (*models.EventMenuItem, error) {
	return create(ctx, c, "event menu item", eventMenuItemsEP, item)
}

func (c *Client) UpdateEventMenuItem(ctx context.Context, id int64, patch models.EventMenuItemPatch) (*models.EventMenuItem, error) {
	return update[models.EventMenuItem](ctx, c, "event menu item", eventMenuItemsEP, id, patch)
}

func (c *Client) DeleteEventMenuItem(ctx context.Context, id int64) error {
	return c.remove(ctx, "event menu item", eventMenuItemsEP, id)
}

func (c *Client) GetEventStaff(ctx context.Context, eventID int64) ([]models.EventStaff, error) {
	return listOf[models.EventStaff](ctx, c, "event staff", eventStaffEP, idQuery("event_id", eventID))
}

func (c *Client) AddEventStaff(ctx context.Context, staff models.EventStaff) (*models.EventStaff, error) {
	return create(ctx, c, "event staff", eventStaffEP, staff)
}

func (c *Client) UpdateEventStaff(ctx context.Context, id int64, patch models.EventStaffPatch) (*models.EventStaff, error) {
	return update[models.EventStaff](ctx, c, "event staff", eventStaffEP, id, patch)
}

func (c *Client) DeleteEventStaff(ctx context.Context, id int64) error {
	return c.remove(ctx, "event staff", eventStaffEP, id)
}

func (c *Client) GetEventEquipment(ctx context.Context, eventID int64) ([]models.EventEquipment, error) {
	return listOf[models.EventEquipment](ctx, c, "event equipment", eventEquipmentEP, idQuery("event_id", eventID))
}

func (c *Client) AddEventEquipment(ctx context.Context, equipment models.EventEquipment) (*models.EventEquipment, error) {
	return create(ctx, c, "event equipment", eventEquipmentEP, equipment)
}

func (c *Client) UpdateEventEquipment(ctx context.Context, id int64, patch models.EventEquipmentPatch) (*models.EventEquipment, error) {
	return update[models.EventEquipment](ctx, c, "event equipment", eventEquipmentEP, id, patch)
}

func (c *Client) DeleteEventEquipment(ctx context.Context, id int64) error {
	return c.remove(ctx, "event equipment", eventEquipmentEP, id)
}

// Tasks

func (c *Client) GetTasks(ctx context.Context, eventID int64) ([]models.Task, error) {
	return listOf[models.Task](ctx, c, "task", tasksEP, idQuery("event_id", eventID))
}

func (c *Client) AddTask(ctx context.Context, task models.Task) (*models.Task, error) {
	return create(ctx, c, "task", tasksEP, task)
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	return update[models.Task](ctx, c, "task", tasksEP, id, patch)
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.remove(ctx, "task", tasksEP, id)
}

// Scheduling

func (c *Client) GetStaffAvailability(ctx context.Context, userID int64) ([]models.StaffAvailability, error) {
	return listOf[models.StaffAvailability](ctx, c, "staff availability", availabilityEP, idQuery("user_id", userID))
}

func (c *Client) AddStaffAvailability(ctx context.Context, availability models.StaffAvailability) (*models.StaffAvailability, error) {
	return create(ctx, c, "staff availability", availabilityEP, availability)
}

func (c *Client) UpdateStaffAvailability(ctx context.Context, id int64, patch models.StaffAvailabilityPatch) (*models.StaffAvailability, error) {
	return update[models.StaffAvailability](ctx, c, "staff availability", availabilityEP, id, patch)
}

func (c *Client) DeleteStaffAvailability(ctx context.Context, id int64) error {
	return c.remove(ctx, "staff availability", availabilityEP, id)
}

func (c *Client) GetBlackoutDates(ctx context.Context, userID int64) ([]models.BlackoutDate, error) {
	return listOf[models.BlackoutDate](ctx, c, "blackout date", blackoutsEP, idQuery("user_id", userID))
}

func (c *Client) AddBlackoutDate(ctx context.Context, blackout models.BlackoutDate) (*models.BlackoutDate, error) {
	return create(ctx, c, "blackout date", blackoutsEP, blackout)
}

func (c *Client) DeleteBlackoutDate(ctx context.Context, id int64) error {
	return c.remove(ctx, "blackout date", blackoutsEP, id)
}

func (c *Client) GetOpenShifts(ctx context.Context) ([]models.OpenShift, error) {
	return listOf[models.OpenShift](ctx, c, "open shift", shiftsEP, nil)
}

func (c *Client) GetOpenShift(ctx context.Context, id int64) (*models.OpenShift, error) {
	return getByID[models.OpenShift](ctx, c, "open shift", shiftsEP, id)
}

func (c *Client) AddOpenShift(ctx context.Context, shift models.OpenShift) (*models.OpenShift, error) {
	return create(ctx, c, "open shift", shiftsEP, shift)
}

func (c *Client) UpdateOpenShift(ctx context.Context, id int64, patch models.OpenShiftPatch) (*models.OpenShift, error) {
	return update[models.OpenShift](ctx, c, "open shift", shiftsEP, id, patch)
}

func (c *Client) DeleteOpenShift(ctx context.Context, id int64) error {
	return c.remove(ctx, "open shift", shiftsEP, id)
}

func (c *Client) GetShiftBids(ctx context.Context, shiftID int64) ([]models.ShiftBid, error) {
	return listOf[models.ShiftBid](ctx, c, "shift bid", bidsEP, idQuery("shift_id", shiftID))
}

func (c *Client) AddShiftBid(ctx context.Context, bid models.ShiftBid) (*models.ShiftBid, error) {
	return create(ctx, c, "shift bid", bidsEP, bid)
}

func (c *Client) UpdateShiftBidStatus(ctx context.Context, id int64, status string) (*models.ShiftBid, error) {
	if !models.ValidBidStatus(status) {
		return nil, datastore.Wrap(datastore.StoreRemote, "shift bid", "update status",
			fmt.Errorf("%w: unknown bid status %q", datastore.ErrValidation, status))
	}
	return update[models.ShiftBid](ctx, c, "shift bid", bidsEP, id, map[string]string{"status": status})
}

// Messages

func (c *Client) GetMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	return listOf[models.Message](ctx, c, "message", messagesEP, idQuery("user_id", userID))
}

func (c *Client) AddMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	return create(ctx, c, "message", messagesEP, message)
}

func (c *Client) MarkMessageRead(ctx context.Context, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodPut, messagesEP, nil, map[string]interface{}{"id": id, "is_read": true})
	return datastore.Wrap(datastore.StoreRemote, "message", "mark read", err)
}

func (c *Client) DeleteMessage(ctx context.Context, id int64) error {
	return c.remove(ctx, "message", messagesEP, id)
}

// UploadMessageAttachment posts the file as multipart form data with fields
// file and message_id.
func (c *Client) UploadMessageAttachment(ctx context.Context, messageID int64, fileName string, content io.Reader) (*models.MessageAttachment, error) {
	const entity, op = "message attachment", "upload"
	if content == nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, fmt.Errorf("%w: empty attachment", datastore.ErrValidation))
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("message_id", utils.Int64ToStr(messageID)); err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, err)
	}
	part, err := mw.CreateFormFile("file", filepath.Base(fileName))
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, err)
	}
	size, err := io.Copy(part, content)
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, fmt.Errorf("reading attachment: %w", err))
	}
	if err := mw.Close(); err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, err)
	}

	body, err := c.do(ctx, http.MethodPost, attachmentsEP, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, datastore.Wrap(datastore.StoreRemote, entity, op, err)
	}
	out := models.MessageAttachment{MessageID: messageID, FileName: filepath.Base(fileName), Size: size}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, datastore.Wrap(datastore.StoreRemote, entity, op, decodeErr(http.MethodPost, attachmentsEP, err))
		}
	}
	return &out, nil
}

// Maintenance operations only exist on the local store.

func (c *Client) SeedSampleData(context.Context) error {
	return unsupported("sample data", "seed")
}

func (c *Client) ClearSampleData(context.Context) error {
	return unsupported("sample data", "clear")
}

func (c *Client) ClearAllData(context.Context) error {
	return unsupported("all data", "clear")
}
