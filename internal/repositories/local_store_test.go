package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"catering_backend/internal/database"
	"catering_backend/internal/datastore"
	"catering_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := OpenLocalStore(database.SQLite, filepath.Join(t.TempDir(), "catering_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func strPtr(s string) *string { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64 { return &i }

func TestLocalStore_Users(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("AddAndGet", func(t *testing.T) {
		u, err := store.AddUser(ctx, models.User{Name: "Ada", Email: "ada@example.com", HourlyRate: f64Ptr(30)})
		require.NoError(t, err)
		assert.Positive(t, u.ID)
		assert.Equal(t, models.RoleStaff, u.Role)
		assert.Equal(t, models.UserStatusActive, u.Status)
		require.NotNil(t, u.HourlyRate)
		assert.Equal(t, 30.0, *u.HourlyRate)
		assert.Nil(t, u.Phone)

		byEmail, err := store.GetUserByEmail(ctx, "ADA@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := store.AddUser(ctx, models.User{Name: "Ada Again", Email: "ada@example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, datastore.ErrDuplicateKey)
		assert.Equal(t, datastore.StoreLocal, datastore.StoreOf(err))
	})

	t.Run("SparseUpdate", func(t *testing.T) {
		u, err := store.AddUser(ctx, models.User{Name: "Bo", Email: "bo@example.com", Phone: strPtr("123")})
		require.NoError(t, err)

		updated, err := store.UpdateUser(ctx, u.ID, models.UserPatch{Name: strPtr("Bo Renamed")})
		require.NoError(t, err)
		assert.Equal(t, "Bo Renamed", updated.Name)
		assert.Equal(t, "bo@example.com", updated.Email)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "123", *updated.Phone)

		same, err := store.UpdateUser(ctx, u.ID, models.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Bo Renamed", same.Name)
	})

	t.Run("DeleteThenMissing", func(t *testing.T) {
		u, err := store.AddUser(ctx, models.User{Name: "Cy", Email: "cy@example.com"})
		require.NoError(t, err)
		require.NoError(t, store.DeleteUser(ctx, u.ID))

		_, err = store.GetUser(ctx, u.ID)
		assert.ErrorIs(t, err, datastore.ErrNotFound)
		assert.ErrorIs(t, store.DeleteUser(ctx, u.ID), datastore.ErrNotFound)
		_, err = store.UpdateUser(ctx, u.ID, models.UserPatch{Name: strPtr("ghost")})
		assert.ErrorIs(t, err, datastore.ErrNotFound)
	})
}

func TestLocalStore_MenuCosting(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	menu, err := store.AddMenu(ctx, models.Menu{Name: "Lunch"})
	require.NoError(t, err)
	assert.Empty(t, menu.Items)

	item, err := store.AddMenuItem(ctx, models.MenuItem{MenuID: menu.ID, Name: "Soup", Price: 8})
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.CalculatedCost)

	carrot, err := store.AddIngredient(ctx, models.Ingredient{Name: "Carrot", Unit: "kg", PricePerUnit: 2})
	require.NoError(t, err)
	stock, err := store.AddIngredient(ctx, models.Ingredient{Name: "Stock", Unit: "l", PricePerUnit: 4})
	require.NoError(t, err)

	line, err := store.AddRecipeLine(ctx, models.RecipeLine{MenuItemID: item.ID, IngredientID: carrot.ID, Quantity: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "Carrot", line.IngredientName)
	assert.Equal(t, "kg", line.Unit)
	assert.InDelta(t, 1.0, line.Cost, 1e-9)
	_, err = store.AddRecipeLine(ctx, models.RecipeLine{MenuItemID: item.ID, IngredientID: stock.ID, Quantity: 0.25})
	require.NoError(t, err)

	got, err := store.GetMenuItem(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.CalculatedCost, 1e-9)
	assert.InDelta(t, 6.0, got.Margin(), 1e-9)

	recipe, err := store.GetRecipe(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, recipe, 2)

	full, err := store.GetMenu(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, full.Items, 1)
	assert.InDelta(t, 2.0, full.Items[0].CalculatedCost, 1e-9)

	updatedLine, err := store.UpdateRecipeLine(ctx, line.ID, models.RecipeLinePatch{Quantity: f64Ptr(1)})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, updatedLine.Cost, 1e-9)

	t.Run("ReferencedIngredientCannotBeDeleted", func(t *testing.T) {
		err := store.DeleteIngredient(ctx, carrot.ID)
		assert.ErrorIs(t, err, datastore.ErrReferenced)
	})

	t.Run("MissingParentIsReferenceError", func(t *testing.T) {
		_, err := store.AddMenuItem(ctx, models.MenuItem{MenuID: 9999, Name: "Orphan"})
		assert.ErrorIs(t, err, datastore.ErrReferenced)
	})

	t.Run("DeletingMenuCascadesItems", func(t *testing.T) {
		require.NoError(t, store.DeleteMenu(ctx, menu.ID))
		_, err := store.GetMenuItem(ctx, item.ID)
		assert.ErrorIs(t, err, datastore.ErrNotFound)
		require.NoError(t, store.DeleteIngredient(ctx, carrot.ID))
	})
}

func TestLocalStore_EventAssignmentsAndScheduling(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	client, err := store.AddUser(ctx, models.User{Name: "Client", Email: "client@example.com", Role: models.RoleClient})
	require.NoError(t, err)
	staff, err := store.AddUser(ctx, models.User{Name: "Staff", Email: "staff@example.com"})
	require.NoError(t, err)
	start := time.Date(2030, 6, 1, 17, 0, 0, 0, time.UTC)
	event, err := store.AddEvent(ctx, models.Event{Name: "Gala", ClientID: &client.ID, StartTime: start, EndTime: start.Add(4 * time.Hour), GuestCount: 50})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusInquiry, event.Status)
	assert.True(t, start.Equal(event.StartTime))

	byClient, err := store.GetEventsByClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	menu, err := store.AddMenu(ctx, models.Menu{Name: "Dinner"})
	require.NoError(t, err)
	item, err := store.AddMenuItem(ctx, models.MenuItem{MenuID: menu.ID, Name: "Steak", Price: 30})
	require.NoError(t, err)
	emi, err := store.AddEventMenuItem(ctx, models.EventMenuItem{EventID: event.ID, MenuItemID: item.ID, Quantity: 50})
	require.NoError(t, err)
	assert.Equal(t, "Steak", emi.MenuItemName)
	assert.Equal(t, 30.0, emi.UnitPrice())
	emi, err = store.UpdateEventMenuItem(ctx, emi.ID, models.EventMenuItemPatch{PriceOverride: f64Ptr(25)})
	require.NoError(t, err)
	assert.Equal(t, 25.0, emi.UnitPrice())

	es, err := store.AddEventStaff(ctx, models.EventStaff{EventID: event.ID, UserID: staff.ID, Role: strPtr("chef")})
	require.NoError(t, err)
	assert.Equal(t, "Staff", es.UserName)

	eq, err := store.AddEquipment(ctx, models.Equipment{Name: "Tent", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, models.OwnershipOwned, eq.Ownership)
	ee, err := store.AddEventEquipment(ctx, models.EventEquipment{EventID: event.ID, EquipmentID: eq.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, ee.Quantity)
	assert.Equal(t, "Tent", ee.EquipmentName)

	task, err := store.AddTask(ctx, models.Task{EventID: event.ID, Title: "Order flowers", AssignedUserID: &staff.ID})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Nil(t, task.DueDate)

	shift, err := store.AddOpenShift(ctx, models.OpenShift{EventID: event.ID, Role: "server", StartTime: start, EndTime: start.Add(time.Hour)})
	require.NoError(t, err)
	bid, err := store.AddShiftBid(ctx, models.ShiftBid{ShiftID: shift.ID, UserID: staff.ID})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, bid.Status)

	bid, err = store.UpdateShiftBidStatus(ctx, bid.ID, models.BidStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, bid.Status)
	_, err = store.UpdateShiftBidStatus(ctx, bid.ID, "maybe")
	assert.ErrorIs(t, err, datastore.ErrValidation)

	avail, err := store.AddStaffAvailability(ctx, models.StaffAvailability{UserID: staff.ID, DayOfWeek: 5, StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)
	avail, err = store.UpdateStaffAvailability(ctx, avail.ID, models.StaffAvailabilityPatch{EndTime: strPtr("18:00")})
	require.NoError(t, err)
	assert.Equal(t, "18:00", avail.EndTime)
	_, err = store.AddBlackoutDate(ctx, models.BlackoutDate{UserID: staff.ID, Date: "2030-07-04"})
	require.NoError(t, err)

	msg, err := store.AddMessage(ctx, models.Message{SenderID: client.ID, RecipientID: &staff.ID, EventID: &event.ID, Body: "hi"})
	require.NoError(t, err)
	require.NoError(t, store.MarkMessageRead(ctx, msg.ID))
	inbox, err := store.GetMessages(ctx, staff.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].IsRead)

	_, err = store.UploadMessageAttachment(ctx, msg.ID, "menu.pdf", nil)
	assert.ErrorIs(t, err, datastore.ErrUnsupportedOperation)

	t.Run("DeletingEventCascades", func(t *testing.T) {
		require.NoError(t, store.DeleteEvent(ctx, event.ID))
		tasks, err := store.GetTasks(ctx, event.ID)
		require.NoError(t, err)
		assert.Empty(t, tasks)
		shifts, err := store.GetOpenShifts(ctx)
		require.NoError(t, err)
		assert.Empty(t, shifts)

		inbox, err := store.GetMessages(ctx, staff.ID)
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Nil(t, inbox[0].EventID)
	})
}

func TestLocalStore_SampleData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SeedSampleData(ctx))
	// Seeding twice replaces rather than duplicates.
	require.NoError(t, store.SeedSampleData(ctx))

	users, err := store.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	items, err := store.GetMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, mi := range items {
		assert.Positive(t, mi.CalculatedCost)
	}

	// Real data: one untouched, one hanging off a sample client.
	realUser, err := store.AddUser(ctx, models.User{Name: "Real", Email: "real@example.com"})
	require.NoError(t, err)
	realMenu, err := store.AddMenu(ctx, models.Menu{Name: "Real menu"})
	require.NoError(t, err)
	var sampleClient models.User
	for _, u := range users {
		if u.Role == models.RoleClient {
			sampleClient = u
		}
	}
	require.NotZero(t, sampleClient.ID)
	start := time.Date(2031, 1, 1, 12, 0, 0, 0, time.UTC)
	dependent, err := store.AddEvent(ctx, models.Event{Name: "Real event, sample client", ClientID: &sampleClient.ID, StartTime: start, EndTime: start})
	require.NoError(t, err)
	sampleMenus, err := store.GetMenus(ctx)
	require.NoError(t, err)
	var sampleMenuID int64
	for _, m := range sampleMenus {
		if m.IsSample {
			sampleMenuID = m.ID
		}
	}
	realItemOnSampleMenu, err := store.AddMenuItem(ctx, models.MenuItem{MenuID: sampleMenuID, Name: "Added later"})
	require.NoError(t, err)
	dependentTask, err := store.AddTask(ctx, models.Task{EventID: dependent.ID, Title: "Book venue"})
	require.NoError(t, err)
	otherEvent, err := store.AddEvent(ctx, models.Event{Name: "Real event, real client", ClientID: &realUser.ID, StartTime: start, EndTime: start})
	require.NoError(t, err)
	assignedTask, err := store.AddTask(ctx, models.Task{EventID: otherEvent.ID, Title: "Prep", AssignedUserID: &sampleClient.ID})
	require.NoError(t, err)
	note, err := store.AddMessage(ctx, models.Message{SenderID: realUser.ID, RecipientID: &sampleClient.ID, Body: "Hello"})
	require.NoError(t, err)

	require.NoError(t, store.ClearSampleData(ctx))

	users, err = store.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, realUser.ID, users[0].ID)

	menus, err := store.GetMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, realMenu.ID, menus[0].ID)

	// Optional references into sample data are nulled, not followed.
	survivor, err := store.GetEvent(ctx, dependent.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.ClientID)
	tasks, err := store.GetTasks(ctx, dependent.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, dependentTask.ID, tasks[0].ID)
	tasks, err = store.GetTasks(ctx, otherEvent.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, assignedTask.ID, tasks[0].ID)
	assert.Nil(t, tasks[0].AssignedUserID)
	sent, err := store.GetMessages(ctx, realUser.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, note.ID, sent[0].ID)
	assert.Nil(t, sent[0].RecipientID)

	events, err := store.GetEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Required references go with their parent.
	_, err = store.GetMenuItem(ctx, realItemOnSampleMenu.ID)
	assert.ErrorIs(t, err, datastore.ErrNotFound)

	for _, check := range []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) { l, err := store.GetIngredients(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := store.GetEquipment(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := store.GetOpenShifts(ctx); return len(l), err },
	} {
		n, err := check(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	t.Run("ClearAllData", func(t *testing.T) {
		require.NoError(t, store.SeedSampleData(ctx))
		require.NoError(t, store.ClearAllData(ctx))
		users, err := store.GetUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
		menus, err := store.GetMenus(ctx)
		require.NoError(t, err)
		assert.Empty(t, menus)
	})
}

func TestDeletionOrder(t *testing.T) {
	schemas := models.AllSchemas()
	order, err := deletionOrder(schemas)
	require.NoError(t, err)
	require.Len(t, order, len(schemas))

	pos := make(map[string]int, len(order))
	for i, table := range order {
		pos[table] = i
	}
	for _, s := range schemas {
		for _, fk := range s.ForeignKeys {
			assert.Less(t, pos[s.Table], pos[fk.References], "%s must be cleared before %s", s.Table, fk.References)
		}
	}

	t.Run("Cycle", func(t *testing.T) {
		_, err := deletionOrder([]models.Schema{
			{Table: "a", ForeignKeys: []models.ForeignKey{{Column: "b_id", References: "b"}}},
			{Table: "b", ForeignKeys: []models.ForeignKey{{Column: "a_id", References: "a"}}},
		})
		assert.Error(t, err)
	})
}

func TestSamplePredicates(t *testing.T) {
	preds := samplePredicates(models.AllSchemas())

	assert.Equal(t, "is_sample = TRUE", preds[models.TableUsers])
	assert.Equal(t, "is_sample = TRUE", preds[models.TableEvents])
	assert.Equal(t, "menu_id IN (SELECT id FROM menus WHERE is_sample = TRUE)", preds[models.TableMenuItems])
	assert.NotContains(t, preds[models.TableTasks], "assigned_user_id")
	assert.Equal(t, "sender_id IN (SELECT id FROM users WHERE is_sample = TRUE)", preds[models.TableMessages])
	for _, s := range models.AllSchemas() {
		assert.NotEmpty(t, preds[s.Table], s.Table)
	}
}

func TestSetClause(t *testing.T) {
	sets, args := setClause(models.MenuItemPatch{Name: strPtr("Tart"), MenuID: i64Ptr(4)})
	assert.Equal(t, []string{"menu_id = ?", "name = ?"}, sets)
	assert.Equal(t, []interface{}{int64(4), "Tart"}, args)

	sets, args = setClause(&models.MenuItemPatch{})
	assert.Empty(t, sets)
	assert.Empty(t, args)
}
