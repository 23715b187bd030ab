package federation

import (
	"context"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

func (r *Router) GetEvents(ctx context.Context) ([]models.Event, error) {
	return gatherAll(ctx, r, "event", r.remote.GetEvents, r.local.GetEvents)
}

func (r *Router) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return fetchOne(ctx, r, "event", id, datastore.DataService.GetEvent)
}

// GetEventsByClient asks the store the client lives in.
func (r *Router) GetEventsByClient(ctx context.Context, clientID int64) ([]models.Event, error) {
	return gatherScoped(ctx, r, "event", clientID, datastore.DataService.GetEventsByClient)
}

func (r *Router) AddEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	return create(ctx, r, "event", event, datastore.DataService.AddEvent)
}

func (r *Router) UpdateEvent(ctx context.Context, id int64, patch models.EventPatch) (*models.Event, error) {
	return update(ctx, r, "event", id, patch, datastore.DataService.UpdateEvent)
}

func (r *Router) DeleteEvent(ctx context.Context, id int64) error {
	return remove(ctx, r, "event", "delete", id, datastore.DataService.DeleteEvent)
}

func (r *Router) GetEventMenuItems(ctx context.Context, eventID int64) ([]models.EventMenuItem, error) {
	return gatherScoped(ctx, r, "event menu item", eventID, datastore.DataService.GetEventMenuItems)
}

func (r *Router) AddEventMenuItem(ctx context.Context, item models.EventMenuItem) (*models.EventMenuItem, error) {
	return create(ctx, r, "event menu item", item, datastore.DataService.AddEventMenuItem)
}

func (r *Router) UpdateEventMenuItem(ctx context.Context, id int64, patch models.EventMenuItemPatch) (*models.EventMenuItem, error) {
	return update(ctx, r, "event menu item", id, patch, datastore.DataService.UpdateEventMenuItem)
}

func (r *Router) DeleteEventMenuItem(ctx context.Context, id int64) error {
	return remove(ctx, r, "event menu item", "delete", id, datastore.DataService.DeleteEventMenuItem)
}

func (r *Router) GetEventStaff(ctx context.Context, eventID int64) ([]models.EventStaff, error) {
	return gatherScoped(ctx, r, "event staff", eventID, datastore.DataService.GetEventStaff)
}

func (r *Router) AddEventStaff(ctx context.Context, staff models.EventStaff) (*models.EventStaff, error) {
	return create(ctx, r, "event staff", staff, datastore.DataService.AddEventStaff)
}

func (r *Router) UpdateEventStaff(ctx context.Context, id int64, patch models.EventStaffPatch) (*models.EventStaff, error) {
	return update(ctx, r, "event staff", id, patch, datastore.DataService.UpdateEventStaff)
}

func (r *Router) DeleteEventStaff(ctx context.Context, id int64) error {
	return remove(ctx, r, "event staff", "delete", id, datastore.DataService.DeleteEventStaff)
}

func (r *Router) GetEventEquipment(ctx context.Context, eventID int64) ([]models.EventEquipment, error) {
	return gatherScoped(ctx, r, "event equipment", eventID, datastore.DataService.GetEventEquipment)
}

func (r *Router) AddEventEquipment(ctx context.Context, equipment models.EventEquipment) (*models.EventEquipment, error) {
	return create(ctx, r, "event equipment", equipment, datastore.DataService.AddEventEquipment)
}

func (r *Router) UpdateEventEquipment(ctx context.Context, id int64, patch models.EventEquipmentPatch) (*models.EventEquipment, error) {
	return update(ctx, r, "event equipment", id, patch, datastore.DataService.UpdateEventEquipment)
}

func (r *Router) DeleteEventEquipment(ctx context.Context, id int64) error {
	return remove(ctx, r, "event equipment", "delete", id, datastore.DataService.DeleteEventEquipment)
}

func (r *Router) GetTasks(ctx context.Context, eventID int64) ([]models.Task, error) {
	return gatherScoped(ctx, r, "task", eventID, datastore.DataService.GetTasks)
}

func (r *Router) AddTask(ctx context.Context, task models.Task) (*models.Task, error) {
	return create(ctx, r, "task", task, datastore.DataService.AddTask)
}

func (r *Router) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	return update(ctx, r, "task", id, patch, datastore.DataService.UpdateTask)
}

func (r *Router) DeleteTask(ctx context.Context, id int64) error {
	return remove(ctx, r, "task", "delete", id, datastore.DataService.DeleteTask)
}
