package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetEvents(c *gin.Context)   { list(c, "Events", h.store.GetEvents) }
func (h *Handler) GetEvent(c *gin.Context)    { getByID(c, "Event", h.store.GetEvent) }
func (h *Handler) CreateEvent(c *gin.Context) { create(c, "Event", h.store.AddEvent) }
func (h *Handler) UpdateEvent(c *gin.Context) { update(c, "Event", h.store.UpdateEvent) }
func (h *Handler) DeleteEvent(c *gin.Context) { remove(c, "Event", h.store.DeleteEvent) }

// GetClientEvents lists the events booked by the client in the path.
func (h *Handler) GetClientEvents(c *gin.Context) {
	listByParent(c, "Events", "client", h.store.GetEventsByClient)
}

// Event assignments: menu items, staff and equipment booked for an event.

func (h *Handler) GetEventMenuItems(c *gin.Context) {
	listByParent(c, "Event menu items", "event", h.store.GetEventMenuItems)
}
func (h *Handler) CreateEventMenuItem(c *gin.Context) {
	create(c, "Event menu item", h.store.AddEventMenuItem)
}
func (h *Handler) UpdateEventMenuItem(c *gin.Context) {
	update(c, "Event menu item", h.store.UpdateEventMenuItem)
}
func (h *Handler) DeleteEventMenuItem(c *gin.Context) {
	remove(c, "Event menu item", h.store.DeleteEventMenuItem)
}

func (h *Handler) GetEventStaff(c *gin.Context) {
	listByParent(c, "Event staff", "event", h.store.GetEventStaff)
}
func (h *Handler) CreateEventStaff(c *gin.Context) { create(c, "Event staff", h.store.AddEventStaff) }
func (h *Handler) UpdateEventStaff(c *gin.Context) { update(c, "Event staff", h.store.UpdateEventStaff) }
func (h *Handler) DeleteEventStaff(c *gin.Context) { remove(c, "Event staff", h.store.DeleteEventStaff) }

func (h *Handler) GetEventEquipment(c *gin.Context) {
	listByParent(c, "Event equipment", "event", h.store.GetEventEquipment)
}
func (h *Handler) CreateEventEquipment(c *gin.Context) {
	create(c, "Event equipment", h.store.AddEventEquipment)
}
func (h *Handler) UpdateEventEquipment(c *gin.Context) {
	update(c, "Event equipment", h.store.UpdateEventEquipment)
}
func (h *Handler) DeleteEventEquipment(c *gin.Context) {
	remove(c, "Event equipment", h.store.DeleteEventEquipment)
}

func (h *Handler) GetEventTasks(c *gin.Context) { listByParent(c, "Tasks", "event", h.store.GetTasks) }
func (h *Handler) CreateTask(c *gin.Context)    { create(c, "Task", h.store.AddTask) }
func (h *Handler) UpdateTask(c *gin.Context)    { update(c, "Task", h.store.UpdateTask) }
func (h *Handler) DeleteTask(c *gin.Context)    { remove(c, "Task", h.store.DeleteTask) }
