package router

import (
	"catering_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the user routes, including each user's schedule and mailbox.
func SetupUserRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	users := api.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/events", h.GetClientEvents)
		users.GET("/:id/availability", h.GetStaffAvailability)
		users.GET("/:id/blackout-dates", h.GetBlackoutDates)
		users.GET("/:id/messages", h.GetMessages)
	}
}

// SetupEventRoutes sets up events and everything booked against them.
func SetupEventRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	events := api.Group("/events")
	{
		events.GET("", h.GetEvents)
		events.POST("", h.CreateEvent)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
		events.GET("/:id/menu-items", h.GetEventMenuItems)
		events.GET("/:id/staff", h.GetEventStaff)
		events.GET("/:id/equipment", h.GetEventEquipment)
		events.GET("/:id/tasks", h.GetEventTasks)
	}

	crud(api.Group("/event-menu-items"), h.CreateEventMenuItem, h.UpdateEventMenuItem, h.DeleteEventMenuItem)
	crud(api.Group("/event-staff"), h.CreateEventStaff, h.UpdateEventStaff, h.DeleteEventStaff)
	crud(api.Group("/event-equipment"), h.CreateEventEquipment, h.UpdateEventEquipment, h.DeleteEventEquipment)
	crud(api.Group("/tasks"), h.CreateTask, h.UpdateTask, h.DeleteTask)
}

// SetupMenuRoutes sets up menus, menu items and recipes.
func SetupMenuRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	menus := api.Group("/menus")
	{
		menus.GET("", h.GetMenus)
		menus.POST("", h.CreateMenu)
		menus.GET("/:id", h.GetMenu)
		menus.PUT("/:id", h.UpdateMenu)
		menus.DELETE("/:id", h.DeleteMenu)
		menus.GET("/:id/items", h.GetMenuItemsByMenu)
	}

	items := api.Group("/menu-items")
	{
		items.GET("", h.GetMenuItems)
		items.POST("", h.CreateMenuItem)
		items.GET("/:id", h.GetMenuItem)
		items.PUT("/:id", h.UpdateMenuItem)
		items.DELETE("/:id", h.DeleteMenuItem)
		items.GET("/:id/recipe", h.GetRecipe)
	}

	crud(api.Group("/recipe-lines"), h.CreateRecipeLine, h.UpdateRecipeLine, h.DeleteRecipeLine)
}

// SetupInventoryRoutes sets up ingredients and equipment.
func SetupInventoryRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", h.GetIngredients)
		ingredients.POST("", h.CreateIngredient)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.PUT("/:id", h.UpdateIngredient)
		ingredients.DELETE("/:id", h.DeleteIngredient)
	}

	equipment := api.Group("/equipment")
	{
		equipment.GET("", h.GetEquipment)
		equipment.POST("", h.CreateEquipment)
		equipment.GET("/:id", h.GetEquipmentItem)
		equipment.PUT("/:id", h.UpdateEquipment)
		equipment.DELETE("/:id", h.DeleteEquipment)
	}
}

// SetupSchedulingRoutes sets up availability, blackout dates, open shifts and bids.
func SetupSchedulingRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	crud(api.Group("/availability"), h.CreateStaffAvailability, h.UpdateStaffAvailability, h.DeleteStaffAvailability)

	blackouts := api.Group("/blackout-dates")
	{
		blackouts.POST("", h.CreateBlackoutDate)
		blackouts.DELETE("/:id", h.DeleteBlackoutDate)
	}

	shifts := api.Group("/shifts")
	{
		shifts.GET("", h.GetOpenShifts)
		shifts.POST("", h.CreateOpenShift)
		shifts.GET("/:id", h.GetOpenShift)
		shifts.PUT("/:id", h.UpdateOpenShift)
		shifts.DELETE("/:id", h.DeleteOpenShift)
		shifts.GET("/:id/bids", h.GetShiftBids)
	}

	bids := api.Group("/shift-bids")
	{
		bids.POST("", h.CreateShiftBid)
		bids.PATCH("/:id/status", h.UpdateShiftBidStatus)
	}
}

// SetupMessageRoutes sets up messages and attachments.
func SetupMessageRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	messages := api.Group("/messages")
	{
		messages.POST("", h.CreateMessage)
		messages.PATCH("/:id/read", h.MarkMessageRead)
		messages.DELETE("/:id", h.DeleteMessage)
		messages.POST("/:id/attachments", h.UploadMessageAttachment)
	}
}

// SetupMaintenanceRoutes sets up sample data management.
func SetupMaintenanceRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	admin := api.Group("/admin")
	{
		admin.POST("/sample-data", h.SeedSampleData)
		admin.DELETE("/sample-data", h.ClearSampleData)
		admin.DELETE("/data", h.ClearAllData)
	}
}

// crud registers the create, update and delete routes of a resource that is
// listed through its parent.
func crud(group *gin.RouterGroup, create, update, remove gin.HandlerFunc) {
	group.POST("", create)
	group.PUT("/:id", update)
	group.DELETE("/:id", remove)
}
