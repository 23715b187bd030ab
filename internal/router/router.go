package router

import (
	"catering_backend/internal/datastore"
	"catering_backend/internal/handlers"
	"catering_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store datastore.DataService) {
	h := handlers.NewHandler(store)

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.RequestID())
	{
		SetupUserRoutes(apiV1, h)
		SetupEventRoutes(apiV1, h)
		SetupMenuRoutes(apiV1, h)
		SetupInventoryRoutes(apiV1, h)
		SetupSchedulingRoutes(apiV1, h)
		SetupMessageRoutes(apiV1, h)
		SetupMaintenanceRoutes(apiV1, h)
	}
}
