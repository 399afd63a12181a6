package routes

import (
	"github.com/gin-gonic/gin"

	workorderhandlers "workdesk/internal/interfaces/http/handlers/workorder"
	"workdesk/internal/interfaces/http/middleware"
)

type WorkOrderRouteConfig struct {
	WorkOrderHandler *workorderhandlers.WorkOrderHandler
}

func SetupWorkOrderRoutes(engine *gin.Engine, config *WorkOrderRouteConfig) {
	workOrders := engine.Group("/workorders")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		workOrders.POST("",
			middleware.RequireActingUser(),
			config.WorkOrderHandler.CreateWorkOrder)
		workOrders.GET("",
			config.WorkOrderHandler.ListWorkOrders)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		workOrders.POST("/:id/assign",
			config.WorkOrderHandler.AssignWorkOrder)
		workOrders.POST("/:id/comments",
			middleware.RequireActingUser(),
			config.WorkOrderHandler.AddComment)
		workOrders.PATCH("/:id/status",
			config.WorkOrderHandler.ChangeStatus)

		// Generic parameterized routes (must come LAST)
		workOrders.GET("/:id",
			config.WorkOrderHandler.GetWorkOrder)
		workOrders.PUT("/:id",
			config.WorkOrderHandler.UpdateWorkOrder)
		workOrders.DELETE("/:id",
			config.WorkOrderHandler.DeleteWorkOrder)
	}
}
