package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runMaintenanceOrderRouter(g *echo.Group, ctrl *controllers.MaintenanceOrderController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/maintenance-orders", ctrl.GetMaintenanceOrders)
	g.GET("/maintenance-orders/:id", ctrl.FindMaintenanceOrder)
	g.POST("/maintenance-orders", ctrl.CreateMaintenanceOrder, writers)
	g.PUT("/maintenance-orders/:id", ctrl.UpdateMaintenanceOrder, writers)
	g.DELETE("/maintenance-orders/:id", ctrl.DeleteMaintenanceOrder, writers)
}
