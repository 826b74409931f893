package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/equipment", ctrl.GetEquipments)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment, writers)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment, writers)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment, writers)
}
