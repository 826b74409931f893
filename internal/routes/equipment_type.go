package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEquipmentTypeRouter(g *echo.Group, ctrl *controllers.EquipmentTypeController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/equipment-types", ctrl.GetEquipmentTypes)
	g.GET("/equipment-types/:id", ctrl.FindEquipmentType)
	g.POST("/equipment-types", ctrl.CreateEquipmentType, writers)
	g.PUT("/equipment-types/:id", ctrl.UpdateEquipmentType, writers)
	g.DELETE("/equipment-types/:id", ctrl.DeleteEquipmentType, writers)
}
