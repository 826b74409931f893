package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runOperatorRouter(g *echo.Group, ctrl *controllers.OperatorController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/operators", ctrl.GetOperators)
	g.GET("/operators/:id", ctrl.FindOperator)
	g.POST("/operators", ctrl.CreateOperator, writers)
	g.PUT("/operators/:id", ctrl.UpdateOperator, writers)
	g.DELETE("/operators/:id", ctrl.DeleteOperator, writers)
}
