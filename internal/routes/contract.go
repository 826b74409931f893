package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runContractRouter(g *echo.Group, ctrl *controllers.ContractController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/contracts", ctrl.GetContracts)
	g.GET("/contracts/:id", ctrl.FindContract)
	g.POST("/contracts", ctrl.CreateContract, writers)
	g.PUT("/contracts/:id", ctrl.UpdateContract, writers)
	g.DELETE("/contracts/:id", ctrl.DeleteContract, writers)
}
