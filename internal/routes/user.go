package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRole(entities.RoleAdmin)

	g.GET("/users", ctrl.GetUsers, admins)
	g.GET("/users/:id", ctrl.FindUser, admins)
	g.POST("/users", ctrl.CreateUser, admins)
	g.PUT("/users/:id", ctrl.UpdateUser, admins)
	g.DELETE("/users/:id", ctrl.DeleteUser, admins)
}
