package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runOrganizationRouter(g *echo.Group, ctrl *controllers.OrganizationController, authMW *middleware.AuthMiddleware) {
	admins := authMW.RequireRole(entities.RoleAdmin)

	g.GET("/organizations", ctrl.GetOrganizations, admins)
	g.GET("/organizations/:id", ctrl.FindOrganization, admins)
	g.POST("/organizations", ctrl.CreateOrganization, admins)
	g.PUT("/organizations/:id", ctrl.UpdateOrganization, admins)
	g.DELETE("/organizations/:id", ctrl.DeleteOrganization, admins)
}
