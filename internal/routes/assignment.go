package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAssignmentRouter(g *echo.Group, ctrl *controllers.AssignmentController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/assignments", ctrl.GetAssignments)
	g.GET("/assignments/:id", ctrl.FindAssignment)
	g.POST("/assignments", ctrl.CreateAssignment, writers)
	g.PUT("/assignments/:id", ctrl.UpdateAssignment, writers)
	g.DELETE("/assignments/:id", ctrl.DeleteAssignment, writers)
}
