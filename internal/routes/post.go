package routes

import (
	"equipment-system/internal/controllers"
	"equipment-system/internal/entities"
	"equipment-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runPostRouter(g *echo.Group, ctrl *controllers.PostController, authMW *middleware.AuthMiddleware) {
	writers := authMW.RequireRole(entities.RoleAdmin, entities.RoleManager)

	g.GET("/posts", ctrl.GetPosts)
	g.GET("/posts/:id", ctrl.FindPost)
	g.POST("/posts", ctrl.CreatePost, writers)
	g.PUT("/posts/:id", ctrl.UpdatePost, writers)
	g.DELETE("/posts/:id", ctrl.DeletePost, writers)
}
