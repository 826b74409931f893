package routes

import (
	"equipment-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh-token", ctrl.RefreshToken)

	secureGroup.POST("/auth/logout", ctrl.Logout)
	secureGroup.GET("/auth/me", ctrl.Me)
}
