package routes

import (
	"equipment-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAlertRouter(g *echo.Group, ctrl *controllers.AlertController) {
	g.GET("/alerts", ctrl.GetAlerts)
	g.PUT("/alerts/:id/read", ctrl.MarkAlertRead)
	g.DELETE("/alerts/:id", ctrl.DeleteAlert)
}
