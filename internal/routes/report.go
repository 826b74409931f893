package routes

import (
	"equipment-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/equipment", ctrl.GetEquipmentReport)
}
