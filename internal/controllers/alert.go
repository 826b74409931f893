package controllers

import (
	"net/http"

	"equipment-system/internal/services"
	"equipment-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AlertController struct {
	alertService services.AlertServiceInterface
	logger       *zap.Logger
}

func NewAlertController(alertService services.AlertServiceInterface, logger *zap.Logger) *AlertController {
	return &AlertController{alertService: alertService, logger: logger}
}

func (c *AlertController) GetAlerts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, total, err := c.alertService.GetAlerts(reqCtx, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Список уведомлений успешно получен", http.StatusOK, total)
}

func (c *AlertController) MarkAlertRead(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.alertService.MarkAlertRead(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Уведомление отмечено прочитанным", http.StatusOK)
}

func (c *AlertController) DeleteAlert(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.alertService.SoftDeleteAlert(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Уведомление успешно удалено", http.StatusOK)
}
