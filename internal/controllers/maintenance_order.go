package controllers

import (
	"net/http"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MaintenanceOrderController struct {
	orderService services.MaintenanceOrderServiceInterface
	logger       *zap.Logger
}

func NewMaintenanceOrderController(orderService services.MaintenanceOrderServiceInterface, logger *zap.Logger) *MaintenanceOrderController {
	return &MaintenanceOrderController{orderService: orderService, logger: logger}
}

func (c *MaintenanceOrderController) GetMaintenanceOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, total, err := c.orderService.GetMaintenanceOrders(reqCtx, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Список заявок на обслуживание успешно получен", http.StatusOK, total)
}

func (c *MaintenanceOrderController) FindMaintenanceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.FindMaintenanceOrder(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка на обслуживание успешно найдена", http.StatusOK)
}

func (c *MaintenanceOrderController) CreateMaintenanceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMaintenanceOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateMaintenanceOrder: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.CreateMaintenanceOrder(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка на обслуживание успешно создана", http.StatusCreated)
}

func (c *MaintenanceOrderController) UpdateMaintenanceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaintenanceOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.UpdateMaintenanceOrder(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка на обслуживание успешно обновлена", http.StatusOK)
}

func (c *MaintenanceOrderController) DeleteMaintenanceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.orderService.SoftDeleteMaintenanceOrder(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Заявка на обслуживание успешно удалена", http.StatusOK)
}
