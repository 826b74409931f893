package controllers

import (
	"net/http"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(assignmentService services.AssignmentServiceInterface, logger *zap.Logger) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, logger: logger}
}

func (c *AssignmentController) GetAssignments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, total, err := c.assignmentService.GetAssignments(reqCtx, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Журнал назначений успешно получен", http.StatusOK, total)
}

func (c *AssignmentController) FindAssignment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.FindAssignment(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Назначение успешно найдено", http.StatusOK)
}

func (c *AssignmentController) CreateAssignment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateAssignment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.CreateAssignment(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Назначение успешно записано", http.StatusCreated)
}

func (c *AssignmentController) UpdateAssignment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateAssignmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.assignmentService.UpdateAssignment(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Назначение успешно обновлено", http.StatusOK)
}

func (c *AssignmentController) DeleteAssignment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.assignmentService.SoftDeleteAssignment(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Назначение успешно удалено", http.StatusOK)
}
