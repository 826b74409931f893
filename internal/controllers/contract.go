package controllers

import (
	"net/http"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ContractController struct {
	contractService services.ContractServiceInterface
	logger          *zap.Logger
}

func NewContractController(contractService services.ContractServiceInterface, logger *zap.Logger) *ContractController {
	return &ContractController{contractService: contractService, logger: logger}
}

func (c *ContractController) GetContracts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, total, err := c.contractService.GetContracts(reqCtx, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Список договоров успешно получен", http.StatusOK, total)
}

func (c *ContractController) FindContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.FindContract(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно найден", http.StatusOK)
}

func (c *ContractController) CreateContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateContractDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.CreateContract(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно создан", http.StatusCreated)
}

func (c *ContractController) UpdateContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateContractDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.UpdateContract(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно обновлен", http.StatusOK)
}

func (c *ContractController) DeleteContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := utils.ParseUUID(ctx.Param("id"), "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.contractService.SoftDeleteContract(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Договор успешно удален", http.StatusOK)
}
