package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"equipment-system/internal/services"
	"equipment-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEquipmentReport отдает реестр оборудования. При format=xlsx выгружается
// весь реестр одним файлом, пагинация игнорируется.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	params := utils.ParseQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))
	if format == "xlsx" {
		params.Limit = utils.MaxLimit
		params.Offset = 0
	}

	data, total, err := c.reportService.GetEquipmentReport(reqCtx, params)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK, total)
}

var equipmentReportHeaders = []string{
	"Инв. номер", "Наименование", "Тип", "Статус", "Местонахождение", "ID объекта", "Создано", "Обновлено",
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []services.EquipmentReportItem) error {
	f := excelize.NewFile()
	sheet := "Реестр оборудования"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.AssetTag, item.Name, item.TypeName, string(item.Status),
			string(item.LocationType), item.LocationRef, item.CreatedAt, item.UpdatedAt,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 25)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "G", "H", 20)

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
