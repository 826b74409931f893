package services

import (
	"context"

	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/utils"

	"go.uber.org/zap"
)

// EquipmentReportItem — строка отчета по реестру оборудования.
type EquipmentReportItem struct {
	AssetTag     string
	Name         string
	TypeName     string
	Status       entities.EquipmentStatus
	LocationType entities.LocationType
	LocationRef  string
	CreatedAt    string
	UpdatedAt    string
}

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, params utils.QueryParams) ([]EquipmentReportItem, uint64, error)
}

type ReportService struct {
	equipmentRepo     repositories.EquipmentRepositoryInterface
	equipmentTypeRepo repositories.EquipmentTypeRepositoryInterface
	logger            *zap.Logger
}

func NewReportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	equipmentTypeRepo repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		equipmentRepo:     equipmentRepo,
		equipmentTypeRepo: equipmentTypeRepo,
		logger:            logger,
	}
}

const reportTimeLayout = "02.01.2006 15:04"

func (s *ReportService) GetEquipmentReport(ctx context.Context, params utils.QueryParams) ([]EquipmentReportItem, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	equipments, total, err := s.equipmentRepo.GetEquipments(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	// Справочник типов маленький, тянем целиком и раскладываем по id.
	typeParams := utils.QueryParams{Limit: utils.MaxLimit}
	types, _, err := s.equipmentTypeRepo.GetEquipmentTypes(ctx, orgID, typeParams)
	if err != nil {
		return nil, 0, err
	}
	typeNames := make(map[string]string, len(types))
	for i := range types {
		typeNames[types[i].ID.String()] = types[i].Name
	}

	items := make([]EquipmentReportItem, 0, len(equipments))
	for i := range equipments {
		e := &equipments[i]
		item := EquipmentReportItem{
			AssetTag:     e.AssetTag,
			Name:         e.Name,
			TypeName:     typeNames[e.EquipmentTypeID.String()],
			Status:       e.Status,
			LocationType: e.CurrentLocation.Type,
			CreatedAt:    e.CreatedAt.Format(reportTimeLayout),
			UpdatedAt:    e.UpdatedAt.Format(reportTimeLayout),
		}
		if e.CurrentLocation.RefID != nil {
			item.LocationRef = e.CurrentLocation.RefID.String()
		}
		items = append(items, item)
	}

	return items, total, nil
}
