package services

import (
	"context"
	"errors"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, params utils.QueryParams) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	SoftDeleteEquipment(ctx context.Context, id uuid.UUID) error
}

// EquipmentService ведет реестр оборудования. Поля status и current_location
// здесь только читаются: их меняют службы назначений и обслуживания.
type EquipmentService struct {
	equipmentRepo     repositories.EquipmentRepositoryInterface
	equipmentTypeRepo repositories.EquipmentTypeRepositoryInterface
	logger            *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	equipmentTypeRepo repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:     equipmentRepo,
		equipmentTypeRepo: equipmentTypeRepo,
		logger:            logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, params utils.QueryParams) ([]dto.EquipmentDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.equipmentRepo.GetEquipments(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EquipmentDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.EquipmentToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	equipmentType, err := s.equipmentTypeRepo.FindEquipmentType(ctx, orgID, equipment.EquipmentTypeID)
	if err == nil {
		equipment.EquipmentType = equipmentType
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return dto.EquipmentToDTO(equipment), nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	typeID, err := utils.ParseUUID(payload.EquipmentTypeID, "equipment_type_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.equipmentTypeRepo.FindEquipmentType(ctx, orgID, typeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("тип оборудования %s не найден", typeID)
		}
		return nil, err
	}

	// Новое оборудование всегда начинает на складе и доступно.
	equipment := &entities.Equipment{
		ID:              uuid.New(),
		OrganizationID:  orgID,
		EquipmentTypeID: typeID,
		AssetTag:        payload.AssetTag,
		Name:            payload.Name,
		Status:          entities.EquipmentStatusAvailable,
		CurrentLocation: entities.StockLocation(),
	}

	if err := s.equipmentRepo.CreateEquipment(ctx, equipment); err != nil {
		s.logger.Error("Ошибка при создании оборудования",
			zap.String("assetTag", payload.AssetTag),
			zap.Error(err))
		return nil, err
	}

	return dto.EquipmentToDTO(equipment), nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.EquipmentTypeID != nil {
		typeID, err := utils.ParseUUID(*payload.EquipmentTypeID, "equipment_type_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.equipmentTypeRepo.FindEquipmentType(ctx, orgID, typeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("тип оборудования %s не найден", typeID)
			}
			return nil, err
		}
		equipment.EquipmentTypeID = typeID
	}
	if payload.AssetTag != nil {
		equipment.AssetTag = *payload.AssetTag
	}
	if payload.Name != nil {
		equipment.Name = *payload.Name
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, equipment); err != nil {
		return nil, err
	}
	return dto.EquipmentToDTO(equipment), nil
}

func (s *EquipmentService) SoftDeleteEquipment(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.equipmentRepo.SoftDeleteEquipment(ctx, orgID, id)
}
