package services

import (
	"context"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentTypeServiceInterface interface {
	GetEquipmentTypes(ctx context.Context, params utils.QueryParams) ([]dto.EquipmentTypeDTO, uint64, error)
	FindEquipmentType(ctx context.Context, id uuid.UUID) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	SoftDeleteEquipmentType(ctx context.Context, id uuid.UUID) error
}

type EquipmentTypeService struct {
	repo   repositories.EquipmentTypeRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentTypeService(repo repositories.EquipmentTypeRepositoryInterface, logger *zap.Logger) EquipmentTypeServiceInterface {
	return &EquipmentTypeService{repo: repo, logger: logger}
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context, params utils.QueryParams) ([]dto.EquipmentTypeDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetEquipmentTypes(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EquipmentTypeDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.EquipmentTypeToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, id uuid.UUID) (*dto.EquipmentTypeDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipmentType, err := s.repo.FindEquipmentType(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.EquipmentTypeToDTO(equipmentType), nil
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipmentType := &entities.EquipmentType{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           payload.Name,
		Category:       payload.Category,
	}

	if err := s.repo.CreateEquipmentType(ctx, equipmentType); err != nil {
		s.logger.Error("Ошибка при создании типа оборудования", zap.Error(err))
		return nil, err
	}
	return dto.EquipmentTypeToDTO(equipmentType), nil
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipmentType, err := s.repo.FindEquipmentType(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		equipmentType.Name = *payload.Name
	}
	if payload.Category != nil {
		equipmentType.Category = *payload.Category
	}

	if err := s.repo.UpdateEquipmentType(ctx, equipmentType); err != nil {
		return nil, err
	}
	return dto.EquipmentTypeToDTO(equipmentType), nil
}

func (s *EquipmentTypeService) SoftDeleteEquipmentType(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteEquipmentType(ctx, orgID, id)
}
