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

type ContractServiceInterface interface {
	GetContracts(ctx context.Context, params utils.QueryParams) ([]dto.ContractDTO, uint64, error)
	FindContract(ctx context.Context, id uuid.UUID) (*dto.ContractDTO, error)
	CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*dto.ContractDTO, error)
	UpdateContract(ctx context.Context, id uuid.UUID, payload dto.UpdateContractDTO) (*dto.ContractDTO, error)
	SoftDeleteContract(ctx context.Context, id uuid.UUID) error
}

type ContractService struct {
	repo   repositories.ContractRepositoryInterface
	logger *zap.Logger
}

func NewContractService(repo repositories.ContractRepositoryInterface, logger *zap.Logger) ContractServiceInterface {
	return &ContractService{repo: repo, logger: logger}
}

func (s *ContractService) GetContracts(ctx context.Context, params utils.QueryParams) ([]dto.ContractDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetContracts(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.ContractDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.ContractToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *ContractService) FindContract(ctx context.Context, id uuid.UUID) (*dto.ContractDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contract, err := s.repo.FindContract(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.ContractToDTO(contract), nil
}

func (s *ContractService) CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*dto.ContractDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contract := &entities.Contract{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ClientName:     payload.ClientName,
		Number:         payload.Number,
		StartsAt:       payload.StartsAt,
		EndsAt:         payload.EndsAt,
	}

	if err := s.repo.CreateContract(ctx, contract); err != nil {
		s.logger.Error("Ошибка при создании договора", zap.Error(err))
		return nil, err
	}
	return dto.ContractToDTO(contract), nil
}

func (s *ContractService) UpdateContract(ctx context.Context, id uuid.UUID, payload dto.UpdateContractDTO) (*dto.ContractDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contract, err := s.repo.FindContract(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.ClientName != nil {
		contract.ClientName = *payload.ClientName
	}
	if payload.Number != nil {
		contract.Number = *payload.Number
	}
	if payload.StartsAt != nil {
		contract.StartsAt = *payload.StartsAt
	}
	if payload.EndsAt != nil {
		contract.EndsAt = payload.EndsAt
	}

	if err := s.repo.UpdateContract(ctx, contract); err != nil {
		return nil, err
	}
	return dto.ContractToDTO(contract), nil
}

func (s *ContractService) SoftDeleteContract(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteContract(ctx, orgID, id)
}
