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

type OperatorServiceInterface interface {
	GetOperators(ctx context.Context, params utils.QueryParams) ([]dto.OperatorDTO, uint64, error)
	FindOperator(ctx context.Context, id uuid.UUID) (*dto.OperatorDTO, error)
	CreateOperator(ctx context.Context, payload dto.CreateOperatorDTO) (*dto.OperatorDTO, error)
	UpdateOperator(ctx context.Context, id uuid.UUID, payload dto.UpdateOperatorDTO) (*dto.OperatorDTO, error)
	SoftDeleteOperator(ctx context.Context, id uuid.UUID) error
}

type OperatorService struct {
	repo   repositories.OperatorRepositoryInterface
	logger *zap.Logger
}

func NewOperatorService(repo repositories.OperatorRepositoryInterface, logger *zap.Logger) OperatorServiceInterface {
	return &OperatorService{repo: repo, logger: logger}
}

func (s *OperatorService) GetOperators(ctx context.Context, params utils.QueryParams) ([]dto.OperatorDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetOperators(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.OperatorDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.OperatorToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *OperatorService) FindOperator(ctx context.Context, id uuid.UUID) (*dto.OperatorDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	operator, err := s.repo.FindOperator(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.OperatorToDTO(operator), nil
}

func (s *OperatorService) CreateOperator(ctx context.Context, payload dto.CreateOperatorDTO) (*dto.OperatorDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	operator := &entities.Operator{
		ID:             uuid.New(),
		OrganizationID: orgID,
		FullName:       payload.FullName,
		BadgeNumber:    payload.BadgeNumber,
		Phone:          payload.Phone,
	}
	if payload.PostID != nil {
		postID, err := utils.ParseUUID(*payload.PostID, "post_id")
		if err != nil {
			return nil, err
		}
		operator.PostID = &postID
	}

	if err := s.repo.CreateOperator(ctx, operator); err != nil {
		s.logger.Error("Ошибка при создании оператора", zap.Error(err))
		return nil, err
	}
	return dto.OperatorToDTO(operator), nil
}

func (s *OperatorService) UpdateOperator(ctx context.Context, id uuid.UUID, payload dto.UpdateOperatorDTO) (*dto.OperatorDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	operator, err := s.repo.FindOperator(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.FullName != nil {
		operator.FullName = *payload.FullName
	}
	if payload.BadgeNumber != nil {
		operator.BadgeNumber = *payload.BadgeNumber
	}
	if payload.Phone != nil {
		operator.Phone = *payload.Phone
	}
	if payload.PostID != nil {
		postID, err := utils.ParseUUID(*payload.PostID, "post_id")
		if err != nil {
			return nil, err
		}
		operator.PostID = &postID
	}

	if err := s.repo.UpdateOperator(ctx, operator); err != nil {
		return nil, err
	}
	return dto.OperatorToDTO(operator), nil
}

func (s *OperatorService) SoftDeleteOperator(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteOperator(ctx, orgID, id)
}
