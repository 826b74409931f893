package services

import (
	"context"

	"equipment-system/internal/dto"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AlertServiceInterface interface {
	GetAlerts(ctx context.Context, params utils.QueryParams) ([]dto.AlertDTO, uint64, error)
	MarkAlertRead(ctx context.Context, id uuid.UUID) error
	SoftDeleteAlert(ctx context.Context, id uuid.UUID) error
}

type AlertService struct {
	repo   repositories.AlertRepositoryInterface
	logger *zap.Logger
}

func NewAlertService(repo repositories.AlertRepositoryInterface, logger *zap.Logger) AlertServiceInterface {
	return &AlertService{repo: repo, logger: logger}
}

func (s *AlertService) GetAlerts(ctx context.Context, params utils.QueryParams) ([]dto.AlertDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetAlerts(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.AlertDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.AlertToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *AlertService) MarkAlertRead(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.MarkAlertRead(ctx, orgID, id)
}

func (s *AlertService) SoftDeleteAlert(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteAlert(ctx, orgID, id)
}
