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

type OrganizationServiceInterface interface {
	GetOrganizations(ctx context.Context, params utils.QueryParams) ([]dto.OrganizationDTO, uint64, error)
	FindOrganization(ctx context.Context, id uuid.UUID) (*dto.OrganizationDTO, error)
	CreateOrganization(ctx context.Context, payload dto.CreateOrganizationDTO) (*dto.OrganizationDTO, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, payload dto.UpdateOrganizationDTO) (*dto.OrganizationDTO, error)
	SoftDeleteOrganization(ctx context.Context, id uuid.UUID) error
}

// OrganizationService — единственная служба без привязки к организации из
// токена: организациями управляет администратор площадки.
type OrganizationService struct {
	repo   repositories.OrganizationRepositoryInterface
	logger *zap.Logger
}

func NewOrganizationService(repo repositories.OrganizationRepositoryInterface, logger *zap.Logger) OrganizationServiceInterface {
	return &OrganizationService{repo: repo, logger: logger}
}

func (s *OrganizationService) GetOrganizations(ctx context.Context, params utils.QueryParams) ([]dto.OrganizationDTO, uint64, error) {
	list, total, err := s.repo.GetOrganizations(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.OrganizationDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.OrganizationToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *OrganizationService) FindOrganization(ctx context.Context, id uuid.UUID) (*dto.OrganizationDTO, error) {
	organization, err := s.repo.FindOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.OrganizationToDTO(organization), nil
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, payload dto.CreateOrganizationDTO) (*dto.OrganizationDTO, error) {
	organization := &entities.Organization{
		ID:           uuid.New(),
		Name:         payload.Name,
		ContactEmail: payload.ContactEmail,
		ContactPhone: payload.ContactPhone,
	}

	if err := s.repo.CreateOrganization(ctx, organization); err != nil {
		s.logger.Error("Ошибка при создании организации", zap.Error(err))
		return nil, err
	}
	return dto.OrganizationToDTO(organization), nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, id uuid.UUID, payload dto.UpdateOrganizationDTO) (*dto.OrganizationDTO, error) {
	organization, err := s.repo.FindOrganization(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		organization.Name = *payload.Name
	}
	if payload.ContactEmail != nil {
		organization.ContactEmail = *payload.ContactEmail
	}
	if payload.ContactPhone != nil {
		organization.ContactPhone = *payload.ContactPhone
	}

	if err := s.repo.UpdateOrganization(ctx, organization); err != nil {
		return nil, err
	}
	return dto.OrganizationToDTO(organization), nil
}

func (s *OrganizationService) SoftDeleteOrganization(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDeleteOrganization(ctx, id)
}
