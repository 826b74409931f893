package services

import (
	"context"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, params utils.QueryParams) ([]dto.UserDTO, uint64, error)
	FindUser(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	SoftDeleteUser(ctx context.Context, id uuid.UUID) error
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, params utils.QueryParams) ([]dto.UserDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetUsers(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.UserDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.UserToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *UserService) FindUser(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUser(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.UserToDTO(user), nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          payload.Email,
		FullName:       payload.FullName,
		PasswordHash:   string(hash),
		Role:           payload.Role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.Error("Ошибка при создании пользователя",
			zap.String("email", payload.Email),
			zap.Error(err))
		return nil, err
	}
	return dto.UserToDTO(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUser(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.FullName != nil {
		user.FullName = *payload.FullName
	}
	if payload.Role != nil {
		user.Role = *payload.Role
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return dto.UserToDTO(user), nil
}

func (s *UserService) SoftDeleteUser(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteUser(ctx, orgID, id)
}
