package services

import (
	"context"
	"errors"
	"fmt"

	"equipment-system/internal/dto"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/service"
	"equipment-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenKeyPrefix = "refresh_token:"

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	RefreshToken(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func refreshTokenKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", refreshTokenKeyPrefix, userID)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.OrganizationID, user.Role)
	if err != nil {
		s.logger.Error("Ошибка при генерации токенов", zap.Error(err))
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, refreshTokenKey(user.ID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		s.logger.Error("Ошибка при сохранении refresh-токена", zap.Error(err))
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken выдает новую пару токенов. Принимается только тот refresh-токен,
// который лежит в кеше: повторное использование старого отклоняется.
func (s *AuthService) RefreshToken(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cacheRepo.Get(ctx, refreshTokenKey(claims.UserID))
	if err != nil || stored != payload.RefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUser(ctx, claims.OrganizationID, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.OrganizationID, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, refreshTokenKey(user.ID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.cacheRepo.Del(ctx, refreshTokenKey(userID))
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	return dto.UserToDTO(user), nil
}
