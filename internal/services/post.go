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

type PostServiceInterface interface {
	GetPosts(ctx context.Context, params utils.QueryParams) ([]dto.PostDTO, uint64, error)
	FindPost(ctx context.Context, id uuid.UUID) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, payload dto.CreatePostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id uuid.UUID, payload dto.UpdatePostDTO) (*dto.PostDTO, error)
	SoftDeletePost(ctx context.Context, id uuid.UUID) error
}

type PostService struct {
	repo   repositories.PostRepositoryInterface
	logger *zap.Logger
}

func NewPostService(repo repositories.PostRepositoryInterface, logger *zap.Logger) PostServiceInterface {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) GetPosts(ctx context.Context, params utils.QueryParams) ([]dto.PostDTO, uint64, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	list, total, err := s.repo.GetPosts(ctx, orgID, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PostDTO, 0, len(list))
	for i := range list {
		result = append(result, *dto.PostToDTO(&list[i]))
	}
	return result, total, nil
}

func (s *PostService) FindPost(ctx context.Context, id uuid.UUID) (*dto.PostDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindPost(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return dto.PostToDTO(post), nil
}

func (s *PostService) CreatePost(ctx context.Context, payload dto.CreatePostDTO) (*dto.PostDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	post := &entities.Post{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           payload.Name,
		Address:        payload.Address,
	}
	if payload.ContractID != nil {
		contractID, err := utils.ParseUUID(*payload.ContractID, "contract_id")
		if err != nil {
			return nil, err
		}
		post.ContractID = &contractID
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		s.logger.Error("Ошибка при создании поста", zap.Error(err))
		return nil, err
	}
	return dto.PostToDTO(post), nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, payload dto.UpdatePostDTO) (*dto.PostDTO, error) {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindPost(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		post.Name = *payload.Name
	}
	if payload.Address != nil {
		post.Address = *payload.Address
	}
	if payload.ContractID != nil {
		contractID, err := utils.ParseUUID(*payload.ContractID, "contract_id")
		if err != nil {
			return nil, err
		}
		post.ContractID = &contractID
	}

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return dto.PostToDTO(post), nil
}

func (s *PostService) SoftDeletePost(ctx context.Context, id uuid.UUID) error {
	orgID, err := utils.OrganizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.SoftDeletePost(ctx, orgID, id)
}
