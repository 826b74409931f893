package repositories

import (
	"context"
	"errors"
	"fmt"

	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postTable = "posts"
const postFields = "id, organization_id, name, address, contract_id, created_at, updated_at"

type PostRepositoryInterface interface {
	GetPosts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Post, uint64, error)
	FindPost(ctx context.Context, orgID, id uuid.UUID) (*entities.Post, error)
	CreatePost(ctx context.Context, post *entities.Post) error
	UpdatePost(ctx context.Context, post *entities.Post) error
	SoftDeletePost(ctx context.Context, orgID, id uuid.UUID) error
}

type PostRepository struct {
	storage *pgxpool.Pool
}

func NewPostRepository(storage *pgxpool.Pool) PostRepositoryInterface {
	return &PostRepository{storage: storage}
}

func (r *PostRepository) GetPosts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Post, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if contractID, ok := params.Filters["contract_id"]; ok {
		where = append(where, sq.Eq{"contract_id": contractID})
	}
	if params.Search != "" {
		where = append(where, sq.ILike{"name": "%" + params.Search + "%"})
	}

	query, args, err := sq.Select(postFields).
		From(postTable).
		Where(where).
		OrderBy("name ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Post
	for rows.Next() {
		var p entities.Post
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Address, &p.ContractID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(postTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *PostRepository) FindPost(ctx context.Context, orgID, id uuid.UUID) (*entities.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, postFields, postTable)

	var p entities.Post
	err := r.storage.QueryRow(ctx, query, id, orgID).Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Address, &p.ContractID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entities.Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, name, address, contract_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, postTable)

	return r.storage.QueryRow(ctx, query,
		post.ID,
		post.OrganizationID,
		post.Name,
		post.Address,
		post.ContractID,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
}

func (r *PostRepository) UpdatePost(ctx context.Context, post *entities.Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, address = $2, contract_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND organization_id = $5 AND is_deleted = false
	`, postTable)

	result, err := r.storage.Exec(ctx, query, post.Name, post.Address, post.ContractID, post.ID, post.OrganizationID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostRepository) SoftDeletePost(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, postTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
