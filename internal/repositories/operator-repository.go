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

const operatorTable = "operators"
const operatorFields = "id, organization_id, full_name, badge_number, phone, post_id, created_at, updated_at"

type OperatorRepositoryInterface interface {
	GetOperators(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Operator, uint64, error)
	FindOperator(ctx context.Context, orgID, id uuid.UUID) (*entities.Operator, error)
	CreateOperator(ctx context.Context, operator *entities.Operator) error
	UpdateOperator(ctx context.Context, operator *entities.Operator) error
	SoftDeleteOperator(ctx context.Context, orgID, id uuid.UUID) error
}

type OperatorRepository struct {
	storage *pgxpool.Pool
}

func NewOperatorRepository(storage *pgxpool.Pool) OperatorRepositoryInterface {
	return &OperatorRepository{storage: storage}
}

func (r *OperatorRepository) GetOperators(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Operator, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if postID, ok := params.Filters["post_id"]; ok {
		where = append(where, sq.Eq{"post_id": postID})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{sq.ILike{"full_name": pattern}, sq.ILike{"badge_number": pattern}})
	}

	query, args, err := sq.Select(operatorFields).
		From(operatorTable).
		Where(where).
		OrderBy("full_name ASC").
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

	var list []entities.Operator
	for rows.Next() {
		var o entities.Operator
		if err := rows.Scan(&o.ID, &o.OrganizationID, &o.FullName, &o.BadgeNumber, &o.Phone, &o.PostID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(operatorTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *OperatorRepository) FindOperator(ctx context.Context, orgID, id uuid.UUID) (*entities.Operator, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, operatorFields, operatorTable)

	var o entities.Operator
	err := r.storage.QueryRow(ctx, query, id, orgID).Scan(&o.ID, &o.OrganizationID, &o.FullName, &o.BadgeNumber, &o.Phone, &o.PostID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OperatorRepository) CreateOperator(ctx context.Context, operator *entities.Operator) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, full_name, badge_number, phone, post_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, operatorTable)

	return r.storage.QueryRow(ctx, query,
		operator.ID,
		operator.OrganizationID,
		operator.FullName,
		operator.BadgeNumber,
		operator.Phone,
		operator.PostID,
	).Scan(&operator.CreatedAt, &operator.UpdatedAt)
}

func (r *OperatorRepository) UpdateOperator(ctx context.Context, operator *entities.Operator) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET full_name = $1, badge_number = $2, phone = $3, post_id = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND organization_id = $6 AND is_deleted = false
	`, operatorTable)

	result, err := r.storage.Exec(ctx, query,
		operator.FullName,
		operator.BadgeNumber,
		operator.Phone,
		operator.PostID,
		operator.ID,
		operator.OrganizationID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OperatorRepository) SoftDeleteOperator(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, operatorTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
