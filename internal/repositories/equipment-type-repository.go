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

const equipmentTypeTable = "equipment_types"
const equipmentTypeFields = "id, organization_id, name, category, created_at, updated_at"

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.EquipmentType, uint64, error)
	FindEquipmentType(ctx context.Context, orgID, id uuid.UUID) (*entities.EquipmentType, error)
	CreateEquipmentType(ctx context.Context, equipmentType *entities.EquipmentType) error
	UpdateEquipmentType(ctx context.Context, equipmentType *entities.EquipmentType) error
	SoftDeleteEquipmentType(ctx context.Context, orgID, id uuid.UUID) error
}

type EquipmentTypeRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{storage: storage}
}

func (r *EquipmentTypeRepository) GetEquipmentTypes(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.EquipmentType, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if params.Search != "" {
		where = append(where, sq.ILike{"name": "%" + params.Search + "%"})
	}

	query, args, err := sq.Select(equipmentTypeFields).
		From(equipmentTypeTable).
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

	var list []entities.EquipmentType
	for rows.Next() {
		var t entities.EquipmentType
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(equipmentTypeTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentTypeRepository) FindEquipmentType(ctx context.Context, orgID, id uuid.UUID) (*entities.EquipmentType, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, equipmentTypeFields, equipmentTypeTable)

	var t entities.EquipmentType
	err := r.storage.QueryRow(ctx, query, id, orgID).Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *EquipmentTypeRepository) CreateEquipmentType(ctx context.Context, equipmentType *entities.EquipmentType) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, name, category)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, equipmentTypeTable)

	return r.storage.QueryRow(ctx, query,
		equipmentType.ID,
		equipmentType.OrganizationID,
		equipmentType.Name,
		equipmentType.Category,
	).Scan(&equipmentType.CreatedAt, &equipmentType.UpdatedAt)
}

func (r *EquipmentTypeRepository) UpdateEquipmentType(ctx context.Context, equipmentType *entities.EquipmentType) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, category = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND organization_id = $4 AND is_deleted = false
	`, equipmentTypeTable)

	result, err := r.storage.Exec(ctx, query, equipmentType.Name, equipmentType.Category, equipmentType.ID, equipmentType.OrganizationID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentTypeRepository) SoftDeleteEquipmentType(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, equipmentTypeTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
