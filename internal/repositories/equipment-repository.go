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

const equipmentTable = "equipments"
const equipmentFields = "id, organization_id, equipment_type_id, asset_tag, name, status, current_location_type, current_location_ref_id, created_at, updated_at"

var equipmentSortable = []string{"created_at", "updated_at", "asset_tag", "name", "status"}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, orgID, id uuid.UUID) (*entities.Equipment, error)
	FindEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment) error
	UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error
	UpdateEquipmentStateTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID, location entities.Location, status entities.EquipmentStatus) error
	SoftDeleteEquipment(ctx context.Context, orgID, id uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.EquipmentTypeID,
		&e.AssetTag,
		&e.Name,
		&e.Status,
		&e.CurrentLocation.Type,
		&e.CurrentLocation.RefID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Equipment, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if status, ok := params.Filters["status"]; ok {
		where = append(where, sq.Eq{"status": status})
	}
	if typeID, ok := params.Filters["equipment_type_id"]; ok {
		where = append(where, sq.Eq{"equipment_type_id": typeID})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{sq.ILike{"asset_tag": pattern}, sq.ILike{"name": pattern}})
	}

	orderBy := "created_at DESC"
	if contains(equipmentSortable, params.SortBy) {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}
		orderBy = fmt.Sprintf("%s %s", params.SortBy, direction)
	}

	query, args, err := sq.Select(equipmentFields).
		From(equipmentTable).
		Where(where).
		OrderBy(orderBy).
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

	var list []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.OrganizationID, &e.EquipmentTypeID, &e.AssetTag, &e.Name,
			&e.Status, &e.CurrentLocation.Type, &e.CurrentLocation.RefID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(equipmentTable).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func findEquipment(ctx context.Context, q querier, orgID, id uuid.UUID) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, equipmentFields, equipmentTable)

	return scanEquipment(q.QueryRow(ctx, query, id, orgID))
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, orgID, id uuid.UUID) (*entities.Equipment, error) {
	return findEquipment(ctx, r.storage, orgID, id)
}

func (r *EquipmentRepository) FindEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.Equipment, error) {
	return findEquipment(ctx, tx, orgID, id)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, equipment_type_id, asset_tag, name, status, current_location_type, current_location_ref_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, equipmentTable)

	return r.storage.QueryRow(ctx, query,
		equipment.ID,
		equipment.OrganizationID,
		equipment.EquipmentTypeID,
		equipment.AssetTag,
		equipment.Name,
		equipment.Status,
		equipment.CurrentLocation.Type,
		equipment.CurrentLocation.RefID,
	).Scan(&equipment.CreatedAt, &equipment.UpdatedAt)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, equipment *entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET equipment_type_id = $1, asset_tag = $2, name = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND organization_id = $5 AND is_deleted = false
	`, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		equipment.EquipmentTypeID,
		equipment.AssetTag,
		equipment.Name,
		equipment.ID,
		equipment.OrganizationID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEquipmentStateTx обновляет производное состояние (статус и местонахождение).
// Фильтр по организации и is_deleted не дает записать состояние чужому
// или удаленному оборудованию.
func (r *EquipmentRepository) UpdateEquipmentStateTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID, location entities.Location, status entities.EquipmentStatus) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, current_location_type = $2, current_location_ref_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND organization_id = $5 AND is_deleted = false
	`, equipmentTable)

	result, err := tx.Exec(ctx, query, status, location.Type, location.RefID, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) SoftDeleteEquipment(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, equipmentTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if val == item {
			return true
		}
	}
	return false
}
