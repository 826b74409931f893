package repositories

import (
	"context"
	"fmt"

	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const alertTable = "alerts"
const alertFields = "id, organization_id, equipment_id, kind, message, is_read, created_at, updated_at"

type AlertRepositoryInterface interface {
	GetAlerts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Alert, uint64, error)
	CreateAlert(ctx context.Context, alert *entities.Alert) error
	MarkAlertRead(ctx context.Context, orgID, id uuid.UUID) error
	SoftDeleteAlert(ctx context.Context, orgID, id uuid.UUID) error
}

type AlertRepository struct {
	storage *pgxpool.Pool
}

func NewAlertRepository(storage *pgxpool.Pool) AlertRepositoryInterface {
	return &AlertRepository{storage: storage}
}

func (r *AlertRepository) GetAlerts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Alert, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if isRead, ok := params.Filters["is_read"]; ok {
		where = append(where, sq.Eq{"is_read": isRead == "true"})
	}
	if equipmentID, ok := params.Filters["equipment_id"]; ok {
		where = append(where, sq.Eq{"equipment_id": equipmentID})
	}

	query, args, err := sq.Select(alertFields).
		From(alertTable).
		Where(where).
		OrderBy("created_at DESC").
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

	var list []entities.Alert
	for rows.Next() {
		var a entities.Alert
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.EquipmentID, &a.Kind, &a.Message, &a.IsRead, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(alertTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *AlertRepository) CreateAlert(ctx context.Context, alert *entities.Alert) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, equipment_id, kind, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, alertTable)

	return r.storage.QueryRow(ctx, query,
		alert.ID,
		alert.OrganizationID,
		alert.EquipmentID,
		alert.Kind,
		alert.Message,
	).Scan(&alert.CreatedAt, &alert.UpdatedAt)
}

func (r *AlertRepository) MarkAlertRead(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_read = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, alertTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) SoftDeleteAlert(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, alertTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
