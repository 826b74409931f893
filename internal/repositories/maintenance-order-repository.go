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

const maintenanceOrderTable = "maintenance_orders"
const maintenanceOrderFields = "id, organization_id, equipment_id, type, status, description, opened_at, closed_at, next_due_at, created_at, updated_at"

type MaintenanceOrderRepositoryInterface interface {
	GetMaintenanceOrders(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.MaintenanceOrder, uint64, error)
	FindMaintenanceOrder(ctx context.Context, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error)
	FindMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error)
	CreateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error
	UpdateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error
	SoftDeleteMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) error
	CountPendingForEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, equipmentID uuid.UUID, excludeOrderID *uuid.UUID) (int64, error)
}

type MaintenanceOrderRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceOrderRepository(storage *pgxpool.Pool) MaintenanceOrderRepositoryInterface {
	return &MaintenanceOrderRepository{storage: storage}
}

func scanMaintenanceOrder(row pgx.Row) (*entities.MaintenanceOrder, error) {
	var o entities.MaintenanceOrder
	err := row.Scan(
		&o.ID,
		&o.OrganizationID,
		&o.EquipmentID,
		&o.Type,
		&o.Status,
		&o.Description,
		&o.OpenedAt,
		&o.ClosedAt,
		&o.NextDueAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *MaintenanceOrderRepository) GetMaintenanceOrders(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.MaintenanceOrder, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if equipmentID, ok := params.Filters["equipment_id"]; ok {
		where = append(where, sq.Eq{"equipment_id": equipmentID})
	}
	if status, ok := params.Filters["status"]; ok {
		where = append(where, sq.Eq{"status": status})
	}
	if orderType, ok := params.Filters["type"]; ok {
		where = append(where, sq.Eq{"type": orderType})
	}

	query, args, err := sq.Select(maintenanceOrderFields).
		From(maintenanceOrderTable).
		Where(where).
		OrderBy("opened_at DESC").
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

	var list []entities.MaintenanceOrder
	for rows.Next() {
		var o entities.MaintenanceOrder
		if err := rows.Scan(
			&o.ID, &o.OrganizationID, &o.EquipmentID, &o.Type, &o.Status,
			&o.Description, &o.OpenedAt, &o.ClosedAt, &o.NextDueAt,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(maintenanceOrderTable).
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

func findMaintenanceOrder(ctx context.Context, q querier, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, maintenanceOrderFields, maintenanceOrderTable)

	return scanMaintenanceOrder(q.QueryRow(ctx, query, id, orgID))
}

func (r *MaintenanceOrderRepository) FindMaintenanceOrder(ctx context.Context, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	return findMaintenanceOrder(ctx, r.storage, orgID, id)
}

func (r *MaintenanceOrderRepository) FindMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) (*entities.MaintenanceOrder, error) {
	return findMaintenanceOrder(ctx, tx, orgID, id)
}

func (r *MaintenanceOrderRepository) CreateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, equipment_id, type, status, description, opened_at, closed_at, next_due_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, maintenanceOrderTable)

	return tx.QueryRow(ctx, query,
		order.ID,
		order.OrganizationID,
		order.EquipmentID,
		order.Type,
		order.Status,
		order.Description,
		order.OpenedAt,
		order.ClosedAt,
		order.NextDueAt,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
}

func (r *MaintenanceOrderRepository) UpdateMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, order *entities.MaintenanceOrder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET type = $1, status = $2, description = $3, opened_at = $4, closed_at = $5, next_due_at = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7 AND organization_id = $8 AND is_deleted = false
	`, maintenanceOrderTable)

	result, err := tx.Exec(ctx, query,
		order.Type,
		order.Status,
		order.Description,
		order.OpenedAt,
		order.ClosedAt,
		order.NextDueAt,
		order.ID,
		order.OrganizationID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceOrderRepository) SoftDeleteMaintenanceOrderTx(ctx context.Context, tx pgx.Tx, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, maintenanceOrderTable)

	result, err := tx.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountPendingForEquipmentTx считает незакрытые (open/inprogress) заявки по
// оборудованию. excludeOrderID исключает заявку, которая закрывается прямо
// сейчас, чтобы решение о восстановлении статуса принималось без нее.
func (r *MaintenanceOrderRepository) CountPendingForEquipmentTx(ctx context.Context, tx pgx.Tx, orgID, equipmentID uuid.UUID, excludeOrderID *uuid.UUID) (int64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"equipment_id": equipmentID},
		sq.Eq{"is_deleted": false},
		sq.Eq{"status": []string{string(entities.MaintenanceStatusOpen), string(entities.MaintenanceStatusInProgress)}},
	}
	if excludeOrderID != nil {
		where = append(where, sq.NotEq{"id": *excludeOrderID})
	}

	query, args, err := sq.Select("COUNT(*)").
		From(maintenanceOrderTable).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
