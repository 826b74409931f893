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

const assignmentTable = "assignments"
const assignmentFields = "id, organization_id, equipment_id, action, from_location_type, from_location_ref_id, to_location_type, to_location_ref_id, effective_at, notes, created_at, updated_at"

type AssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Assignment, uint64, error)
	FindAssignment(ctx context.Context, orgID, id uuid.UUID) (*entities.Assignment, error)
	CreateAssignmentTx(ctx context.Context, tx pgx.Tx, assignment *entities.Assignment) error
	UpdateAssignment(ctx context.Context, orgID, id uuid.UUID, assignment *entities.Assignment) error
	SoftDeleteAssignment(ctx context.Context, orgID, id uuid.UUID) error
}

type AssignmentRepository struct {
	storage *pgxpool.Pool
}

func NewAssignmentRepository(storage *pgxpool.Pool) AssignmentRepositoryInterface {
	return &AssignmentRepository{storage: storage}
}

func scanAssignmentRow(row pgx.Row) (*entities.Assignment, error) {
	var a entities.Assignment
	err := row.Scan(
		&a.ID,
		&a.OrganizationID,
		&a.EquipmentID,
		&a.Action,
		&a.FromLocation.Type,
		&a.FromLocation.RefID,
		&a.ToLocation.Type,
		&a.ToLocation.RefID,
		&a.EffectiveAt,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) GetAssignments(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Assignment, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if equipmentID, ok := params.Filters["equipment_id"]; ok {
		where = append(where, sq.Eq{"equipment_id": equipmentID})
	}
	if action, ok := params.Filters["action"]; ok {
		where = append(where, sq.Eq{"action": action})
	}

	query, args, err := sq.Select(assignmentFields).
		From(assignmentTable).
		Where(where).
		OrderBy("effective_at DESC, created_at DESC").
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

	var list []entities.Assignment
	for rows.Next() {
		var a entities.Assignment
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.EquipmentID, &a.Action,
			&a.FromLocation.Type, &a.FromLocation.RefID,
			&a.ToLocation.Type, &a.ToLocation.RefID,
			&a.EffectiveAt, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From(assignmentTable).
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

func (r *AssignmentRepository) FindAssignment(ctx context.Context, orgID, id uuid.UUID) (*entities.Assignment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, assignmentFields, assignmentTable)

	return scanAssignmentRow(r.storage.QueryRow(ctx, query, id, orgID))
}

func (r *AssignmentRepository) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, assignment *entities.Assignment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, equipment_id, action, from_location_type, from_location_ref_id, to_location_type, to_location_ref_id, effective_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, assignmentTable)

	return tx.QueryRow(ctx, query,
		assignment.ID,
		assignment.OrganizationID,
		assignment.EquipmentID,
		assignment.Action,
		assignment.FromLocation.Type,
		assignment.FromLocation.RefID,
		assignment.ToLocation.Type,
		assignment.ToLocation.RefID,
		assignment.EffectiveAt,
		assignment.Notes,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
}

// UpdateAssignment меняет только effective_at и notes: журнал перемещений
// append-only, остальные поля после создания неизменяемы.
func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, orgID, id uuid.UUID, assignment *entities.Assignment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET effective_at = $1, notes = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND organization_id = $4 AND is_deleted = false
	`, assignmentTable)

	result, err := r.storage.Exec(ctx, query, assignment.EffectiveAt, assignment.Notes, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AssignmentRepository) SoftDeleteAssignment(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, assignmentTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
