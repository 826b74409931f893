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

const contractTable = "contracts"
const contractFields = "id, organization_id, client_name, number, starts_at, ends_at, created_at, updated_at"

type ContractRepositoryInterface interface {
	GetContracts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Contract, uint64, error)
	FindContract(ctx context.Context, orgID, id uuid.UUID) (*entities.Contract, error)
	CreateContract(ctx context.Context, contract *entities.Contract) error
	UpdateContract(ctx context.Context, contract *entities.Contract) error
	SoftDeleteContract(ctx context.Context, orgID, id uuid.UUID) error
}

type ContractRepository struct {
	storage *pgxpool.Pool
}

func NewContractRepository(storage *pgxpool.Pool) ContractRepositoryInterface {
	return &ContractRepository{storage: storage}
}

func (r *ContractRepository) GetContracts(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.Contract, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{sq.ILike{"client_name": pattern}, sq.ILike{"number": pattern}})
	}

	query, args, err := sq.Select(contractFields).
		From(contractTable).
		Where(where).
		OrderBy("starts_at DESC").
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

	var list []entities.Contract
	for rows.Next() {
		var c entities.Contract
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.ClientName, &c.Number, &c.StartsAt, &c.EndsAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(contractTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ContractRepository) FindContract(ctx context.Context, orgID, id uuid.UUID) (*entities.Contract, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, contractFields, contractTable)

	var c entities.Contract
	err := r.storage.QueryRow(ctx, query, id, orgID).Scan(&c.ID, &c.OrganizationID, &c.ClientName, &c.Number, &c.StartsAt, &c.EndsAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract *entities.Contract) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, client_name, number, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, contractTable)

	return r.storage.QueryRow(ctx, query,
		contract.ID,
		contract.OrganizationID,
		contract.ClientName,
		contract.Number,
		contract.StartsAt,
		contract.EndsAt,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)
}

func (r *ContractRepository) UpdateContract(ctx context.Context, contract *entities.Contract) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET client_name = $1, number = $2, starts_at = $3, ends_at = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND organization_id = $6 AND is_deleted = false
	`, contractTable)

	result, err := r.storage.Exec(ctx, query,
		contract.ClientName,
		contract.Number,
		contract.StartsAt,
		contract.EndsAt,
		contract.ID,
		contract.OrganizationID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) SoftDeleteContract(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, contractTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
