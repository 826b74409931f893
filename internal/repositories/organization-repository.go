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

const organizationTable = "organizations"
const organizationFields = "id, name, contact_email, contact_phone, created_at, updated_at"

type OrganizationRepositoryInterface interface {
	GetOrganizations(ctx context.Context, params utils.QueryParams) ([]entities.Organization, uint64, error)
	FindOrganization(ctx context.Context, id uuid.UUID) (*entities.Organization, error)
	CreateOrganization(ctx context.Context, organization *entities.Organization) error
	UpdateOrganization(ctx context.Context, organization *entities.Organization) error
	SoftDeleteOrganization(ctx context.Context, id uuid.UUID) error
}

type OrganizationRepository struct {
	storage *pgxpool.Pool
}

func NewOrganizationRepository(storage *pgxpool.Pool) OrganizationRepositoryInterface {
	return &OrganizationRepository{storage: storage}
}

func (r *OrganizationRepository) GetOrganizations(ctx context.Context, params utils.QueryParams) ([]entities.Organization, uint64, error) {
	where := sq.And{sq.Eq{"is_deleted": false}}
	if params.Search != "" {
		where = append(where, sq.ILike{"name": "%" + params.Search + "%"})
	}

	query, args, err := sq.Select(organizationFields).
		From(organizationTable).
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

	var list []entities.Organization
	for rows.Next() {
		var o entities.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.ContactEmail, &o.ContactPhone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(organizationTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *OrganizationRepository) FindOrganization(ctx context.Context, id uuid.UUID) (*entities.Organization, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND is_deleted = false
	`, organizationFields, organizationTable)

	var o entities.Organization
	err := r.storage.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.ContactEmail, &o.ContactPhone, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepository) CreateOrganization(ctx context.Context, organization *entities.Organization) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, organizationTable)

	return r.storage.QueryRow(ctx, query,
		organization.ID,
		organization.Name,
		organization.ContactEmail,
		organization.ContactPhone,
	).Scan(&organization.CreatedAt, &organization.UpdatedAt)
}

func (r *OrganizationRepository) UpdateOrganization(ctx context.Context, organization *entities.Organization) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, contact_email = $2, contact_phone = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND is_deleted = false
	`, organizationTable)

	result, err := r.storage.Exec(ctx, query,
		organization.Name,
		organization.ContactEmail,
		organization.ContactPhone,
		organization.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrganizationRepository) SoftDeleteOrganization(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_deleted = false
	`, organizationTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
