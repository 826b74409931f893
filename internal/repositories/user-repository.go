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

const userTable = "users"
const userFields = "id, organization_id, email, full_name, password_hash, role, created_at, updated_at"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, orgID, id uuid.UUID) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, user *entities.User) error
	SoftDeleteUser(ctx context.Context, orgID, id uuid.UUID) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.OrganizationID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, orgID uuid.UUID, params utils.QueryParams) ([]entities.User, uint64, error) {
	where := sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Eq{"is_deleted": false},
	}
	if role, ok := params.Filters["role"]; ok {
		where = append(where, sq.Eq{"role": role})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, sq.Or{sq.ILike{"email": pattern}, sq.ILike{"full_name": pattern}})
	}

	query, args, err := sq.Select(userFields).
		From(userTable).
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

	var list []entities.User
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.OrganizationID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From(userTable).Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *UserRepository) FindUser(ctx context.Context, orgID, id uuid.UUID) (*entities.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, userFields, userTable)

	return scanUser(r.storage.QueryRow(ctx, query, id, orgID))
}

// FindUserByEmail ищет по всем организациям: email уникален глобально
// и используется для входа.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE email = $1 AND is_deleted = false
	`, userFields, userTable)

	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, organization_id, email, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, userTable)

	return r.storage.QueryRow(ctx, query,
		user.ID,
		user.OrganizationID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET full_name = $1, role = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND organization_id = $4 AND is_deleted = false
	`, userTable)

	result, err := r.storage.Exec(ctx, query, user.FullName, user.Role, user.ID, user.OrganizationID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SoftDeleteUser(ctx context.Context, orgID, id uuid.UUID) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND organization_id = $2 AND is_deleted = false
	`, userTable)

	result, err := r.storage.Exec(ctx, query, id, orgID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
