package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxRoleRepository implements domain.RoleRepository using pgx.
type PgxRoleRepository struct {
	db DB
}

// NewRoleRepository creates a new PgxRoleRepository.
func NewRoleRepository(db DB) *PgxRoleRepository {
	return &PgxRoleRepository{db: db}
}

// FindByCode returns the role with the given code, or (nil, nil).
func (r *PgxRoleRepository) FindByCode(ctx context.Context, code string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx,
		`SELECT id, code, name, created_at FROM roles WHERE code = $1`, code,
	).Scan(&role.ID, &role.Code, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// FindByUser returns the roles assigned to the given user.
func (r *PgxRoleRepository) FindByUser(ctx context.Context, userID int) ([]domain.Role, error) {
	query := `
		SELECT ro.id, ro.code, ro.name, ro.created_at
		FROM users_roles ur
		JOIN roles ro ON ur.role_id = ro.id
		WHERE ur.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Code, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Create inserts a new role.
func (r *PgxRoleRepository) Create(ctx context.Context, code, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (code, name) VALUES ($1, $2) RETURNING id, code, name, created_at`,
		code, name,
	).Scan(&role.ID, &role.Code, &role.Name, &role.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
