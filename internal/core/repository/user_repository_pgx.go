package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

const userColumns = `user_id, username, email, password_hash, full_name, avatar_id,
	registration_date, last_login, is_active, is_admin, timezone, language,
	country, date_of_birth, two_factor_auth_enabled, last_password_change`

// PgxUserRepository implements domain.UserRepository using pgx.
type PgxUserRepository struct {
	db DB
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db DB) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName,
		&u.AvatarID, &u.RegistrationDate, &u.LastLogin, &u.IsActive,
		&u.IsAdmin, &u.Timezone, &u.Language, &u.Country, &u.DateOfBirth,
		&u.TwoFactorAuthEnabled, &u.LastPasswordChange,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given id, or (nil, nil).
func (r *PgxUserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// FindByUsername returns the user matching the given username, or (nil, nil).
func (r *PgxUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// FindMultiple returns up to limit users.
func (r *PgxUserRepository) FindMultiple(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// FindWithRoles returns all users together with their assigned roles.
func (r *PgxUserRepository) FindWithRoles(ctx context.Context) ([]domain.UserWithRoles, error) {
	users, err := r.FindMultiple(ctx, 100)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ur.user_id, ro.id, ro.code, ro.name, ro.created_at
		FROM users_roles ur
		JOIN roles ro ON ur.role_id = ro.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rolesByUser := make(map[int][]domain.Role)
	for rows.Next() {
		var userID int
		var role domain.Role
		if err := rows.Scan(&userID, &role.ID, &role.Code, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		rolesByUser[userID] = append(rolesByUser[userID], role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]domain.UserWithRoles, 0, len(users))
	for _, u := range users {
		result = append(result, domain.UserWithRoles{User: u, Roles: rolesByUser[u.UserID]})
	}
	return result, nil
}

// Create inserts a new user and assigns the given role codes inside one
// transaction, creating roles that do not exist yet.
func (r *PgxUserRepository) Create(ctx context.Context, newUser domain.NewUser, roleCodes []string) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (username, email, password_hash, full_name, country, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	user, err := scanUser(tx.QueryRow(ctx, query,
		newUser.Username, newUser.Email, newUser.PasswordHash,
		newUser.FullName, newUser.Country, newUser.DateOfBirth,
	))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	for _, code := range roleCodes {
		var roleID int
		err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE code = $1`, code).Scan(&roleID)
		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(ctx,
				`INSERT INTO roles (code, name) VALUES ($1, $2) RETURNING id`,
				code, code,
			).Scan(&roleID)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve role %q: %w", code, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO users_roles (user_id, role_id) VALUES ($1, $2)`,
			user.UserID, roleID,
		); err != nil {
			return nil, fmt.Errorf("assign role %q: %w", code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create user: %w", err)
	}
	return user, nil
}

// Update overwrites the mutable fields of the user with the given id.
func (r *PgxUserRepository) Update(ctx context.Context, id int, user domain.User) (*domain.User, error) {
	query := `
		UPDATE users SET
			username = $2, email = $3, password_hash = $4, full_name = $5,
			avatar_id = $6, last_login = $7, is_active = $8, is_admin = $9,
			timezone = $10, language = $11, country = $12,
			two_factor_auth_enabled = $13, last_password_change = $14
		WHERE user_id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, query,
		id, user.Username, user.Email, user.PasswordHash, user.FullName,
		user.AvatarID, user.LastLogin, user.IsActive, user.IsAdmin,
		user.Timezone, user.Language, user.Country,
		user.TwoFactorAuthEnabled, user.LastPasswordChange,
	))
}

// Delete removes the user and every row that references it.
func (r *PgxUserRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer tx.Rollback(ctx)

	// Dependent rows first; the schema has no ON DELETE CASCADE.
	dependents := []string{
		`DELETE FROM users_roles WHERE user_id = $1`,
		`DELETE FROM total_trophies WHERE user_id = $1`,
		`DELETE FROM trophies WHERE user_id = $1`,
		`DELETE FROM user_levels WHERE user_id = $1`,
		`DELETE FROM currency WHERE user_id = $1`,
		`DELETE FROM friendships WHERE user_id = $1`,
	}
	for _, q := range dependents {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return fmt.Errorf("delete dependent rows: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteByUsername resolves the username and deletes that user.
func (r *PgxUserRepository) DeleteByUsername(ctx context.Context, username string) error {
	user, err := r.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return pgx.ErrNoRows
	}
	return r.Delete(ctx, user.UserID)
}

// UsernameExists reports whether a user with the username exists.
func (r *PgxUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	return exists, err
}

// EmailExists reports whether a user with the email exists.
func (r *PgxUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

// UpdateLastLogin sets last_login to now for the given user.
func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID int) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
