package domain

import (
	"context"
	"time"
)

// User is a full user record as stored in the users table. The JSON field
// names are the wire contract for the user CRUD endpoints.
type User struct {
	UserID               int        `json:"user_id"`
	Username             string     `json:"username" binding:"required"`
	Email                string     `json:"email" binding:"required"`
	PasswordHash         string     `json:"password_hash"`
	FullName             string     `json:"full_name"`
	AvatarID             *int       `json:"avatar_id"`
	RegistrationDate     *time.Time `json:"registration_date"`
	LastLogin            *time.Time `json:"last_login"`
	IsActive             *bool      `json:"is_active"`
	IsAdmin              *bool      `json:"is_admin"`
	Timezone             *string    `json:"timezone"`
	Language             *string    `json:"language"`
	Country              *string    `json:"country"`
	DateOfBirth          Date       `json:"date_of_birth"`
	TwoFactorAuthEnabled *bool      `json:"two_factor_auth_enabled"`
	LastPasswordChange   *time.Time `json:"last_password_change"`
}

// NewUser carries the fields a caller provides when creating a user.
// PasswordHash must already be hashed; plaintext never reaches this type.
type NewUser struct {
	Username     string  `json:"username" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	PasswordHash string  `json:"password_hash" binding:"required"`
	FullName     *string `json:"full_name"`
	Country      *string `json:"country"`
	DateOfBirth  *Date   `json:"date_of_birth"`
}

// Role is a named capability grouping assignable to users.
type Role struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWithRoles pairs a user with the roles assigned to them.
type UserWithRoles struct {
	User  User   `json:"user"`
	Roles []Role `json:"roles"`
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository.
// Find methods return (nil, nil) when no user matches.
type UserRepository interface {
	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id int) (*User, error)

	// FindByUsername returns the user matching the given username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindMultiple returns up to limit users.
	FindMultiple(ctx context.Context, limit int) ([]User, error)

	// FindWithRoles returns all users together with their assigned roles.
	FindWithRoles(ctx context.Context) ([]UserWithRoles, error)

	// Create inserts a new user and assigns the given role codes,
	// creating roles that do not exist yet.
	Create(ctx context.Context, newUser NewUser, roleCodes []string) (*User, error)

	// Update overwrites the mutable fields of the user with the given id.
	Update(ctx context.Context, id int, user User) (*User, error)

	// Delete removes the user and all rows that reference it.
	Delete(ctx context.Context, id int) error

	// DeleteByUsername resolves the username and deletes that user.
	DeleteByUsername(ctx context.Context, username string) error

	// UsernameExists reports whether a user with the username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether a user with the email exists.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateLastLogin sets last_login to now for the given user.
	UpdateLastLogin(ctx context.Context, userID int) error
}

// RoleRepository defines the data-access contract for roles.
type RoleRepository interface {
	// FindByCode returns the role with the given code, or (nil, nil).
	FindByCode(ctx context.Context, code string) (*Role, error)

	// FindByUser returns the roles assigned to the given user.
	FindByUser(ctx context.Context, userID int) ([]Role, error)

	// Create inserts a new role.
	Create(ctx context.Context, code, name string) (*Role, error)
}
