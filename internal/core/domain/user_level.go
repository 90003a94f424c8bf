package domain

import "context"

// UserLevel tracks a user's level and experience points.
type UserLevel struct {
	UserLevelID      int  `json:"user_level_id"`
	UserID           *int `json:"user_id"`
	Level            *int `json:"level"`
	ExperiencePoints *int `json:"experience_points"`
}

type NewUserLevel struct {
	UserID           *int `json:"user_id"`
	Level            *int `json:"level"`
	ExperiencePoints *int `json:"experience_points"`
}

// UserLevelRepository defines CRUD access to the user_levels table.
type UserLevelRepository interface {
	Find(ctx context.Context, id int) (*UserLevel, error)
	FindMultiple(ctx context.Context, limit int) ([]UserLevel, error)
	Create(ctx context.Context, newLevel NewUserLevel) (*UserLevel, error)
	Update(ctx context.Context, id int, level UserLevel) (*UserLevel, error)
	Delete(ctx context.Context, id int) error
}
