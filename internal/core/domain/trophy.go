package domain

import (
	"context"
	"time"
)

// Trophy is a single trophy award with its point value.
type Trophy struct {
	TrophyID      int        `json:"trophy_id"`
	UserID        *int       `json:"user_id"`
	Points        *int       `json:"points"`
	GameTimestamp *time.Time `json:"game_timestamp"`
}

type NewTrophy struct {
	UserID *int `json:"user_id"`
	Points *int `json:"points"`
}

// TotalTrophies is the running trophy total per user.
type TotalTrophies struct {
	TotalTrophiesID int  `json:"total_trophies_id"`
	UserID          *int `json:"user_id"`
	Total           *int `json:"total"`
}

type NewTotalTrophies struct {
	UserID *int `json:"user_id"`
	Total  *int `json:"total"`
}

// TrophyRepository defines CRUD access to the trophies table.
type TrophyRepository interface {
	Find(ctx context.Context, id int) (*Trophy, error)
	FindMultiple(ctx context.Context, limit int) ([]Trophy, error)
	Create(ctx context.Context, newTrophy NewTrophy) (*Trophy, error)
	Update(ctx context.Context, id int, trophy Trophy) (*Trophy, error)
	Delete(ctx context.Context, id int) error
}

// TotalTrophiesRepository defines CRUD access to the total_trophies table.
type TotalTrophiesRepository interface {
	Find(ctx context.Context, id int) (*TotalTrophies, error)
	FindMultiple(ctx context.Context, limit int) ([]TotalTrophies, error)
	Create(ctx context.Context, newTotal NewTotalTrophies) (*TotalTrophies, error)
	Update(ctx context.Context, id int, total TotalTrophies) (*TotalTrophies, error)
	Delete(ctx context.Context, id int) error
}
