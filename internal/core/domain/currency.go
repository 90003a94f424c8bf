package domain

import (
	"context"
	"time"
)

// Currency is a per-user balance of one in-game currency type.
type Currency struct {
	CurrencyID   int        `json:"currency_id"`
	UserID       *int       `json:"user_id"`
	CurrencyType *string    `json:"currency_type"`
	Amount       *int       `json:"amount"`
	LastUpdated  *time.Time `json:"last_updated"`
}

type NewCurrency struct {
	UserID       *int    `json:"user_id"`
	CurrencyType *string `json:"currency_type"`
	Amount       *int    `json:"amount"`
}

// CurrencyRepository defines CRUD access to the currency table.
type CurrencyRepository interface {
	Find(ctx context.Context, id int) (*Currency, error)
	FindMultiple(ctx context.Context, limit int) ([]Currency, error)
	Create(ctx context.Context, newCurrency NewCurrency) (*Currency, error)
	Update(ctx context.Context, id int, currency Currency) (*Currency, error)
	Delete(ctx context.Context, id int) error
}
