package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxCurrencyRepository implements domain.CurrencyRepository using pgx.
type PgxCurrencyRepository struct {
	db DB
}

func NewCurrencyRepository(db DB) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{db: db}
}

func scanCurrency(row pgx.Row) (*domain.Currency, error) {
	var c domain.Currency
	err := row.Scan(&c.CurrencyID, &c.UserID, &c.CurrencyType, &c.Amount, &c.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PgxCurrencyRepository) Find(ctx context.Context, id int) (*domain.Currency, error) {
	query := `SELECT currency_id, user_id, currency_type, amount, last_updated FROM currency WHERE currency_id = $1`
	return scanCurrency(r.db.QueryRow(ctx, query, id))
}

func (r *PgxCurrencyRepository) FindMultiple(ctx context.Context, limit int) ([]domain.Currency, error) {
	query := `SELECT currency_id, user_id, currency_type, amount, last_updated FROM currency ORDER BY currency_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	currencies := []domain.Currency{}
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, *c)
	}
	return currencies, rows.Err()
}

func (r *PgxCurrencyRepository) Create(ctx context.Context, newCurrency domain.NewCurrency) (*domain.Currency, error) {
	query := `
		INSERT INTO currency (user_id, currency_type, amount) VALUES ($1, $2, $3)
		RETURNING currency_id, user_id, currency_type, amount, last_updated
	`
	return scanCurrency(r.db.QueryRow(ctx, query, newCurrency.UserID, newCurrency.CurrencyType, newCurrency.Amount))
}

func (r *PgxCurrencyRepository) Update(ctx context.Context, id int, currency domain.Currency) (*domain.Currency, error) {
	query := `
		UPDATE currency SET currency_type = $2, amount = $3, last_updated = CURRENT_TIMESTAMP WHERE currency_id = $1
		RETURNING currency_id, user_id, currency_type, amount, last_updated
	`
	return scanCurrency(r.db.QueryRow(ctx, query, id, currency.CurrencyType, currency.Amount))
}

func (r *PgxCurrencyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM currency WHERE currency_id = $1`, id)
	return err
}
