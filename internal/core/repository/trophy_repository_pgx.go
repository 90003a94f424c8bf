package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxTrophyRepository implements domain.TrophyRepository using pgx.
type PgxTrophyRepository struct {
	db DB
}

func NewTrophyRepository(db DB) *PgxTrophyRepository {
	return &PgxTrophyRepository{db: db}
}

func scanTrophy(row pgx.Row) (*domain.Trophy, error) {
	var t domain.Trophy
	err := row.Scan(&t.TrophyID, &t.UserID, &t.Points, &t.GameTimestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PgxTrophyRepository) Find(ctx context.Context, id int) (*domain.Trophy, error) {
	query := `SELECT trophy_id, user_id, points, game_timestamp FROM trophies WHERE trophy_id = $1`
	return scanTrophy(r.db.QueryRow(ctx, query, id))
}

func (r *PgxTrophyRepository) FindMultiple(ctx context.Context, limit int) ([]domain.Trophy, error) {
	query := `SELECT trophy_id, user_id, points, game_timestamp FROM trophies ORDER BY trophy_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trophies := []domain.Trophy{}
	for rows.Next() {
		t, err := scanTrophy(rows)
		if err != nil {
			return nil, err
		}
		trophies = append(trophies, *t)
	}
	return trophies, rows.Err()
}

func (r *PgxTrophyRepository) Create(ctx context.Context, newTrophy domain.NewTrophy) (*domain.Trophy, error) {
	query := `
		INSERT INTO trophies (user_id, points) VALUES ($1, $2)
		RETURNING trophy_id, user_id, points, game_timestamp
	`
	return scanTrophy(r.db.QueryRow(ctx, query, newTrophy.UserID, newTrophy.Points))
}

func (r *PgxTrophyRepository) Update(ctx context.Context, id int, trophy domain.Trophy) (*domain.Trophy, error) {
	query := `
		UPDATE trophies SET user_id = $2, points = $3, game_timestamp = $4 WHERE trophy_id = $1
		RETURNING trophy_id, user_id, points, game_timestamp
	`
	return scanTrophy(r.db.QueryRow(ctx, query, id, trophy.UserID, trophy.Points, trophy.GameTimestamp))
}

func (r *PgxTrophyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM trophies WHERE trophy_id = $1`, id)
	return err
}

// PgxTotalTrophiesRepository implements domain.TotalTrophiesRepository using pgx.
type PgxTotalTrophiesRepository struct {
	db DB
}

func NewTotalTrophiesRepository(db DB) *PgxTotalTrophiesRepository {
	return &PgxTotalTrophiesRepository{db: db}
}

func scanTotalTrophies(row pgx.Row) (*domain.TotalTrophies, error) {
	var t domain.TotalTrophies
	err := row.Scan(&t.TotalTrophiesID, &t.UserID, &t.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PgxTotalTrophiesRepository) Find(ctx context.Context, id int) (*domain.TotalTrophies, error) {
	query := `SELECT total_trophies_id, user_id, total FROM total_trophies WHERE total_trophies_id = $1`
	return scanTotalTrophies(r.db.QueryRow(ctx, query, id))
}

func (r *PgxTotalTrophiesRepository) FindMultiple(ctx context.Context, limit int) ([]domain.TotalTrophies, error) {
	query := `SELECT total_trophies_id, user_id, total FROM total_trophies ORDER BY total_trophies_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []domain.TotalTrophies{}
	for rows.Next() {
		t, err := scanTotalTrophies(rows)
		if err != nil {
			return nil, err
		}
		totals = append(totals, *t)
	}
	return totals, rows.Err()
}

func (r *PgxTotalTrophiesRepository) Create(ctx context.Context, newTotal domain.NewTotalTrophies) (*domain.TotalTrophies, error) {
	query := `
		INSERT INTO total_trophies (user_id, total) VALUES ($1, $2)
		RETURNING total_trophies_id, user_id, total
	`
	return scanTotalTrophies(r.db.QueryRow(ctx, query, newTotal.UserID, newTotal.Total))
}

func (r *PgxTotalTrophiesRepository) Update(ctx context.Context, id int, total domain.TotalTrophies) (*domain.TotalTrophies, error) {
	query := `
		UPDATE total_trophies SET user_id = $2, total = $3 WHERE total_trophies_id = $1
		RETURNING total_trophies_id, user_id, total
	`
	return scanTotalTrophies(r.db.QueryRow(ctx, query, id, total.UserID, total.Total))
}

func (r *PgxTotalTrophiesRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM total_trophies WHERE total_trophies_id = $1`, id)
	return err
}
