package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxUserLevelRepository implements domain.UserLevelRepository using pgx.
type PgxUserLevelRepository struct {
	db DB
}

func NewUserLevelRepository(db DB) *PgxUserLevelRepository {
	return &PgxUserLevelRepository{db: db}
}

func scanUserLevel(row pgx.Row) (*domain.UserLevel, error) {
	var lvl domain.UserLevel
	err := row.Scan(&lvl.UserLevelID, &lvl.UserID, &lvl.Level, &lvl.ExperiencePoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lvl, nil
}

func (r *PgxUserLevelRepository) Find(ctx context.Context, id int) (*domain.UserLevel, error) {
	query := `SELECT user_level_id, user_id, level, experience_points FROM user_levels WHERE user_level_id = $1`
	return scanUserLevel(r.db.QueryRow(ctx, query, id))
}

func (r *PgxUserLevelRepository) FindMultiple(ctx context.Context, limit int) ([]domain.UserLevel, error) {
	query := `SELECT user_level_id, user_id, level, experience_points FROM user_levels ORDER BY user_level_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := []domain.UserLevel{}
	for rows.Next() {
		lvl, err := scanUserLevel(rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *lvl)
	}
	return levels, rows.Err()
}

func (r *PgxUserLevelRepository) Create(ctx context.Context, newLevel domain.NewUserLevel) (*domain.UserLevel, error) {
	query := `
		INSERT INTO user_levels (user_id, level, experience_points) VALUES ($1, $2, $3)
		RETURNING user_level_id, user_id, level, experience_points
	`
	return scanUserLevel(r.db.QueryRow(ctx, query, newLevel.UserID, newLevel.Level, newLevel.ExperiencePoints))
}

func (r *PgxUserLevelRepository) Update(ctx context.Context, id int, level domain.UserLevel) (*domain.UserLevel, error) {
	query := `
		UPDATE user_levels SET level = $2, experience_points = $3 WHERE user_level_id = $1
		RETURNING user_level_id, user_id, level, experience_points
	`
	return scanUserLevel(r.db.QueryRow(ctx, query, id, level.Level, level.ExperiencePoints))
}

func (r *PgxUserLevelRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_levels WHERE user_level_id = $1`, id)
	return err
}
