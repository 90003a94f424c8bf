package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxFriendshipRepository implements domain.FriendshipRepository using pgx.
type PgxFriendshipRepository struct {
	db DB
}

func NewFriendshipRepository(db DB) *PgxFriendshipRepository {
	return &PgxFriendshipRepository{db: db}
}

func scanFriendship(row pgx.Row) (*domain.Friendship, error) {
	var f domain.Friendship
	err := row.Scan(&f.FriendshipID, &f.UserID, &f.FriendID, &f.Status, &f.FriendshipDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PgxFriendshipRepository) Find(ctx context.Context, id int) (*domain.Friendship, error) {
	query := `SELECT friendship_id, user_id, friend_id, status, friendship_date FROM friendships WHERE friendship_id = $1`
	return scanFriendship(r.db.QueryRow(ctx, query, id))
}

func (r *PgxFriendshipRepository) FindMultiple(ctx context.Context, limit int) ([]domain.Friendship, error) {
	query := `SELECT friendship_id, user_id, friend_id, status, friendship_date FROM friendships ORDER BY friendship_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friendships := []domain.Friendship{}
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, err
		}
		friendships = append(friendships, *f)
	}
	return friendships, rows.Err()
}

func (r *PgxFriendshipRepository) Create(ctx context.Context, newFriendship domain.NewFriendship) (*domain.Friendship, error) {
	query := `
		INSERT INTO friendships (user_id, friend_id, status) VALUES ($1, $2, $3)
		RETURNING friendship_id, user_id, friend_id, status, friendship_date
	`
	return scanFriendship(r.db.QueryRow(ctx, query, newFriendship.UserID, newFriendship.FriendID, newFriendship.Status))
}

func (r *PgxFriendshipRepository) Update(ctx context.Context, id int, friendship domain.Friendship) (*domain.Friendship, error) {
	query := `
		UPDATE friendships SET user_id = $2, friend_id = $3, status = $4 WHERE friendship_id = $1
		RETURNING friendship_id, user_id, friend_id, status, friendship_date
	`
	return scanFriendship(r.db.QueryRow(ctx, query, id, friendship.UserID, friendship.FriendID, friendship.Status))
}

func (r *PgxFriendshipRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM friendships WHERE friendship_id = $1`, id)
	return err
}
