package domain

import (
	"context"
	"time"
)

// Friendship links two users with a status (pending, accepted, blocked).
type Friendship struct {
	FriendshipID   int        `json:"friendship_id"`
	UserID         *int       `json:"user_id"`
	FriendID       *int       `json:"friend_id"`
	Status         string     `json:"status" binding:"required"`
	FriendshipDate *time.Time `json:"friendship_date"`
}

type NewFriendship struct {
	UserID   *int   `json:"user_id"`
	FriendID *int   `json:"friend_id"`
	Status   string `json:"status" binding:"required"`
}

// FriendshipRepository defines CRUD access to the friendships table.
type FriendshipRepository interface {
	Find(ctx context.Context, id int) (*Friendship, error)
	FindMultiple(ctx context.Context, limit int) ([]Friendship, error)
	Create(ctx context.Context, newFriendship NewFriendship) (*Friendship, error)
	Update(ctx context.Context, id int, friendship Friendship) (*Friendship, error)
	Delete(ctx context.Context, id int) error
}
