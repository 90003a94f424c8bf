package domain

import (
	"context"
	"time"
)

// Chat is a direct message between two users.
type Chat struct {
	ChatID     int        `json:"chat_id"`
	SenderID   *int       `json:"sender_id"`
	ReceiverID *int       `json:"receiver_id"`
	Message    *string    `json:"message"`
	Timestamp  *time.Time `json:"timestamp"`
	IsRead     *bool      `json:"is_read"`
}

type NewChat struct {
	SenderID   *int    `json:"sender_id"`
	ReceiverID *int    `json:"receiver_id"`
	Message    *string `json:"message"`
}

// ChatRepository defines CRUD access to the chats table.
type ChatRepository interface {
	Find(ctx context.Context, id int) (*Chat, error)
	FindMultiple(ctx context.Context, limit int) ([]Chat, error)
	Create(ctx context.Context, newChat NewChat) (*Chat, error)
	Update(ctx context.Context, id int, chat Chat) (*Chat, error)
	Delete(ctx context.Context, id int) error
}
