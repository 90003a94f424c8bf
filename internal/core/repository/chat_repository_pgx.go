package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/battlegear/api-server/internal/core/domain"
)

// PgxChatRepository implements domain.ChatRepository using pgx.
type PgxChatRepository struct {
	db DB
}

func NewChatRepository(db DB) *PgxChatRepository {
	return &PgxChatRepository{db: db}
}

func scanChat(row pgx.Row) (*domain.Chat, error) {
	var c domain.Chat
	err := row.Scan(&c.ChatID, &c.SenderID, &c.ReceiverID, &c.Message, &c.Timestamp, &c.IsRead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PgxChatRepository) Find(ctx context.Context, id int) (*domain.Chat, error) {
	query := `SELECT chat_id, sender_id, receiver_id, message, timestamp, is_read FROM chats WHERE chat_id = $1`
	return scanChat(r.db.QueryRow(ctx, query, id))
}

func (r *PgxChatRepository) FindMultiple(ctx context.Context, limit int) ([]domain.Chat, error) {
	query := `SELECT chat_id, sender_id, receiver_id, message, timestamp, is_read FROM chats ORDER BY chat_id LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []domain.Chat{}
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, *c)
	}
	return chats, rows.Err()
}

func (r *PgxChatRepository) Create(ctx context.Context, newChat domain.NewChat) (*domain.Chat, error) {
	query := `
		INSERT INTO chats (sender_id, receiver_id, message) VALUES ($1, $2, $3)
		RETURNING chat_id, sender_id, receiver_id, message, timestamp, is_read
	`
	return scanChat(r.db.QueryRow(ctx, query, newChat.SenderID, newChat.ReceiverID, newChat.Message))
}

func (r *PgxChatRepository) Update(ctx context.Context, id int, chat domain.Chat) (*domain.Chat, error) {
	query := `
		UPDATE chats SET sender_id = $2, receiver_id = $3, message = $4, is_read = $5 WHERE chat_id = $1
		RETURNING chat_id, sender_id, receiver_id, message, timestamp, is_read
	`
	return scanChat(r.db.QueryRow(ctx, query, id, chat.SenderID, chat.ReceiverID, chat.Message, chat.IsRead))
}

func (r *PgxChatRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chats WHERE chat_id = $1`, id)
	return err
}
