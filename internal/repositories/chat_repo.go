package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
)

type ChatRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, error)
}

type chatRepo struct {
	db Database
}

func NewChatRepo(db Database) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) Create(ctx context.Context, message *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, sender_id, receiver_id, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, message.ID, message.SenderID, message.ReceiverID, message.Body, message.IsRead)
	return err
}

// ListForUser returns every message the user sent or received, oldest first,
// so clients can render the transcript top to bottom.
func (r *chatRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, is_read, created_at
		FROM chat_messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		message := &models.ChatMessage{}
		if err := rows.Scan(&message.ID, &message.SenderID, &message.ReceiverID, &message.Body, &message.IsRead, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
