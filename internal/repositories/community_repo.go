package repositories

import (
	"context"

	"rentdesk/internal/models"
)

type CommunityRepository interface {
	Create(ctx context.Context, message *models.CommunityMessage) error
	List(ctx context.Context, limit, offset int) ([]*models.CommunityMessage, error)
}

type communityRepo struct {
	db Database
}

func NewCommunityRepo(db Database) CommunityRepository {
	return &communityRepo{db: db}
}

func (r *communityRepo) Create(ctx context.Context, message *models.CommunityMessage) error {
	query := `
		INSERT INTO community_messages (id, sender_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, message.ID, message.SenderID, message.Title, message.Body)
	return err
}

// List is unscoped on purpose; the board is visible to every authenticated
// user regardless of tenancy.
func (r *communityRepo) List(ctx context.Context, limit, offset int) ([]*models.CommunityMessage, error) {
	query := `
		SELECT id, sender_id, title, body, created_at
		FROM community_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.CommunityMessage
	for rows.Next() {
		message := &models.CommunityMessage{}
		if err := rows.Scan(&message.ID, &message.SenderID, &message.Title, &message.Body, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
