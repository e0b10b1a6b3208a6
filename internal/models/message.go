package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunityMessage is a landlord broadcast visible to every authenticated
// user. Append-only.
type CommunityMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatMessage is a directed message between two users. Append-only; only the
// sender or receiver may see it. IsRead is carried on the wire but no exposed
// operation flips it.
type ChatMessage struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id" db:"receiver_id"`
	Body       string    `json:"body" db:"body"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
