package models

import (
	"time"

	"github.com/google/uuid"
)

// LandlordProfile is created by the registration service as an explicit
// post-commit hook; ProofKey references an object in the media bucket.
type LandlordProfile struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	UserID            uuid.UUID  `json:"user_id" db:"user_id"`
	SubscriptionStart time.Time  `json:"subscription_start" db:"subscription_start"`
	SubscriptionEnd   time.Time  `json:"subscription_end" db:"subscription_end"`
	ProofKey          *string    `json:"proof_key,omitempty" db:"proof_key"`
	IsVerified        bool       `json:"is_verified" db:"is_verified"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}
