package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is owned by exactly one landlord; LandlordID is set at creation
// and never changes.
type Property struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	Description string    `json:"description" db:"description"`
	RoomCount   int       `json:"room_count" db:"room_count"`
	LandlordID  uuid.UUID `json:"landlord_id" db:"landlord_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
