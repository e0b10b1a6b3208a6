package models

import (
	"time"

	"github.com/google/uuid"
)

// Room belongs to one property for its whole life. TenantID is nullable and
// only ever written by the assign-tenant operation.
type Room struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	PropertyID uuid.UUID  `json:"property_id" db:"property_id"`
	RoomNumber string     `json:"room_number" db:"room_number"`
	Floor      int        `json:"floor" db:"floor"`
	Type       string     `json:"type" db:"type"`
	Rent       float64    `json:"rent" db:"rent"`
	TenantID   *uuid.UUID `json:"tenant_id" db:"tenant_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// LandlordContact is the landlord info exposed to an assigned tenant.
type LandlordContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
