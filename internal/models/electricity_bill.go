package models

import (
	"time"

	"github.com/google/uuid"
)

// ElectricityBill is raised by the landlord against a room; Month is
// truncated to the first of the month.
type ElectricityBill struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RoomID    uuid.UUID `json:"room_id" db:"room_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Month     time.Time `json:"month" db:"month"`
	Paid      bool      `json:"paid" db:"paid"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
