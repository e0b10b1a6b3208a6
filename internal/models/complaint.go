package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ComplaintPending    = "pending"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
)

// Complaint is filed by a tenant against their assigned room; the landlord
// moves it through pending → in_progress → resolved.
type Complaint struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TenantID    uuid.UUID `json:"tenant_id" db:"tenant_id"`
	RoomID      uuid.UUID `json:"room_id" db:"room_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
