package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file tied to a room and the tenant who uploaded
// it. ObjectKey is the opaque reference into the media bucket.
type Document struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RoomID     uuid.UUID `json:"room_id" db:"room_id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Name       string    `json:"name" db:"name"`
	ObjectKey  string    `json:"object_key" db:"object_key"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
