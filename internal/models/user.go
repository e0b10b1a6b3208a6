package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles are fixed at account creation and never change afterwards.
const (
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRole reports whether role is one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleLandlord || role == RoleTenant
}
