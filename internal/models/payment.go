package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses. A payment starts pending; approved and rejected are
// terminal.
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment records a tenant's claim of rent paid. TenantID, RoomID and Amount
// are immutable after creation; only Status transitions, and only by the
// landlord owning the room's property.
type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TenantID      uuid.UUID `json:"tenant_id" db:"tenant_id"`
	RoomID        uuid.UUID `json:"room_id" db:"room_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentType   string    `json:"payment_type" db:"payment_type"`
	Status        string    `json:"status" db:"status"`
	ScreenshotKey *string   `json:"screenshot_key,omitempty" db:"screenshot_key"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TerminalPaymentStatus reports whether status permits no further transition.
func TerminalPaymentStatus(status string) bool {
	return status == PaymentApproved || status == PaymentRejected
}

// MonthlyIncome is one row of the landlord income aggregation as returned
// over the wire; Month is formatted YYYY-MM.
type MonthlyIncome struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// IncomeByMonth is the raw aggregation row scanned from the database.
type IncomeByMonth struct {
	Month time.Time `db:"month"`
	Total float64   `db:"total"`
}
