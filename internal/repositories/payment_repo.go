package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MonthlyIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.IncomeByMonth, error)
	CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error)
}

type paymentRepo struct {
	db Database
}

func NewPaymentRepo(db Database) PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentColumns = `pay.id, pay.tenant_id, pay.room_id, pay.amount, pay.payment_type, pay.status, pay.screenshot_key, pay.created_at`

func (r *paymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, room_id, amount, payment_type, status, screenshot_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, payment.ID, payment.TenantID, payment.RoomID, payment.Amount, payment.PaymentType, payment.Status, payment.ScreenshotKey)
	return err
}

func (r *paymentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments pay
		WHERE pay.tenant_id = $1
		ORDER BY pay.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments pay
		JOIN rooms r ON r.id = pay.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY pay.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT ` + paymentColumns + `
		FROM payments pay
		JOIN rooms r ON r.id = pay.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND pay.id = $2
	`
	err := r.db.QueryRow(ctx, query, landlordID, id).Scan(&payment.ID, &payment.TenantID, &payment.RoomID, &payment.Amount, &payment.PaymentType, &payment.Status, &payment.ScreenshotKey, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateStatus touches status only; tenant, room and amount stay immutable.
func (r *paymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE payments SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

// MonthlyIncome sums approved payments under the landlord's ownership chain
// by calendar month, ascending. Pending and rejected rows never count.
func (r *paymentRepo) MonthlyIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.IncomeByMonth, error) {
	query := `
		SELECT date_trunc('month', pay.created_at) AS month, SUM(pay.amount) AS total
		FROM payments pay
		JOIN rooms r ON r.id = pay.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND pay.status = $2
		GROUP BY month
		ORDER BY month
	`
	rows, err := r.db.Query(ctx, query, landlordID, models.PaymentApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var income []*models.IncomeByMonth
	for rows.Next() {
		row := &models.IncomeByMonth{}
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, err
		}
		income = append(income, row)
	}
	return income, rows.Err()
}

func (r *paymentRepo) CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM payments pay
		JOIN rooms r ON r.id = pay.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND pay.status = $2
	`
	if err := r.db.QueryRow(ctx, query, landlordID, models.PaymentPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.TenantID, &payment.RoomID, &payment.Amount, &payment.PaymentType, &payment.Status, &payment.ScreenshotKey, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
