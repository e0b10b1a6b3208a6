package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ElectricityBillRepository interface {
	Create(ctx context.Context, bill *models.ElectricityBill) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error)
	MarkPaid(ctx context.Context, landlordID, id uuid.UUID) error
	CountUnpaidByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error)
}

type electricityBillRepo struct {
	db Database
}

func NewElectricityBillRepo(db Database) ElectricityBillRepository {
	return &electricityBillRepo{db: db}
}

const billColumns = `b.id, b.room_id, b.amount, b.month, b.paid, b.created_at`

func (r *electricityBillRepo) Create(ctx context.Context, bill *models.ElectricityBill) error {
	query := `
		INSERT INTO electricity_bills (id, room_id, amount, month, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, bill.ID, bill.RoomID, bill.Amount, bill.Month, bill.Paid)
	return err
}

// ListByTenant resolves bills through the room the tenant currently occupies,
// not through a tenant column on the bill itself. A displaced tenant stops
// seeing the room's bills immediately.
func (r *electricityBillRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM electricity_bills b
		JOIN rooms r ON r.id = b.room_id
		WHERE r.tenant_id = $1
		ORDER BY b.month DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBills(rows)
}

func scanBills(rows pgx.Rows) ([]*models.ElectricityBill, error) {
	var bills []*models.ElectricityBill
	for rows.Next() {
		bill := &models.ElectricityBill{}
		if err := rows.Scan(&bill.ID, &bill.RoomID, &bill.Amount, &bill.Month, &bill.Paid, &bill.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

func (r *electricityBillRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM electricity_bills b
		JOIN rooms r ON r.id = b.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY b.month DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBills(rows)
}

func (r *electricityBillRepo) MarkPaid(ctx context.Context, landlordID, id uuid.UUID) error {
	query := `
		UPDATE electricity_bills
		SET paid = TRUE
		WHERE id = $1 AND room_id IN (
			SELECT r.id FROM rooms r
			JOIN properties p ON p.id = r.property_id
			WHERE p.landlord_id = $2
		)
	`
	tag, err := r.db.Exec(ctx, query, id, landlordID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *electricityBillRepo) CountUnpaidByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM electricity_bills b
		JOIN rooms r ON r.id = b.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND b.paid = FALSE
	`
	if err := r.db.QueryRow(ctx, query, landlordID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
