package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Complaint, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Complaint, error)
	GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, landlordID, id uuid.UUID, status string) error
}

type complaintRepo struct {
	db Database
}

func NewComplaintRepo(db Database) ComplaintRepository {
	return &complaintRepo{db: db}
}

const complaintColumns = `c.id, c.tenant_id, c.room_id, c.title, c.description, c.status, c.created_at`

func (r *complaintRepo) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (id, tenant_id, room_id, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, complaint.ID, complaint.TenantID, complaint.RoomID, complaint.Title, complaint.Description, complaint.Status)
	return err
}

func (r *complaintRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		WHERE c.tenant_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN rooms r ON r.id = c.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepo) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN rooms r ON r.id = c.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND c.id = $2
	`
	err := r.db.QueryRow(ctx, query, landlordID, id).Scan(&complaint.ID, &complaint.TenantID, &complaint.RoomID, &complaint.Title, &complaint.Description, &complaint.Status, &complaint.CreatedAt)
	if err != nil {
		return nil, err
	}
	return complaint, nil
}

func (r *complaintRepo) UpdateStatus(ctx context.Context, landlordID, id uuid.UUID, status string) error {
	query := `
		UPDATE complaints
		SET status = $1
		WHERE id = $2 AND room_id IN (
			SELECT r.id FROM rooms r
			JOIN properties p ON p.id = r.property_id
			WHERE p.landlord_id = $3
		)
	`
	tag, err := r.db.Exec(ctx, query, status, id, landlordID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanComplaints(rows pgx.Rows) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	for rows.Next() {
		complaint := &models.Complaint{}
		if err := rows.Scan(&complaint.ID, &complaint.TenantID, &complaint.RoomID, &complaint.Title, &complaint.Description, &complaint.Status, &complaint.CreatedAt); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}
