package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error)
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Document, error)
	GetForTenant(ctx context.Context, tenantID, id uuid.UUID) (*models.Document, error)
	GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Document, error)
}

type documentRepo struct {
	db Database
}

func NewDocumentRepo(db Database) DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `d.id, d.room_id, d.tenant_id, d.name, d.object_key, d.uploaded_at`

func (r *documentRepo) Create(ctx context.Context, document *models.Document) error {
	query := `
		INSERT INTO documents (id, room_id, tenant_id, name, object_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, document.ID, document.RoomID, document.TenantID, document.Name, document.ObjectKey)
	return err
}

func (r *documentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		WHERE d.tenant_id = $1
		ORDER BY d.uploaded_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *documentRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN rooms r ON r.id = d.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY d.uploaded_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *documentRepo) GetForTenant(ctx context.Context, tenantID, id uuid.UUID) (*models.Document, error) {
	document := &models.Document{}
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		WHERE d.tenant_id = $1 AND d.id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&document.ID, &document.RoomID, &document.TenantID, &document.Name, &document.ObjectKey, &document.UploadedAt)
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (r *documentRepo) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Document, error) {
	document := &models.Document{}
	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN rooms r ON r.id = d.room_id
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND d.id = $2
	`
	err := r.db.QueryRow(ctx, query, landlordID, id).Scan(&document.ID, &document.RoomID, &document.TenantID, &document.Name, &document.ObjectKey, &document.UploadedAt)
	if err != nil {
		return nil, err
	}
	return document, nil
}

func scanDocuments(rows pgx.Rows) ([]*models.Document, error) {
	var documents []*models.Document
	for rows.Next() {
		document := &models.Document{}
		if err := rows.Scan(&document.ID, &document.RoomID, &document.TenantID, &document.Name, &document.ObjectKey, &document.UploadedAt); err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}
	return documents, rows.Err()
}
