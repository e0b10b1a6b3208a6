package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error)
}

type propertyRepo struct {
	db Database
}

func NewPropertyRepo(db Database) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (id, name, address, description, room_count, landlord_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, property.ID, property.Name, property.Address, property.Description, property.RoomCount, property.LandlordID)
	return err
}

func (r *propertyRepo) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Property, error) {
	property := &models.Property{}
	query := `
		SELECT id, name, address, description, room_count, landlord_id, created_at, updated_at
		FROM properties
		WHERE landlord_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, landlordID, id).Scan(&property.ID, &property.Name, &property.Address, &property.Description, &property.RoomCount, &property.LandlordID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return property, nil
}

// Update never touches landlord_id; ownership is fixed at creation.
func (r *propertyRepo) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties
		SET name = $1, address = $2, description = $3, room_count = $4, updated_at = NOW()
		WHERE landlord_id = $5 AND id = $6
	`
	tag, err := r.db.Exec(ctx, query, property.Name, property.Address, property.Description, property.RoomCount, property.LandlordID, property.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error) {
	query := `
		SELECT id, name, address, description, room_count, landlord_id, created_at, updated_at
		FROM properties
		WHERE landlord_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		property := &models.Property{}
		if err := rows.Scan(&property.ID, &property.Name, &property.Address, &property.Description, &property.RoomCount, &property.LandlordID, &property.CreatedAt, &property.UpdatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}
