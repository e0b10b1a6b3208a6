package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoomRepository scopes every landlord-side query through the
// rooms → properties → landlord ownership chain, so a room outside the
// caller's chain behaves exactly like a room that does not exist.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Room, error)
	Update(ctx context.Context, landlordID uuid.UUID, room *models.Room) error
	Delete(ctx context.Context, landlordID, id uuid.UUID) error
	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Room, error)
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*models.Room, error)
	AssignTenant(ctx context.Context, roomID, tenantID uuid.UUID) error
	GetLandlord(ctx context.Context, roomID uuid.UUID) (*models.User, error)
}

type roomRepo struct {
	db Database
}

func NewRoomRepo(db Database) RoomRepository {
	return &roomRepo{db: db}
}

const roomColumns = `r.id, r.property_id, r.room_number, r.floor, r.type, r.rent, r.tenant_id, r.created_at, r.updated_at`

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (id, property_id, room_number, floor, type, rent, tenant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, room.ID, room.PropertyID, room.RoomNumber, room.Floor, room.Type, room.Rent, room.TenantID)
	return err
}

func (r *roomRepo) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Room, error) {
	room := &models.Room{}
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND r.id = $2
	`
	err := r.db.QueryRow(ctx, query, landlordID, id).Scan(&room.ID, &room.PropertyID, &room.RoomNumber, &room.Floor, &room.Type, &room.Rent, &room.TenantID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Update never touches property_id or tenant_id; the property binding is
// immutable and tenant assignment has its own operation.
func (r *roomRepo) Update(ctx context.Context, landlordID uuid.UUID, room *models.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $1, floor = $2, type = $3, rent = $4, updated_at = NOW()
		WHERE id = $5 AND property_id IN (SELECT id FROM properties WHERE landlord_id = $6)
	`
	tag, err := r.db.Exec(ctx, query, room.RoomNumber, room.Floor, room.Type, room.Rent, room.ID, landlordID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, landlordID, id uuid.UUID) error {
	query := `
		DELETE FROM rooms
		WHERE id = $1 AND property_id IN (SELECT id FROM properties WHERE landlord_id = $2)
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

func (r *roomRepo) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.PropertyID, &room.RoomNumber, &room.Floor, &room.Type, &room.Rent, &room.TenantID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetByTenant returns the tenant's room. A tenant is assumed to hold at most
// one room; if that is ever violated an arbitrary one is returned, silently.
func (r *roomRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*models.Room, error) {
	room := &models.Room{}
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.tenant_id = $1
		ORDER BY r.created_at
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&room.ID, &room.PropertyID, &room.RoomNumber, &room.Floor, &room.Type, &room.Rent, &room.TenantID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// AssignTenant overwrites any previous occupant unconditionally.
func (r *roomRepo) AssignTenant(ctx context.Context, roomID, tenantID uuid.UUID) error {
	query := `UPDATE rooms SET tenant_id = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, tenantID, roomID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomRepo) GetLandlord(ctx context.Context, roomID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN properties p ON p.landlord_id = u.id
		JOIN rooms r ON r.property_id = p.id
		WHERE r.id = $1
	`
	err := r.db.QueryRow(ctx, query, roomID).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
