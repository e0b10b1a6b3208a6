package services

import (
	"context"
	"errors"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomService interface {
	Create(ctx context.Context, landlordID uuid.UUID, room *models.Room) (*models.Room, error)
	Get(ctx context.Context, landlordID, id uuid.UUID) (*models.Room, error)
	Update(ctx context.Context, landlordID uuid.UUID, room *models.Room) (*models.Room, error)
	Delete(ctx context.Context, landlordID, id uuid.UUID) error
	List(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Room, error)
	AssignTenant(ctx context.Context, landlordID, roomID uuid.UUID, tenantEmail string) (*models.Room, error)
	TenantRoom(ctx context.Context, tenantID uuid.UUID) (*models.Room, error)
	LandlordContact(ctx context.Context, tenantID uuid.UUID) (*models.LandlordContact, error)
}

type roomService struct {
	roomRepo     repositories.RoomRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
}

func NewRoomService(roomRepo repositories.RoomRepository, propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository) RoomService {
	return &roomService{
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Create requires the target property to belong to the calling landlord.
func (s *roomService) Create(ctx context.Context, landlordID uuid.UUID, room *models.Room) (*models.Room, error) {
	if room.RoomNumber == "" || room.Rent < 0 {
		return nil, ErrValidation
	}

	if _, err := s.propertyRepo.GetForLandlord(ctx, landlordID, room.PropertyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	room.ID = uuid.New()
	room.TenantID = nil
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return s.roomRepo.GetForLandlord(ctx, landlordID, room.ID)
}

func (s *roomService) Get(ctx context.Context, landlordID, id uuid.UUID) (*models.Room, error) {
	room, err := s.roomRepo.GetForLandlord(ctx, landlordID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, landlordID uuid.UUID, room *models.Room) (*models.Room, error) {
	if room.RoomNumber == "" || room.Rent < 0 {
		return nil, ErrValidation
	}

	if err := s.roomRepo.Update(ctx, landlordID, room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.roomRepo.GetForLandlord(ctx, landlordID, room.ID)
}

func (s *roomService) Delete(ctx context.Context, landlordID, id uuid.UUID) error {
	if err := s.roomRepo.Delete(ctx, landlordID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *roomService) List(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Room, error) {
	return s.roomRepo.ListByLandlord(ctx, landlordID, limit, offset)
}

// AssignTenant moves the user with the given email into the room. An existing
// occupant is displaced silently. A room outside the landlord's chain and an
// unknown email both surface as not found.
func (s *roomService) AssignTenant(ctx context.Context, landlordID, roomID uuid.UUID, tenantEmail string) (*models.Room, error) {
	if _, err := s.roomRepo.GetForLandlord(ctx, landlordID, roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tenant, err := s.userRepo.GetByEmail(ctx, tenantEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tenant.Role != models.RoleTenant {
		return nil, ErrNotFound
	}

	if err := s.roomRepo.AssignTenant(ctx, roomID, tenant.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.roomRepo.GetForLandlord(ctx, landlordID, roomID)
}

func (s *roomService) TenantRoom(ctx context.Context, tenantID uuid.UUID) (*models.Room, error) {
	room, err := s.roomRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoomAssigned
		}
		return nil, err
	}
	return room, nil
}

// LandlordContact resolves the landlord owning the tenant's room.
func (s *roomService) LandlordContact(ctx context.Context, tenantID uuid.UUID) (*models.LandlordContact, error) {
	room, err := s.roomRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoomAssigned
		}
		return nil, err
	}

	landlord, err := s.roomRepo.GetLandlord(ctx, room.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.LandlordContact{
		Name:  landlord.Username,
		Email: landlord.Email,
	}, nil
}
