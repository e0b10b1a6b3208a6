package services

import (
	"context"
	"errors"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyService interface {
	Create(ctx context.Context, landlordID uuid.UUID, property *models.Property) (*models.Property, error)
	Get(ctx context.Context, landlordID, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, landlordID uuid.UUID, property *models.Property) (*models.Property, error)
	List(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error)
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
}

func NewPropertyService(propertyRepo repositories.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

// Create binds the property to the calling landlord; any landlord_id in the
// request body is ignored.
func (s *propertyService) Create(ctx context.Context, landlordID uuid.UUID, property *models.Property) (*models.Property, error) {
	if property.Name == "" {
		return nil, ErrValidation
	}

	property.ID = uuid.New()
	property.LandlordID = landlordID
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return s.propertyRepo.GetForLandlord(ctx, landlordID, property.ID)
}

func (s *propertyService) Get(ctx context.Context, landlordID, id uuid.UUID) (*models.Property, error) {
	property, err := s.propertyRepo.GetForLandlord(ctx, landlordID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Update(ctx context.Context, landlordID uuid.UUID, property *models.Property) (*models.Property, error) {
	if property.Name == "" {
		return nil, ErrValidation
	}

	property.LandlordID = landlordID
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.propertyRepo.GetForLandlord(ctx, landlordID, property.ID)
}

func (s *propertyService) List(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error) {
	return s.propertyRepo.ListByLandlord(ctx, landlordID, limit, offset)
}
