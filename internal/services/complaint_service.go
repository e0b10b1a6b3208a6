package services

import (
	"context"
	"errors"
	"log"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ComplaintService interface {
	File(ctx context.Context, tenantID uuid.UUID, title, description string) (*models.Complaint, error)
	ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Complaint, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, landlordID, complaintID uuid.UUID, status string) (*models.Complaint, error)
}

type complaintService struct {
	complaintRepo repositories.ComplaintRepository
	roomRepo      repositories.RoomRepository
	notifier      NotificationService
}

func NewComplaintService(complaintRepo repositories.ComplaintRepository, roomRepo repositories.RoomRepository, notifier NotificationService) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		roomRepo:      roomRepo,
		notifier:      notifier,
	}
}

// File records a complaint against the tenant's assigned room. Tenants
// without a room cannot file.
func (s *complaintService) File(ctx context.Context, tenantID uuid.UUID, title, description string) (*models.Complaint, error) {
	if title == "" || description == "" {
		return nil, ErrValidation
	}

	room, err := s.roomRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoomAssigned
		}
		return nil, err
	}

	complaint := &models.Complaint{
		ID:          uuid.New(),
		TenantID:    tenantID,
		RoomID:      room.ID,
		Title:       title,
		Description: description,
		Status:      models.ComplaintPending,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	if landlord, err := s.roomRepo.GetLandlord(ctx, room.ID); err != nil {
		log.Printf("Failed to resolve landlord for complaint %s: %v", complaint.ID, err)
	} else if err := s.notifier.NotifyComplaintFiled(ctx, landlord, complaint); err != nil {
		log.Printf("Failed to notify landlord about complaint %s: %v", complaint.ID, err)
	}

	return complaint, nil
}

func (s *complaintService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Complaint, error) {
	return s.complaintRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *complaintService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Complaint, error) {
	return s.complaintRepo.ListByLandlord(ctx, landlordID, limit, offset)
}

func (s *complaintService) UpdateStatus(ctx context.Context, landlordID, complaintID uuid.UUID, status string) (*models.Complaint, error) {
	switch status {
	case models.ComplaintPending, models.ComplaintInProgress, models.ComplaintResolved:
	default:
		return nil, ErrValidation
	}

	if err := s.complaintRepo.UpdateStatus(ctx, landlordID, complaintID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.complaintRepo.GetForLandlord(ctx, landlordID, complaintID)
}
