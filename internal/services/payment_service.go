package services

import (
	"context"
	"errors"
	"log"

	"rentdesk/internal/caching"
	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentService interface {
	Create(ctx context.Context, tenantID uuid.UUID, amount float64, paymentType string, screenshotKey *string) (*models.Payment, error)
	ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error)
	Transition(ctx context.Context, landlordID, paymentID uuid.UUID, status string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	roomRepo    repositories.RoomRepository
	cacheSvc    caching.CacheService
	notifier    NotificationService
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, roomRepo repositories.RoomRepository, cacheSvc caching.CacheService, notifier NotificationService) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		roomRepo:    roomRepo,
		cacheSvc:    cacheSvc,
		notifier:    notifier,
	}
}

// Create binds the payment to the caller and their assigned room server-side;
// tenant and room identifiers in the request body are never trusted. The
// landlord notification is fire and forget.
func (s *paymentService) Create(ctx context.Context, tenantID uuid.UUID, amount float64, paymentType string, screenshotKey *string) (*models.Payment, error) {
	if amount <= 0 || paymentType == "" {
		return nil, ErrValidation
	}

	room, err := s.roomRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoomAssigned
		}
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.New(),
		TenantID:      tenantID,
		RoomID:        room.ID,
		Amount:        amount,
		PaymentType:   paymentType,
		Status:        models.PaymentPending,
		ScreenshotKey: screenshotKey,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if landlord, err := s.roomRepo.GetLandlord(ctx, room.ID); err != nil {
		log.Printf("Failed to resolve landlord for payment %s: %v", payment.ID, err)
	} else if err := s.notifier.NotifyPaymentSubmitted(ctx, landlord, payment); err != nil {
		log.Printf("Failed to notify landlord about payment %s: %v", payment.ID, err)
	}

	return payment, nil
}

func (s *paymentService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *paymentService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	return s.paymentRepo.ListByLandlord(ctx, landlordID, limit, offset)
}

// Transition moves a pending payment to approved or rejected. Any other
// target status, and any transition off a terminal status, is rejected
// without touching the row. Approval invalidates the cached income summary.
func (s *paymentService) Transition(ctx context.Context, landlordID, paymentID uuid.UUID, status string) (*models.Payment, error) {
	if status != models.PaymentApproved && status != models.PaymentRejected {
		return nil, ErrValidation
	}

	payment, err := s.paymentRepo.GetForLandlord(ctx, landlordID, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if models.TerminalPaymentStatus(payment.Status) {
		return nil, ErrValidation
	}

	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, status); err != nil {
		return nil, err
	}
	payment.Status = status

	if status == models.PaymentApproved {
		if err := s.cacheSvc.DeleteIncomeSummary(ctx, landlordID); err != nil {
			log.Printf("Failed to invalidate income cache for %s: %v", landlordID, err)
		}
	}

	return payment, nil
}
