package services

import (
	"context"
	"errors"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BillingService interface {
	CreateBill(ctx context.Context, landlordID uuid.UUID, roomID uuid.UUID, amount float64, month time.Time) (*models.ElectricityBill, error)
	ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error)
	MarkPaid(ctx context.Context, landlordID, billID uuid.UUID) error
}

type billingService struct {
	billRepo repositories.ElectricityBillRepository
	roomRepo repositories.RoomRepository
}

func NewBillingService(billRepo repositories.ElectricityBillRepository, roomRepo repositories.RoomRepository) BillingService {
	return &billingService{
		billRepo: billRepo,
		roomRepo: roomRepo,
	}
}

// CreateBill raises a bill against a room owned by the calling landlord.
// Month is normalized to the first of the month in UTC.
func (s *billingService) CreateBill(ctx context.Context, landlordID uuid.UUID, roomID uuid.UUID, amount float64, month time.Time) (*models.ElectricityBill, error) {
	if amount <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.roomRepo.GetForLandlord(ctx, landlordID, roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	bill := &models.ElectricityBill{
		ID:     uuid.New(),
		RoomID: roomID,
		Amount: amount,
		Month:  time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
		Paid:   false,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *billingService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	return s.billRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *billingService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	return s.billRepo.ListByLandlord(ctx, landlordID, limit, offset)
}

func (s *billingService) MarkPaid(ctx context.Context, landlordID, billID uuid.UUID) error {
	if err := s.billRepo.MarkPaid(ctx, landlordID, billID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
