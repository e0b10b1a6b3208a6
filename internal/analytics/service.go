package analytics

import (
	"context"
	"log"
	"time"

	"rentdesk/internal/caching"
	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
)

const incomeCacheTTL = 10 * time.Minute

// Service aggregates approved rent payments into per-month income for a
// landlord, with a short-lived cache in front of the database.
type Service interface {
	MonthlyIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.MonthlyIncome, error)
	RefreshIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.MonthlyIncome, error)
}

type service struct {
	paymentRepo repositories.PaymentRepository
	cacheSvc    caching.CacheService
}

func NewService(paymentRepo repositories.PaymentRepository, cacheSvc caching.CacheService) Service {
	return &service{
		paymentRepo: paymentRepo,
		cacheSvc:    cacheSvc,
	}
}

func (s *service) MonthlyIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.MonthlyIncome, error) {
	cached, err := s.cacheSvc.GetIncomeSummary(ctx, landlordID)
	if err != nil {
		log.Printf("Income cache read failed for %s: %v", landlordID, err)
	} else if cached != nil {
		return cached, nil
	}

	return s.RefreshIncome(ctx, landlordID)
}

// RefreshIncome recomputes the aggregation and repopulates the cache.
func (s *service) RefreshIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.MonthlyIncome, error) {
	rows, err := s.paymentRepo.MonthlyIncome(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	summary := make([]*models.MonthlyIncome, 0, len(rows))
	for _, row := range rows {
		summary = append(summary, &models.MonthlyIncome{
			Month: row.Month.Format("2006-01"),
			Total: row.Total,
		})
	}

	if err := s.cacheSvc.SetIncomeSummary(ctx, landlordID, summary, incomeCacheTTL); err != nil {
		log.Printf("Income cache write failed for %s: %v", landlordID, err)
	}
	return summary, nil
}
