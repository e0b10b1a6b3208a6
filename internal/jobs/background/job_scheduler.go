package background

import (
	"context"
	"log"
	"sync"
	"time"

	"rentdesk/internal/analytics"
	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs periodic maintenance jobs: income cache refresh,
// pending payment reminders and unpaid bill alerts.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	analyticsSvc analytics.Service
	userRepo     repositories.UserRepository
	paymentRepo  repositories.PaymentRepository
	billRepo     repositories.ElectricityBillRepository
	jobs         map[string]gocron.Job
	mu           sync.RWMutex
}

func NewJobScheduler(analyticsSvc analytics.Service, userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository, billRepo repositories.ElectricityBillRepository) *JobScheduler {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		analyticsSvc: analyticsSvc,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		billRepo:     billRepo,
		jobs:         make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	incomeJob, err := js.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.refreshIncomeSummaries, context.Background()),
		gocron.WithName("income-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create income refresh job: %v", err)
	} else {
		js.jobs["income-refresh"] = incomeJob
	}

	remindersJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.remindPendingPayments, context.Background()),
		gocron.WithName("pending-payment-reminders"),
	)
	if err != nil {
		log.Printf("Failed to create payment reminder job: %v", err)
	} else {
		js.jobs["payment-reminders"] = remindersJob
	}

	billsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(js.alertUnpaidBills, context.Background()),
		gocron.WithName("unpaid-bill-alerts"),
	)
	if err != nil {
		log.Printf("Failed to create unpaid bill job: %v", err)
	} else {
		js.jobs["unpaid-bills"] = billsJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// refreshIncomeSummaries keeps every landlord's cached income aggregation
// warm so the dashboard read path rarely hits the database.
func (js *JobScheduler) refreshIncomeSummaries(ctx context.Context) {
	landlords, err := js.userRepo.ListByRole(ctx, models.RoleLandlord, 1000, 0)
	if err != nil {
		log.Printf("Income refresh: failed to list landlords: %v", err)
		return
	}

	for _, landlord := range landlords {
		if _, err := js.analyticsSvc.RefreshIncome(ctx, landlord.ID); err != nil {
			log.Printf("Income refresh failed for landlord %s: %v", landlord.ID, err)
		}
	}
}

func (js *JobScheduler) remindPendingPayments(ctx context.Context) {
	landlords, err := js.userRepo.ListByRole(ctx, models.RoleLandlord, 1000, 0)
	if err != nil {
		log.Printf("Payment reminders: failed to list landlords: %v", err)
		return
	}

	for _, landlord := range landlords {
		count, err := js.paymentRepo.CountPendingByLandlord(ctx, landlord.ID)
		if err != nil {
			log.Printf("Payment reminders: count failed for %s: %v", landlord.ID, err)
			continue
		}
		if count > 0 {
			log.Printf("reminder %s: %d payments awaiting review", landlord.Email, count)
		}
	}
}

func (js *JobScheduler) alertUnpaidBills(ctx context.Context) {
	landlords, err := js.userRepo.ListByRole(ctx, models.RoleLandlord, 1000, 0)
	if err != nil {
		log.Printf("Unpaid bill alerts: failed to list landlords: %v", err)
		return
	}

	for _, landlord := range landlords {
		count, err := js.billRepo.CountUnpaidByLandlord(ctx, landlord.ID)
		if err != nil {
			log.Printf("Unpaid bill alerts: count failed for %s: %v", landlord.ID, err)
			continue
		}
		if count > 0 {
			log.Printf("alert %s: %d electricity bills unpaid", landlord.Email, count)
		}
	}
}
