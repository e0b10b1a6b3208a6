package services

import (
	"context"
	"log"

	"rentdesk/internal/models"
)

// NotificationService delivers best-effort alerts to landlords. Failures are
// logged and never propagate to the operation that triggered them.
type NotificationService interface {
	NotifyPaymentSubmitted(ctx context.Context, landlord *models.User, payment *models.Payment) error
	NotifyComplaintFiled(ctx context.Context, landlord *models.User, complaint *models.Complaint) error
}

type logNotificationService struct{}

func NewNotificationService() NotificationService {
	return &logNotificationService{}
}

func (n *logNotificationService) NotifyPaymentSubmitted(ctx context.Context, landlord *models.User, payment *models.Payment) error {
	log.Printf("notify %s: payment %s of %.2f submitted for review", landlord.Email, payment.ID, payment.Amount)
	return nil
}

func (n *logNotificationService) NotifyComplaintFiled(ctx context.Context, landlord *models.User, complaint *models.Complaint) error {
	log.Printf("notify %s: complaint %q filed for room %s", landlord.Email, complaint.Title, complaint.RoomID)
	return nil
}
