package services

import (
	"context"
	"errors"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MessagingService interface {
	PostAnnouncement(ctx context.Context, senderID uuid.UUID, title, body string) (*models.CommunityMessage, error)
	ListAnnouncements(ctx context.Context, limit, offset int) ([]*models.CommunityMessage, error)
	SendChat(ctx context.Context, senderID, receiverID uuid.UUID, body string) (*models.ChatMessage, error)
	ListChat(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, error)
}

type messagingService struct {
	communityRepo repositories.CommunityRepository
	chatRepo      repositories.ChatRepository
	userRepo      repositories.UserRepository
}

func NewMessagingService(communityRepo repositories.CommunityRepository, chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) MessagingService {
	return &messagingService{
		communityRepo: communityRepo,
		chatRepo:      chatRepo,
		userRepo:      userRepo,
	}
}

func (s *messagingService) PostAnnouncement(ctx context.Context, senderID uuid.UUID, title, body string) (*models.CommunityMessage, error) {
	if title == "" || body == "" {
		return nil, ErrValidation
	}

	message := &models.CommunityMessage{
		ID:       uuid.New(),
		SenderID: senderID,
		Title:    title,
		Body:     body,
	}
	if err := s.communityRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messagingService) ListAnnouncements(ctx context.Context, limit, offset int) ([]*models.CommunityMessage, error) {
	return s.communityRepo.List(ctx, limit, offset)
}

// SendChat requires the receiver to exist; the sender may message any user.
func (s *messagingService) SendChat(ctx context.Context, senderID, receiverID uuid.UUID, body string) (*models.ChatMessage, error) {
	if body == "" {
		return nil, ErrValidation
	}
	if senderID == receiverID {
		return nil, ErrValidation
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := &models.ChatMessage{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.chatRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messagingService) ListChat(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, error) {
	return s.chatRepo.ListForUser(ctx, userID, limit, offset)
}
