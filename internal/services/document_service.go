package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const presignedURLExpiry = 15 * time.Minute

type DocumentService interface {
	Upload(ctx context.Context, tenantID uuid.UUID, name, contentType string, reader io.Reader, size int64) (*models.Document, error)
	ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error)
	ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Document, error)
	DownloadURLForTenant(ctx context.Context, tenantID, documentID uuid.UUID) (string, error)
	DownloadURLForLandlord(ctx context.Context, landlordID, documentID uuid.UUID) (string, error)
}

type documentService struct {
	documentRepo repositories.DocumentRepository
	roomRepo     repositories.RoomRepository
	storage      StorageService
	bucket       string
}

func NewDocumentService(documentRepo repositories.DocumentRepository, roomRepo repositories.RoomRepository, storage StorageService, bucket string) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		roomRepo:     roomRepo,
		storage:      storage,
		bucket:       bucket,
	}
}

// Upload stores the file in the media bucket under an opaque key and records
// the document against the tenant's assigned room.
func (s *documentService) Upload(ctx context.Context, tenantID uuid.UUID, name, contentType string, reader io.Reader, size int64) (*models.Document, error) {
	if name == "" || size <= 0 {
		return nil, ErrValidation
	}

	room, err := s.roomRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoomAssigned
		}
		return nil, err
	}

	objectKey := fmt.Sprintf("documents/%s/%s%s", tenantID, uuid.NewString(), path.Ext(name))
	if err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, reader, size); err != nil {
		return nil, err
	}

	document := &models.Document{
		ID:        uuid.New(),
		RoomID:    room.ID,
		TenantID:  tenantID,
		Name:      name,
		ObjectKey: objectKey,
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *documentService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	return s.documentRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func (s *documentService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	return s.documentRepo.ListByLandlord(ctx, landlordID, limit, offset)
}

func (s *documentService) DownloadURLForTenant(ctx context.Context, tenantID, documentID uuid.UUID) (string, error) {
	document, err := s.documentRepo.GetForTenant(ctx, tenantID, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, document.ObjectKey, presignedURLExpiry)
}

func (s *documentService) DownloadURLForLandlord(ctx context.Context, landlordID, documentID uuid.UUID) (string, error) {
	document, err := s.documentRepo.GetForLandlord(ctx, landlordID, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, document.ObjectKey, presignedURLExpiry)
}
