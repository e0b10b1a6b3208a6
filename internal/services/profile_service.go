package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileService interface {
	Get(ctx context.Context, landlordID uuid.UUID) (*models.LandlordProfile, error)
	UploadProof(ctx context.Context, landlordID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*models.LandlordProfile, error)
	ProofURL(ctx context.Context, landlordID uuid.UUID) (string, error)
}

type profileService struct {
	profileRepo repositories.LandlordProfileRepository
	storage     StorageService
	bucket      string
}

func NewProfileService(profileRepo repositories.LandlordProfileRepository, storage StorageService, bucket string) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		storage:     storage,
		bucket:      bucket,
	}
}

func (s *profileService) Get(ctx context.Context, landlordID uuid.UUID) (*models.LandlordProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, landlordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UploadProof replaces any previous verification proof; re-uploading resets
// nothing else on the profile.
func (s *profileService) UploadProof(ctx context.Context, landlordID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*models.LandlordProfile, error) {
	if filename == "" || size <= 0 {
		return nil, ErrValidation
	}

	objectKey := fmt.Sprintf("proofs/%s/%s%s", landlordID, uuid.NewString(), path.Ext(filename))
	if err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, reader, size); err != nil {
		return nil, err
	}

	if err := s.profileRepo.SetProofKey(ctx, landlordID, objectKey); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, landlordID)
}

func (s *profileService) ProofURL(ctx context.Context, landlordID uuid.UUID) (string, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, landlordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if profile.ProofKey == nil {
		return "", ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, *profile.ProofKey, presignedURLExpiry)
}
