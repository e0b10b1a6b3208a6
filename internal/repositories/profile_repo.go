package repositories

import (
	"context"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LandlordProfileRepository interface {
	Create(ctx context.Context, profile *models.LandlordProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.LandlordProfile, error)
	SetProofKey(ctx context.Context, userID uuid.UUID, proofKey string) error
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
}

type landlordProfileRepo struct {
	db Database
}

func NewLandlordProfileRepo(db Database) LandlordProfileRepository {
	return &landlordProfileRepo{db: db}
}

const profileColumns = `id, user_id, subscription_start, subscription_end, proof_key, is_verified, created_at, updated_at`

func (r *landlordProfileRepo) Create(ctx context.Context, profile *models.LandlordProfile) error {
	query := `
		INSERT INTO landlord_profiles (id, user_id, subscription_start, subscription_end, proof_key, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, profile.ID, profile.UserID, profile.SubscriptionStart, profile.SubscriptionEnd, profile.ProofKey, profile.IsVerified)
	return err
}

func (r *landlordProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.LandlordProfile, error) {
	profile := &models.LandlordProfile{}
	query := `
		SELECT ` + profileColumns + `
		FROM landlord_profiles
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&profile.ID, &profile.UserID, &profile.SubscriptionStart, &profile.SubscriptionEnd, &profile.ProofKey, &profile.IsVerified, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *landlordProfileRepo) SetProofKey(ctx context.Context, userID uuid.UUID, proofKey string) error {
	query := `UPDATE landlord_profiles SET proof_key = $1, updated_at = NOW() WHERE user_id = $2`
	tag, err := r.db.Exec(ctx, query, proofKey, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *landlordProfileRepo) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	query := `UPDATE landlord_profiles SET is_verified = $1, updated_at = NOW() WHERE user_id = $2`
	tag, err := r.db.Exec(ctx, query, verified, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
