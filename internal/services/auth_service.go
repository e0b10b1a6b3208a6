package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"rentdesk/internal/caching"
	"rentdesk/internal/models"
	"rentdesk/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute

	// New landlords get a trial subscription window.
	trialSubscriptionDays = 30
)

// AuthService handles registration, login and JWT token management.
type AuthService interface {
	RegisterLandlord(ctx context.Context, username, email, password string) (*models.TokenResponse, error)
	AddTenant(ctx context.Context, landlordID uuid.UUID, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
	GenerateTokens(ctx context.Context, userID uuid.UUID, role string) (*models.TokenResponse, error)
}

// TokenClaims carries identity and role inside the access token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.LandlordProfileRepository
	cacheSvc    caching.CacheService
	jwtSecret   []byte
	tokenTTL    int // Access token TTL in seconds
	refreshTTL  int // Refresh token TTL in seconds
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.LandlordProfileRepository, cacheSvc caching.CacheService, jwtSecret string, tokenTTLSeconds, refreshTTLSeconds int) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		cacheSvc:    cacheSvc,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTLSeconds,
		refreshTTL:  refreshTTLSeconds,
	}
}

// RegisterLandlord creates the landlord account plus its profile row and
// returns tokens so registration doubles as login.
func (s *authService) RegisterLandlord(ctx context.Context, username, email, password string) (*models.TokenResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleLandlord,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &models.LandlordProfile{
		ID:                uuid.New(),
		UserID:            user.ID,
		SubscriptionStart: now,
		SubscriptionEnd:   now.AddDate(0, 0, trialSubscriptionDays),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// The account is usable without a profile row; log and continue.
		log.Printf("Failed to create landlord profile for %s: %v", user.ID, err)
	}

	return s.GenerateTokens(ctx, user.ID, user.Role)
}

// AddTenant creates a tenant account on behalf of a landlord. No tokens are
// issued; the tenant logs in with the credentials the landlord hands over.
func (s *authService) AddTenant(ctx context.Context, landlordID uuid.UUID, username, email, password string) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleTenant,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	limited, err := s.cacheSvc.IsRateLimited(ctx, "login:"+email, loginRateLimit, loginRateWindow)
	if err != nil {
		log.Printf("Rate limit check failed for %s: %v", email, err)
	} else if limited {
		return nil, ErrRateLimited
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.GenerateTokens(ctx, user.ID, user.Role)
}

// GenerateTokens issues a signed access token and a refresh token whose
// SHA-256 hash is stored in the cache; the raw refresh token never persists.
func (s *authService) GenerateTokens(ctx context.Context, userID uuid.UUID, role string) (*models.TokenResponse, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := TokenClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rentdesk-auth",
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{"rentdesk-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.tokenTTL) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessTokenString, err := accessToken.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign JWT: %w", err)
	}

	refreshToken := s.generateSecureToken()
	refreshTokenHash := s.hashToken(refreshToken)

	refreshTokenData := fmt.Sprintf("%s:%s:%d", userID.String(), role, now.Unix()+int64(s.refreshTTL))
	cacheKey := fmt.Sprintf("refresh_token:%s", refreshTokenHash)
	if err := s.cacheSvc.SetString(ctx, cacheKey, refreshTokenData, time.Duration(s.refreshTTL)*time.Second); err != nil {
		log.Printf("Failed to store refresh token: %v", err)
		// Continue - token generation succeeded
	}

	return &models.TokenResponse{
		AccessToken:  accessTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    s.tokenTTL,
		RefreshToken: refreshToken,
		UserID:       userID.String(),
		Role:         role,
		IssuedAt:     now,
	}, nil
}

// Refresh rotates the refresh token: the presented one is deleted and a new
// pair is issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	refreshTokenHash := s.hashToken(refreshToken)

	cacheKey := fmt.Sprintf("refresh_token:%s", refreshTokenHash)
	tokenData, err := s.cacheSvc.GetString(ctx, cacheKey)
	if err != nil || tokenData == "" {
		return nil, ErrInvalidCredentials
	}

	parts := strings.Split(tokenData, ":")
	if len(parts) != 3 {
		return nil, ErrInvalidCredentials
	}

	userIDStr, role, expiryStr := parts[0], parts[1], parts[2]
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if time.Now().Unix() > expiry {
		s.cacheSvc.Delete(ctx, cacheKey)
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.cacheSvc.Delete(ctx, cacheKey); err != nil {
		log.Printf("Failed to rotate refresh token: %v", err)
	}

	return s.GenerateTokens(ctx, userID, role)
}

func (s *authService) generateSecureToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return base64.URLEncoding.EncodeToString(bytes)
}

func (s *authService) hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
