package services

import (
	"context"
	"time"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, role, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockLandlordProfileRepository struct {
	mock.Mock
}

func (m *MockLandlordProfileRepository) Create(ctx context.Context, profile *models.LandlordProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockLandlordProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.LandlordProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LandlordProfile), args.Error(1)
}

func (m *MockLandlordProfileRepository) SetProofKey(ctx context.Context, userID uuid.UUID, proofKey string) error {
	args := m.Called(ctx, userID, proofKey)
	return args.Error(0)
}

func (m *MockLandlordProfileRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Property, error) {
	args := m.Called(ctx, landlordID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Property, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Property), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Room, error) {
	args := m.Called(ctx, landlordID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, landlordID uuid.UUID, room *models.Room) error {
	args := m.Called(ctx, landlordID, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, landlordID, id uuid.UUID) error {
	args := m.Called(ctx, landlordID, id)
	return args.Error(0)
}

func (m *MockRoomRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Room, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*models.Room, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) AssignTenant(ctx context.Context, roomID, tenantID uuid.UUID) error {
	args := m.Called(ctx, roomID, tenantID)
	return args.Error(0)
}

func (m *MockRoomRepository) GetLandlord(ctx context.Context, roomID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetForLandlord(ctx context.Context, landlordID, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, landlordID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPaymentRepository) MonthlyIncome(ctx context.Context, landlordID uuid.UUID) ([]*models.IncomeByMonth, error) {
	args := m.Called(ctx, landlordID)
	return args.Get(0).([]*models.IncomeByMonth), args.Error(1)
}

func (m *MockPaymentRepository) CountPendingByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	args := m.Called(ctx, landlordID)
	return args.Int(0), args.Error(1)
}

type MockElectricityBillRepository struct {
	mock.Mock
}

func (m *MockElectricityBillRepository) Create(ctx context.Context, bill *models.ElectricityBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockElectricityBillRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.ElectricityBill, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) MarkPaid(ctx context.Context, landlordID, id uuid.UUID) error {
	args := m.Called(ctx, landlordID, id)
	return args.Error(0)
}

func (m *MockElectricityBillRepository) CountUnpaidByLandlord(ctx context.Context, landlordID uuid.UUID) (int, error) {
	args := m.Called(ctx, landlordID)
	return args.Int(0), args.Error(1)
}

type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) Create(ctx context.Context, message *models.CommunityMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockCommunityRepository) List(ctx context.Context, limit, offset int) ([]*models.CommunityMessage, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.CommunityMessage), args.Error(1)
}

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockChatRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetIncomeSummary(ctx context.Context, landlordID uuid.UUID) ([]*models.MonthlyIncome, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MonthlyIncome), args.Error(1)
}

func (m *MockCacheService) SetIncomeSummary(ctx context.Context, landlordID uuid.UUID, summary []*models.MonthlyIncome, ttl time.Duration) error {
	args := m.Called(ctx, landlordID, summary, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteIncomeSummary(ctx context.Context, landlordID uuid.UUID) error {
	args := m.Called(ctx, landlordID)
	return args.Error(0)
}

func (m *MockCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyPaymentSubmitted(ctx context.Context, landlord *models.User, payment *models.Payment) error {
	args := m.Called(ctx, landlord, payment)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyComplaintFiled(ctx context.Context, landlord *models.User, complaint *models.Complaint) error {
	args := m.Called(ctx, landlord, complaint)
	return args.Error(0)
}
