package services

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillingServiceTestSuite struct {
	suite.Suite
	billRepo   *MockElectricityBillRepository
	roomRepo   *MockRoomRepository
	service    BillingService
	landlordID uuid.UUID
	roomID     uuid.UUID
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.billRepo = &MockElectricityBillRepository{}
	suite.roomRepo = &MockRoomRepository{}
	suite.service = NewBillingService(suite.billRepo, suite.roomRepo)
	suite.landlordID = uuid.New()
	suite.roomID = uuid.New()
}

func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.billRepo.AssertExpectations(suite.T())
	suite.roomRepo.AssertExpectations(suite.T())
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func (suite *BillingServiceTestSuite) TestCreateBill_ForeignRoomForbidden() {
	ctx := context.Background()

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(nil, pgx.ErrNoRows)

	bill, err := suite.service.CreateBill(ctx, suite.landlordID, suite.roomID, 1200, time.Now())
	assert.Nil(suite.T(), bill)
	assert.ErrorIs(suite.T(), err, ErrForbidden)
	suite.billRepo.AssertNotCalled(suite.T(), "Create")
}

func (suite *BillingServiceTestSuite) TestCreateBill_InvalidAmount() {
	ctx := context.Background()

	bill, err := suite.service.CreateBill(ctx, suite.landlordID, suite.roomID, 0, time.Now())
	assert.Nil(suite.T(), bill)
	assert.ErrorIs(suite.T(), err, ErrValidation)
	suite.roomRepo.AssertNotCalled(suite.T(), "GetForLandlord")
}

func (suite *BillingServiceTestSuite) TestCreateBill_NormalizesMonth() {
	ctx := context.Background()
	room := &models.Room{ID: suite.roomID}

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(room, nil)
	suite.billRepo.On("Create", ctx, mock.AnythingOfType("*models.ElectricityBill")).Return(nil)

	mid := time.Date(2026, time.March, 17, 14, 30, 0, 0, time.FixedZone("IST", 19800))
	bill, err := suite.service.CreateBill(ctx, suite.landlordID, suite.roomID, 1200, mid)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), bill.Month)
	assert.Equal(suite.T(), suite.roomID, bill.RoomID)
	assert.False(suite.T(), bill.Paid)
}

func (suite *BillingServiceTestSuite) TestMarkPaid_NotFound() {
	ctx := context.Background()
	billID := uuid.New()

	suite.billRepo.On("MarkPaid", ctx, suite.landlordID, billID).Return(pgx.ErrNoRows)

	err := suite.service.MarkPaid(ctx, suite.landlordID, billID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *BillingServiceTestSuite) TestMarkPaid_Success() {
	ctx := context.Background()
	billID := uuid.New()

	suite.billRepo.On("MarkPaid", ctx, suite.landlordID, billID).Return(nil)

	err := suite.service.MarkPaid(ctx, suite.landlordID, billID)
	assert.NoError(suite.T(), err)
}
