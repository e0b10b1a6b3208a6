package services

import (
	"context"
	"testing"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RoomServiceTestSuite struct {
	suite.Suite
	roomRepo     *MockRoomRepository
	propertyRepo *MockPropertyRepository
	userRepo     *MockUserRepository
	service      RoomService
	landlordID   uuid.UUID
	tenantID     uuid.UUID
	roomID       uuid.UUID
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.roomRepo = &MockRoomRepository{}
	suite.propertyRepo = &MockPropertyRepository{}
	suite.userRepo = &MockUserRepository{}
	suite.service = NewRoomService(suite.roomRepo, suite.propertyRepo, suite.userRepo)
	suite.landlordID = uuid.New()
	suite.tenantID = uuid.New()
	suite.roomID = uuid.New()

	suite.roomRepo.Test(suite.T())
}

func (suite *RoomServiceTestSuite) TearDownTest() {
	suite.roomRepo.AssertExpectations(suite.T())
	suite.propertyRepo.AssertExpectations(suite.T())
	suite.userRepo.AssertExpectations(suite.T())
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (suite *RoomServiceTestSuite) TestCreate_ForeignPropertyForbidden() {
	ctx := context.Background()
	room := &models.Room{PropertyID: uuid.New(), RoomNumber: "101", Rent: 5000}

	suite.propertyRepo.On("GetForLandlord", ctx, suite.landlordID, room.PropertyID).Return(nil, pgx.ErrNoRows)

	created, err := suite.service.Create(ctx, suite.landlordID, room)
	assert.Nil(suite.T(), created)
	assert.ErrorIs(suite.T(), err, ErrForbidden)
}

func (suite *RoomServiceTestSuite) TestAssignTenant_SilentDisplacement() {
	ctx := context.Background()
	occupied := &models.Room{ID: suite.roomID, TenantID: &suite.tenantID}
	newTenant := &models.User{ID: uuid.New(), Email: "new@example.com", Role: models.RoleTenant}

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(occupied, nil)
	suite.userRepo.On("GetByEmail", ctx, "new@example.com").Return(newTenant, nil)
	suite.roomRepo.On("AssignTenant", ctx, suite.roomID, newTenant.ID).Return(nil)

	room, err := suite.service.AssignTenant(ctx, suite.landlordID, suite.roomID, "new@example.com")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), room)
}

func (suite *RoomServiceTestSuite) TestAssignTenant_ForeignRoomNotFound() {
	ctx := context.Background()

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(nil, pgx.ErrNoRows)

	room, err := suite.service.AssignTenant(ctx, suite.landlordID, suite.roomID, "a@example.com")
	assert.Nil(suite.T(), room)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestAssignTenant_UnknownEmailNotFound() {
	ctx := context.Background()
	room := &models.Room{ID: suite.roomID}

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(room, nil)
	suite.userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	got, err := suite.service.AssignTenant(ctx, suite.landlordID, suite.roomID, "ghost@example.com")
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestAssignTenant_LandlordEmailNotFound() {
	ctx := context.Background()
	room := &models.Room{ID: suite.roomID}
	other := &models.User{ID: uuid.New(), Email: "boss@example.com", Role: models.RoleLandlord}

	suite.roomRepo.On("GetForLandlord", ctx, suite.landlordID, suite.roomID).Return(room, nil)
	suite.userRepo.On("GetByEmail", ctx, "boss@example.com").Return(other, nil)

	got, err := suite.service.AssignTenant(ctx, suite.landlordID, suite.roomID, "boss@example.com")
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestTenantRoom_NoRoomAssigned() {
	ctx := context.Background()

	suite.roomRepo.On("GetByTenant", ctx, suite.tenantID).Return(nil, pgx.ErrNoRows)

	room, err := suite.service.TenantRoom(ctx, suite.tenantID)
	assert.Nil(suite.T(), room)
	assert.ErrorIs(suite.T(), err, ErrNoRoomAssigned)
}

func (suite *RoomServiceTestSuite) TestLandlordContact_Success() {
	ctx := context.Background()
	room := &models.Room{ID: suite.roomID, TenantID: &suite.tenantID}
	landlord := &models.User{ID: suite.landlordID, Username: "owner", Email: "owner@example.com"}

	suite.roomRepo.On("GetByTenant", ctx, suite.tenantID).Return(room, nil)
	suite.roomRepo.On("GetLandlord", ctx, suite.roomID).Return(landlord, nil)

	contact, err := suite.service.LandlordContact(ctx, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "owner", contact.Name)
	assert.Equal(suite.T(), "owner@example.com", contact.Email)
}

func (suite *RoomServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	suite.roomRepo.On("Delete", ctx, suite.landlordID, suite.roomID).Return(pgx.ErrNoRows)

	err := suite.service.Delete(ctx, suite.landlordID, suite.roomID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}
