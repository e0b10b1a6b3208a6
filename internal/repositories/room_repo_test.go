package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RoomRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       RoomRepository
	landlordID uuid.UUID
	tenantID   uuid.UUID
	roomID     uuid.UUID
	context    context.Context
}

func (suite *RoomRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewRoomRepo(mock)
	suite.landlordID = uuid.New()
	suite.tenantID = uuid.New()
	suite.roomID = uuid.New()
	suite.context = context.Background()
}

func (suite *RoomRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestRoomRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RoomRepoTestSuite))
}

func (suite *RoomRepoTestSuite) roomRows(room *models.Room) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "property_id", "room_number", "floor", "type", "rent", "tenant_id", "created_at", "updated_at"}).
		AddRow(room.ID, room.PropertyID, room.RoomNumber, room.Floor, room.Type, room.Rent, room.TenantID, room.CreatedAt, room.UpdatedAt)
}

func (suite *RoomRepoTestSuite) TestGetForLandlord_Success() {
	room := &models.Room{
		ID:         suite.roomID,
		PropertyID: uuid.New(),
		RoomNumber: "101",
		Floor:      1,
		Type:       "single",
		Rent:       5500,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	suite.mock.ExpectQuery(`SELECT .+ FROM rooms r\s+JOIN properties p ON p\.id = r\.property_id\s+WHERE p\.landlord_id = \$1 AND r\.id = \$2`).
		WithArgs(suite.landlordID, suite.roomID).
		WillReturnRows(suite.roomRows(room))

	got, err := suite.repo.GetForLandlord(suite.context, suite.landlordID, suite.roomID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), room.ID, got.ID)
	assert.Equal(suite.T(), "101", got.RoomNumber)
}

func (suite *RoomRepoTestSuite) TestGetForLandlord_OutsideChain() {
	suite.mock.ExpectQuery(`SELECT .+ FROM rooms r`).
		WithArgs(suite.landlordID, suite.roomID).
		WillReturnError(pgx.ErrNoRows)

	got, err := suite.repo.GetForLandlord(suite.context, suite.landlordID, suite.roomID)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *RoomRepoTestSuite) TestUpdate_NoMatchingRow() {
	room := &models.Room{
		ID:         suite.roomID,
		RoomNumber: "102",
		Floor:      1,
		Type:       "double",
		Rent:       7000,
	}

	suite.mock.ExpectExec(`UPDATE rooms`).
		WithArgs(room.RoomNumber, room.Floor, room.Type, room.Rent, room.ID, suite.landlordID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, suite.landlordID, room)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *RoomRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM rooms
		WHERE id = $1 AND property_id IN (SELECT id FROM properties WHERE landlord_id = $2)
	`)).WithArgs(suite.roomID, suite.landlordID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.landlordID, suite.roomID)
	assert.NoError(suite.T(), err)
}

func (suite *RoomRepoTestSuite) TestGetByTenant_ReturnsFirstRow() {
	room := &models.Room{
		ID:         suite.roomID,
		PropertyID: uuid.New(),
		RoomNumber: "201",
		Floor:      2,
		Type:       "single",
		Rent:       6000,
		TenantID:   &suite.tenantID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	suite.mock.ExpectQuery(`SELECT .+ FROM rooms r\s+WHERE r\.tenant_id = \$1\s+ORDER BY r\.created_at\s+LIMIT 1`).
		WithArgs(suite.tenantID).
		WillReturnRows(suite.roomRows(room))

	got, err := suite.repo.GetByTenant(suite.context, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.roomID, got.ID)
}

func (suite *RoomRepoTestSuite) TestAssignTenant_OverwritesOccupant() {
	suite.mock.ExpectExec(`UPDATE rooms SET tenant_id = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(suite.tenantID, suite.roomID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.AssignTenant(suite.context, suite.roomID, suite.tenantID)
	assert.NoError(suite.T(), err)
}

func (suite *RoomRepoTestSuite) TestAssignTenant_MissingRoom() {
	suite.mock.ExpectExec(`UPDATE rooms SET tenant_id`).
		WithArgs(suite.tenantID, suite.roomID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.AssignTenant(suite.context, suite.roomID, suite.tenantID)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}
