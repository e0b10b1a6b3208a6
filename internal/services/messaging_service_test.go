package services

import (
	"context"
	"testing"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	communityRepo *MockCommunityRepository
	chatRepo      *MockChatRepository
	userRepo      *MockUserRepository
	service       MessagingService
	senderID      uuid.UUID
	receiverID    uuid.UUID
}

func (suite *MessagingServiceTestSuite) SetupTest() {
	suite.communityRepo = &MockCommunityRepository{}
	suite.chatRepo = &MockChatRepository{}
	suite.userRepo = &MockUserRepository{}
	suite.service = NewMessagingService(suite.communityRepo, suite.chatRepo, suite.userRepo)
	suite.senderID = uuid.New()
	suite.receiverID = uuid.New()
}

func (suite *MessagingServiceTestSuite) TearDownTest() {
	suite.communityRepo.AssertExpectations(suite.T())
	suite.chatRepo.AssertExpectations(suite.T())
	suite.userRepo.AssertExpectations(suite.T())
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (suite *MessagingServiceTestSuite) TestPostAnnouncement_Success() {
	ctx := context.Background()

	suite.communityRepo.On("Create", ctx, mock.AnythingOfType("*models.CommunityMessage")).Return(nil).Run(func(args mock.Arguments) {
		message := args.Get(1).(*models.CommunityMessage)
		assert.Equal(suite.T(), suite.senderID, message.SenderID)
		assert.Equal(suite.T(), "Water outage", message.Title)
	})

	message, err := suite.service.PostAnnouncement(ctx, suite.senderID, "Water outage", "No water on Friday morning")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), message)
}

func (suite *MessagingServiceTestSuite) TestPostAnnouncement_EmptyTitle() {
	message, err := suite.service.PostAnnouncement(context.Background(), suite.senderID, "", "body")
	assert.Nil(suite.T(), message)
	assert.ErrorIs(suite.T(), err, ErrValidation)
}

func (suite *MessagingServiceTestSuite) TestSendChat_ReceiverMustExist() {
	ctx := context.Background()

	suite.userRepo.On("GetByID", ctx, suite.receiverID).Return(nil, pgx.ErrNoRows)

	message, err := suite.service.SendChat(ctx, suite.senderID, suite.receiverID, "hello")
	assert.Nil(suite.T(), message)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *MessagingServiceTestSuite) TestSendChat_SelfMessageRejected() {
	message, err := suite.service.SendChat(context.Background(), suite.senderID, suite.senderID, "hi me")
	assert.Nil(suite.T(), message)
	assert.ErrorIs(suite.T(), err, ErrValidation)
}

func (suite *MessagingServiceTestSuite) TestSendChat_Success() {
	ctx := context.Background()
	receiver := &models.User{ID: suite.receiverID, Role: models.RoleLandlord}

	suite.userRepo.On("GetByID", ctx, suite.receiverID).Return(receiver, nil)
	suite.chatRepo.On("Create", ctx, mock.AnythingOfType("*models.ChatMessage")).Return(nil).Run(func(args mock.Arguments) {
		message := args.Get(1).(*models.ChatMessage)
		assert.Equal(suite.T(), suite.senderID, message.SenderID)
		assert.Equal(suite.T(), suite.receiverID, message.ReceiverID)
		assert.False(suite.T(), message.IsRead)
	})

	message, err := suite.service.SendChat(ctx, suite.senderID, suite.receiverID, "rent question")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), message)
}

func (suite *MessagingServiceTestSuite) TestListChat_PassesThrough() {
	ctx := context.Background()
	expected := []*models.ChatMessage{{ID: uuid.New(), SenderID: suite.senderID, ReceiverID: suite.receiverID, Body: "hi"}}

	suite.chatRepo.On("ListForUser", ctx, suite.senderID, 50, 0).Return(expected, nil)

	messages, err := suite.service.ListChat(ctx, suite.senderID, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, messages)
}
