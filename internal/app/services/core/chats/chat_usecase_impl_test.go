package chats

import (
	"context"
	"errors"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	momSessionData      = `{"session_id":"s1","user_id":"mom-1","role":"mom"}`
	doctorSessionData   = `{"session_id":"s2","user_id":"doc-1","role":"doctor"}`
	providerSessionData = `{"session_id":"s3","user_id":"sp-1","role":"service_provider"}`
)

type chatFixture struct {
	conversationRepo    *mocks.MockConversationRepository
	messageRepo         *mocks.MockChatMessageRepository
	userRepo            *mocks.MockUserRepository
	notificationService *mocks.MockNotificationService
	sessionService      *mocks.MockSessionService
	usecase             *chatUsecase
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		conversationRepo:    new(mocks.MockConversationRepository),
		messageRepo:         new(mocks.MockChatMessageRepository),
		userRepo:            new(mocks.MockUserRepository),
		notificationService: new(mocks.MockNotificationService),
		sessionService:      new(mocks.MockSessionService),
	}
	f.sessionService.On("ParseSessionData", mock.Anything, momSessionData).
		Return(&models.Session{UserID: "mom-1", Role: constvars.RoleMom, FirstName: "Siti", LastName: "Aminah"}, nil)
	f.sessionService.On("ParseSessionData", mock.Anything, doctorSessionData).
		Return(&models.Session{UserID: "doc-1", Role: constvars.RoleDoctor, FirstName: "Budi"}, nil)
	f.sessionService.On("ParseSessionData", mock.Anything, providerSessionData).
		Return(&models.Session{UserID: "sp-1", Role: constvars.RoleServiceProvider}, nil)

	cfg := &config.InternalConfig{App: config.App{EndpointPrefix: "/api"}}
	f.usecase = NewChatUsecase(
		f.conversationRepo,
		f.messageRepo,
		f.userRepo,
		f.notificationService,
		f.sessionService,
		cfg,
		zap.NewNop(),
	).(*chatUsecase)
	return f
}

func statusCodeOf(err error) int {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}

func conversationBetween(firstUserID, secondUserID string) *models.Conversation {
	return &models.Conversation{
		ID:              primitive.NewObjectID(),
		ConversationKey: models.BuildConversationKey(firstUserID, secondUserID),
		Participants:    []string{firstUserID, secondUserID},
	}
}

func activeUser(role string) *models.User {
	return &models.User{ID: primitive.NewObjectID(), FirstName: "Dr", LastName: "Rina", Role: role, IsActive: true}
}

func TestChatUsecase_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Conversation And Notifies Recipient", func(t *testing.T) {
		f := newChatFixture()
		conversation := conversationBetween("mom-1", "doc-1")
		f.userRepo.On("FindByID", ctx, "doc-1").Return(activeUser(constvars.RoleDoctor), nil)
		f.conversationRepo.On("FindOrCreate", ctx, "mom-1", "doc-1").Return(conversation, nil)
		f.messageRepo.On("Create", ctx, mock.MatchedBy(func(entity *models.ChatMessage) bool {
			return entity.ConversationID == conversation.ID.Hex() &&
				entity.SenderID == "mom-1" &&
				entity.MessageType == constvars.ChatMessageTypeText &&
				entity.Status == constvars.ChatMessageStatusSent
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.ChatMessage).ID = primitive.NewObjectID()
		}).Return("ignored", nil)
		f.conversationRepo.On("UpdateLastMessage", ctx, conversation.ID.Hex(), mock.MatchedBy(func(last *models.ConversationLastMessage) bool {
			return last.Content == "Is this cramp normal?" && last.SenderID == "mom-1"
		})).Return(nil)
		f.notificationService.On("Notify", ctx, mock.MatchedBy(func(notification *requests.Notification) bool {
			return notification.Type == constvars.NotificationChatMessageCreated &&
				len(notification.RecipientIDs) == 1 && notification.RecipientIDs[0] == "doc-1" &&
				notification.Title == "New message from Siti Aminah"
		})).Return(nil)

		result, err := f.usecase.SendMessage(ctx, momSessionData, &requests.SendChatMessage{
			RecipientID: "doc-1",
			Content:     "Is this cramp normal?",
		})

		assert.NoError(t, err)
		assert.Equal(t, "doc-1", result.RecipientID)
		assert.Equal(t, constvars.ChatMessageTypeText, result.MessageType)
		f.conversationRepo.AssertExpectations(t)
		f.messageRepo.AssertExpectations(t)
		f.notificationService.AssertExpectations(t)
	})

	t.Run("Stale Last Message Does Not Fail Send", func(t *testing.T) {
		f := newChatFixture()
		conversation := conversationBetween("doc-1", "mom-1")
		f.userRepo.On("FindByID", ctx, "mom-1").Return(activeUser(constvars.RoleMom), nil)
		f.conversationRepo.On("FindOrCreate", ctx, "doc-1", "mom-1").Return(conversation, nil)
		f.messageRepo.On("Create", ctx, mock.Anything).Return("id", nil)
		f.conversationRepo.On("UpdateLastMessage", ctx, conversation.ID.Hex(), mock.Anything).Return(errors.New("write conflict"))
		f.notificationService.On("Notify", ctx, mock.Anything).Return(errors.New("broker down"))

		result, err := f.usecase.SendMessage(ctx, doctorSessionData, &requests.SendChatMessage{
			RecipientID: "mom-1",
			Content:     "scan.pdf",
			MessageType: constvars.ChatMessageTypeFile,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.ChatMessageTypeFile, result.MessageType)
	})

	t.Run("Messaging Yourself Is Forbidden", func(t *testing.T) {
		f := newChatFixture()

		_, err := f.usecase.SendMessage(ctx, momSessionData, &requests.SendChatMessage{RecipientID: "mom-1", Content: "hi"})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
		f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Inactive Recipient Is Not Found", func(t *testing.T) {
		f := newChatFixture()
		doctor := activeUser(constvars.RoleDoctor)
		doctor.IsActive = false
		f.userRepo.On("FindByID", ctx, "doc-2").Return(doctor, nil)

		_, err := f.usecase.SendMessage(ctx, momSessionData, &requests.SendChatMessage{RecipientID: "doc-2", Content: "hi"})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})

	t.Run("Mom To Mom Is Forbidden", func(t *testing.T) {
		f := newChatFixture()
		f.userRepo.On("FindByID", ctx, "mom-2").Return(activeUser(constvars.RoleMom), nil)

		_, err := f.usecase.SendMessage(ctx, momSessionData, &requests.SendChatMessage{RecipientID: "mom-2", Content: "hi"})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
		f.conversationRepo.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Service Provider Cannot Chat", func(t *testing.T) {
		f := newChatFixture()

		_, err := f.usecase.SendMessage(ctx, providerSessionData, &requests.SendChatMessage{RecipientID: "doc-1", Content: "hi"})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
	})
}

func TestChatUsecase_FindConversations(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture()
	withDoctor := conversationBetween("mom-1", "doc-1")
	withDoctor.LastMessage = &models.ConversationLastMessage{Content: "See you Monday", SenderID: "doc-1"}
	withDeletedMidwife := conversationBetween("mom-1", "mid-9")
	doctor := activeUser(constvars.RoleDoctor)

	f.conversationRepo.On("FindByParticipant", ctx, "mom-1").
		Return([]models.Conversation{*withDoctor, *withDeletedMidwife}, nil)
	f.messageRepo.On("CountUnreadByConversation", ctx, "mom-1").
		Return(map[string]int64{withDoctor.ID.Hex(): 3}, nil)
	f.userRepo.On("FindByID", ctx, "doc-1").Return(doctor, nil)
	f.userRepo.On("FindByID", ctx, "mid-9").Return(nil, nil)

	result, err := f.usecase.FindConversations(ctx, momSessionData)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(3), result[0].UnreadCount)
	assert.Equal(t, doctor.ID.Hex(), result[0].Participant.ID)
	assert.Equal(t, "See you Monday", result[0].LastMessage.Content)
	assert.Zero(t, result[1].UnreadCount)
	assert.Nil(t, result[1].Participant)
}

func TestChatUsecase_FindMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Participant Gets Page With Pagination", func(t *testing.T) {
		f := newChatFixture()
		conversation := conversationBetween("mom-1", "doc-1")
		conversationID := conversation.ID.Hex()
		f.conversationRepo.On("FindByID", ctx, conversationID).Return(conversation, nil)
		f.messageRepo.On("FindByConversation", ctx, conversationID, &requests.ChatMessageFilter{Page: 2, Limit: 100}).
			Return([]models.ChatMessage{{ID: primitive.NewObjectID(), ConversationID: conversationID}}, int64(101), nil)

		result, pagination, err := f.usecase.FindMessages(ctx, momSessionData, conversationID, &requests.ChatMessageFilter{Page: 2, Limit: 500})

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 101, pagination.Total)
		assert.True(t, pagination.HasPrev)
		assert.True(t, strings.HasPrefix(pagination.PrevURL, "/api/chat/conversations/"+conversationID+"/messages"))
	})

	t.Run("Non Participant Is Forbidden", func(t *testing.T) {
		f := newChatFixture()
		conversation := conversationBetween("mom-2", "doc-1")
		f.conversationRepo.On("FindByID", ctx, conversation.ID.Hex()).Return(conversation, nil)

		_, _, err := f.usecase.FindMessages(ctx, momSessionData, conversation.ID.Hex(), &requests.ChatMessageFilter{})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
		f.messageRepo.AssertNotCalled(t, "FindByConversation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Conversation", func(t *testing.T) {
		f := newChatFixture()
		f.conversationRepo.On("FindByID", ctx, "missing").Return(nil, nil)

		_, _, err := f.usecase.FindMessages(ctx, momSessionData, "missing", &requests.ChatMessageFilter{})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestChatUsecase_MarkConversationRead(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture()
	conversation := conversationBetween("mom-1", "doc-1")
	conversationID := conversation.ID.Hex()
	f.conversationRepo.On("FindByID", ctx, conversationID).Return(conversation, nil)
	f.messageRepo.On("MarkRead", ctx, conversationID, "doc-1", mock.AnythingOfType("time.Time")).Return(int64(4), nil)

	receipt, err := f.usecase.MarkConversationRead(ctx, doctorSessionData, conversationID)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), receipt.MarkedCount)
	assert.Equal(t, conversationID, receipt.ConversationID)
}

func TestChatUsecase_DeleteMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Sender Deletes And Recipient Is Told", func(t *testing.T) {
		f := newChatFixture()
		message := &models.ChatMessage{ID: primitive.NewObjectID(), ConversationID: "conv-1", SenderID: "mom-1", RecipientID: "doc-1"}
		f.messageRepo.On("FindByID", ctx, "msg-1").Return(message, nil)
		f.messageRepo.On("DeleteBySender", ctx, "msg-1", "mom-1").Return(nil)
		f.notificationService.On("Notify", ctx, mock.MatchedBy(func(notification *requests.Notification) bool {
			return notification.Type == constvars.NotificationChatMessageDeleted && notification.RecipientIDs[0] == "doc-1"
		})).Return(nil)

		err := f.usecase.DeleteMessage(ctx, momSessionData, "msg-1")

		assert.NoError(t, err)
		f.notificationService.AssertExpectations(t)
	})

	t.Run("Recipient Cannot Delete", func(t *testing.T) {
		f := newChatFixture()
		message := &models.ChatMessage{ID: primitive.NewObjectID(), SenderID: "mom-1", RecipientID: "doc-1"}
		f.messageRepo.On("FindByID", ctx, "msg-1").Return(message, nil)

		err := f.usecase.DeleteMessage(ctx, doctorSessionData, "msg-1")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
		f.messageRepo.AssertNotCalled(t, "DeleteBySender", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Message", func(t *testing.T) {
		f := newChatFixture()
		f.messageRepo.On("FindByID", ctx, "msg-404").Return(nil, nil)

		err := f.usecase.DeleteMessage(ctx, momSessionData, "msg-404")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestChatUsecase_CountUnread(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture()
	f.messageRepo.On("CountUnreadByConversation", ctx, "doc-1").
		Return(map[string]int64{"conv-1": 2, "conv-2": 5}, nil)

	result, err := f.usecase.CountUnread(ctx, doctorSessionData)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.Total)
	assert.Len(t, result.Conversations, 2)
}

func TestCanChat(t *testing.T) {
	tests := []struct {
		name      string
		sender    string
		recipient string
		expected  bool
	}{
		{"mom to doctor", constvars.RoleMom, constvars.RoleDoctor, true},
		{"midwife to mom", constvars.RoleMidwife, constvars.RoleMom, true},
		{"doctor to midwife", constvars.RoleDoctor, constvars.RoleMidwife, true},
		{"mom to mom", constvars.RoleMom, constvars.RoleMom, false},
		{"mom to admin", constvars.RoleMom, constvars.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canChat(tt.sender, tt.recipient))
		})
	}
}

func TestPreviewOf(t *testing.T) {
	long := strings.Repeat("a", notificationPreviewLength+5)

	assert.Equal(t, strings.Repeat("a", notificationPreviewLength)+"...", previewOf(&models.ChatMessage{Content: long, MessageType: constvars.ChatMessageTypeText}))
	assert.Equal(t, "Sent an image", previewOf(&models.ChatMessage{Content: "x.png", MessageType: constvars.ChatMessageTypeImage}))
}
