package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"time"
)

type ChatUsecase interface {
	FindConversations(ctx context.Context, sessionData string) ([]responses.Conversation, error)
	FindMessages(ctx context.Context, sessionData, conversationID string, filter *requests.ChatMessageFilter) ([]responses.ChatMessage, *responses.Pagination, error)
	SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatMessage, error)
	MarkConversationRead(ctx context.Context, sessionData, conversationID string) (*responses.ChatReadReceipt, error)
	DeleteMessage(ctx context.Context, sessionData, messageID string) error
	CountUnread(ctx context.Context, sessionData string) (*responses.ChatUnreadCount, error)
}

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, firstUserID, secondUserID string) (*models.Conversation, error)
	FindByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error)
	UpdateLastMessage(ctx context.Context, conversationID string, lastMessage *models.ConversationLastMessage) error
}

type ChatMessageRepository interface {
	Create(ctx context.Context, entity *models.ChatMessage) (string, error)
	FindByID(ctx context.Context, messageID string) (*models.ChatMessage, error)
	FindByConversation(ctx context.Context, conversationID string, filter *requests.ChatMessageFilter) ([]models.ChatMessage, int64, error)
	MarkRead(ctx context.Context, conversationID, recipientID string, readAt time.Time) (int64, error)
	DeleteBySender(ctx context.Context, messageID, senderID string) error
	CountUnreadByConversation(ctx context.Context, recipientID string) (map[string]int64, error)
}
