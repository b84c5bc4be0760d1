package chats

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const notificationPreviewLength = 100

type chatUsecase struct {
	ConversationRepository contracts.ConversationRepository
	ChatMessageRepository  contracts.ChatMessageRepository
	UserRepository         contracts.UserRepository
	NotificationService    contracts.NotificationService
	SessionService         contracts.SessionService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewChatUsecase(
	conversationRepository contracts.ConversationRepository,
	chatMessageRepository contracts.ChatMessageRepository,
	userRepository contracts.UserRepository,
	notificationService contracts.NotificationService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ChatUsecase {
	return &chatUsecase{
		ConversationRepository: conversationRepository,
		ChatMessageRepository:  chatMessageRepository,
		UserRepository:         userRepository,
		NotificationService:    notificationService,
		SessionService:         sessionService,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

func (uc *chatUsecase) FindConversations(ctx context.Context, sessionData string) ([]responses.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.FindConversations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	conversations, err := uc.ConversationRepository.FindByParticipant(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("chatUsecase.FindConversations error calling ConversationRepository.FindByParticipant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	unreadCounts, err := uc.ChatMessageRepository.CountUnreadByConversation(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("chatUsecase.FindConversations error calling ChatMessageRepository.CountUnreadByConversation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Conversation, 0, len(conversations))
	for i := range conversations {
		conversation := &conversations[i]

		var participant *responses.ChatParticipant
		otherUser, err := uc.UserRepository.FindByID(ctx, conversation.OtherParticipant(session.UserID))
		if err != nil {
			return nil, err
		}
		if otherUser != nil {
			participant = otherUser.ConvertIntoChatParticipantResponse()
		}

		response = append(response, conversation.ConvertIntoResponse(participant, unreadCounts[conversation.ID.Hex()]))
	}

	uc.Log.Info("chatUsecase.FindConversations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingConversationCountKey, len(response)),
	)
	return response, nil
}

func (uc *chatUsecase) FindMessages(ctx context.Context, sessionData, conversationID string, filter *requests.ChatMessageFilter) ([]responses.ChatMessage, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.FindMessages called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}

	_, err = uc.findParticipatingConversation(ctx, conversationID, session.UserID)
	if err != nil {
		return nil, nil, err
	}

	if filter.Page <= 0 {
		filter.Page = constvars.AppDefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = constvars.AppDefaultChatPageSize
	}
	if filter.Limit > constvars.AppMaxChatPageSize {
		filter.Limit = constvars.AppMaxChatPageSize
	}

	messages, total, err := uc.ChatMessageRepository.FindByConversation(ctx, conversationID, filter)
	if err != nil {
		uc.Log.Error("chatUsecase.FindMessages error calling ChatMessageRepository.FindByConversation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.ChatMessage, 0, len(messages))
	for i := range messages {
		response = append(response, messages[i].ConvertIntoResponse())
	}

	baseURL := fmt.Sprintf("%s/chat/conversations/%s/messages", uc.InternalConfig.App.EndpointPrefix, conversationID)
	pagination := utils.BuildPaginationResponse(int(total), filter.Page, filter.Limit, baseURL, constvars.AppChatPaginationUrlFormat)

	uc.Log.Info("chatUsecase.FindMessages succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMessageCountKey, len(response)),
	)
	return response, pagination, nil
}

// SendMessage stores the message in the conversation between the caller and
// the recipient, creating the conversation on first contact, and pushes it to
// the recipient.
func (uc *chatUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecipientIDKey, request.RecipientID),
	)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if request.RecipientID == session.UserID {
		return nil, exceptions.ErrChatRecipientNotAllowed(nil)
	}

	recipient, err := uc.UserRepository.FindByID(ctx, request.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil || !recipient.IsActive {
		return nil, exceptions.ErrChatRecipientNotFound(nil)
	}
	if !canChat(session.Role, recipient.Role) {
		return nil, exceptions.ErrChatRecipientNotAllowed(nil)
	}

	conversation, err := uc.ConversationRepository.FindOrCreate(ctx, session.UserID, request.RecipientID)
	if err != nil {
		uc.Log.Error("chatUsecase.SendMessage error calling ConversationRepository.FindOrCreate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	messageType := request.MessageType
	if messageType == "" {
		messageType = constvars.ChatMessageTypeText
	}

	message := &models.ChatMessage{
		ConversationID: conversation.ID.Hex(),
		SenderID:       session.UserID,
		RecipientID:    request.RecipientID,
		Content:        request.Content,
		MessageType:    messageType,
		Status:         constvars.ChatMessageStatusSent,
	}
	message.SetCreatedAtUpdatedAt()

	_, err = uc.ChatMessageRepository.Create(ctx, message)
	if err != nil {
		uc.Log.Error("chatUsecase.SendMessage error calling ChatMessageRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ConversationRepository.UpdateLastMessage(ctx, message.ConversationID, &models.ConversationLastMessage{
		Content:     message.Content,
		SenderID:    message.SenderID,
		MessageType: message.MessageType,
		SentAt:      message.CreatedAt,
	})
	if err != nil {
		uc.Log.Warn("chatUsecase.SendMessage error calling ConversationRepository.UpdateLastMessage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, message.ConversationID),
			zap.Error(err),
		)
	}

	response := message.ConvertIntoResponse()
	senderName := strings.TrimSpace(session.FirstName + " " + session.LastName)
	uc.notify(ctx, &requests.Notification{
		Type:         constvars.NotificationChatMessageCreated,
		RecipientIDs: []string{request.RecipientID},
		Title:        fmt.Sprintf("New message from %s", senderName),
		Message:      previewOf(message),
		Data:         response,
	})

	uc.Log.Info("chatUsecase.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChatMessageIDKey, response.ID),
	)
	return &response, nil
}

// MarkConversationRead only flips messages addressed to the caller; the
// caller's own outgoing messages keep their status.
func (uc *chatUsecase) MarkConversationRead(ctx context.Context, sessionData, conversationID string) (*responses.ChatReadReceipt, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.MarkConversationRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	_, err = uc.findParticipatingConversation(ctx, conversationID, session.UserID)
	if err != nil {
		return nil, err
	}

	marked, err := uc.ChatMessageRepository.MarkRead(ctx, conversationID, session.UserID, time.Now().UTC())
	if err != nil {
		uc.Log.Error("chatUsecase.MarkConversationRead error calling ChatMessageRepository.MarkRead",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("chatUsecase.MarkConversationRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAffectedCountKey, marked),
	)
	return &responses.ChatReadReceipt{ConversationID: conversationID, MarkedCount: marked}, nil
}

func (uc *chatUsecase) DeleteMessage(ctx context.Context, sessionData, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.DeleteMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChatMessageIDKey, messageID),
	)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return err
	}

	message, err := uc.ChatMessageRepository.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return exceptions.ErrChatMessageNotFound(nil)
	}
	if message.SenderID != session.UserID {
		return exceptions.ErrChatMessageNotOwned(nil)
	}

	err = uc.ChatMessageRepository.DeleteBySender(ctx, messageID, session.UserID)
	if err != nil {
		uc.Log.Error("chatUsecase.DeleteMessage error calling ChatMessageRepository.DeleteBySender",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, &requests.Notification{
		Type:         constvars.NotificationChatMessageDeleted,
		RecipientIDs: []string{message.RecipientID},
		Title:        "Message deleted",
		Message:      "A message in your conversation was deleted",
		Data: map[string]string{
			"id":             messageID,
			"conversationId": message.ConversationID,
		},
	})

	uc.Log.Info("chatUsecase.DeleteMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *chatUsecase) CountUnread(ctx context.Context, sessionData string) (*responses.ChatUnreadCount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.parseChatSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	unreadCounts, err := uc.ChatMessageRepository.CountUnreadByConversation(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("chatUsecase.CountUnread error calling ChatMessageRepository.CountUnreadByConversation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var total int64
	for _, count := range unreadCounts {
		total += count
	}
	return &responses.ChatUnreadCount{Total: total, Conversations: unreadCounts}, nil
}

func (uc *chatUsecase) parseChatSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !isChatRole(session.Role) {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role)
	}
	return session, nil
}

// findParticipatingConversation returns 404 for a missing conversation and
// 403 for one the user is not part of.
func (uc *chatUsecase) findParticipatingConversation(ctx context.Context, conversationID, userID string) (*models.Conversation, error) {
	conversation, err := uc.ConversationRepository.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, exceptions.ErrConversationNotFound(nil)
	}
	if !conversation.HasParticipant(userID) {
		return nil, exceptions.ErrChatAccessDenied(nil)
	}
	return conversation, nil
}

func (uc *chatUsecase) notify(ctx context.Context, notification *requests.Notification) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.NotificationService.Notify(ctx, notification)
	if err != nil {
		uc.Log.Warn("chatUsecase.notify error calling NotificationService.Notify",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTypeKey, notification.Type),
			zap.Error(err),
		)
	}
}

func isChatRole(role string) bool {
	return role == constvars.RoleMom || role == constvars.RoleDoctor || role == constvars.RoleMidwife
}

// canChat requires a doctor or midwife on at least one side. Moms do not
// message each other.
func canChat(senderRole, recipientRole string) bool {
	if !isChatRole(senderRole) || !isChatRole(recipientRole) {
		return false
	}
	return senderRole != constvars.RoleMom || recipientRole != constvars.RoleMom
}

func previewOf(message *models.ChatMessage) string {
	switch message.MessageType {
	case constvars.ChatMessageTypeImage:
		return "Sent an image"
	case constvars.ChatMessageTypeFile:
		return "Sent a file"
	}
	if utf8.RuneCountInString(message.Content) <= notificationPreviewLength {
		return message.Content
	}
	runes := []rune(message.Content)
	return string(runes[:notificationPreviewLength]) + "..."
}
