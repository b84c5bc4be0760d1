package models

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/responses"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConversationLastMessage struct {
	Content     string    `bson:"content"`
	SenderID    string    `bson:"senderId"`
	MessageType string    `bson:"messageType"`
	SentAt      time.Time `bson:"sentAt"`
}

type Conversation struct {
	ID              primitive.ObjectID       `bson:"_id,omitempty"`
	ConversationKey string                   `bson:"conversationKey"`
	Participants    []string                 `bson:"participants"`
	LastMessage     *ConversationLastMessage `bson:"lastMessage,omitempty"`
	LastActivity    time.Time                `bson:"lastActivity"`
	TimeModel       `bson:",inline"`
}

type ChatMessage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ConversationID string             `bson:"conversationId"`
	SenderID       string             `bson:"senderId"`
	RecipientID    string             `bson:"recipientId"`
	Content        string             `bson:"content"`
	MessageType    string             `bson:"messageType"`
	Status         string             `bson:"status"`
	Read           bool               `bson:"read"`
	ReadAt         *time.Time         `bson:"readAt,omitempty"`
	TimeModel      `bson:",inline"`
}

// BuildConversationKey is independent of argument order, so both participants
// resolve to the same conversation.
func BuildConversationKey(firstUserID, secondUserID string) string {
	ids := []string{firstUserID, secondUserID}
	sort.Strings(ids)
	return strings.Join(ids, constvars.ChatConversationKeySeparator)
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, participant := range c.Participants {
		if participant == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not userID, or "" when
// userID does not take part in the conversation.
func (c *Conversation) OtherParticipant(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}
	for _, participant := range c.Participants {
		if participant != userID {
			return participant
		}
	}
	return ""
}

func (c *Conversation) ConvertIntoResponse(participant *responses.ChatParticipant, unreadCount int64) responses.Conversation {
	response := responses.Conversation{
		ID:           c.ID.Hex(),
		Participants: c.Participants,
		Participant:  participant,
		UnreadCount:  unreadCount,
		LastActivity: c.LastActivity,
		CreatedAt:    c.CreatedAt,
	}
	if c.LastMessage != nil {
		response.LastMessage = &responses.ChatLastMessage{
			Content:     c.LastMessage.Content,
			SenderID:    c.LastMessage.SenderID,
			MessageType: c.LastMessage.MessageType,
			SentAt:      c.LastMessage.SentAt,
		}
	}
	return response
}

func (m *ChatMessage) ConvertIntoResponse() responses.ChatMessage {
	return responses.ChatMessage{
		ID:             m.ID.Hex(),
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		Status:         m.Status,
		Read:           m.Read,
		ReadAt:         m.ReadAt,
		CreatedAt:      m.CreatedAt,
	}
}

// ConvertIntoChatParticipantResponse exposes only what the other side of a
// conversation needs to render the thread header.
func (u *User) ConvertIntoChatParticipantResponse() *responses.ChatParticipant {
	return &responses.ChatParticipant{
		ID:        u.ID.Hex(),
		Name:      u.FullName(),
		Role:      u.Role,
		Specialty: u.ProviderSpecialty(),
		IsActive:  u.IsActive,
	}
}
