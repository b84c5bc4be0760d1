package responses

import "time"

type ChatParticipant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	IsActive  bool   `json:"isActive"`
}

type ChatLastMessage struct {
	Content     string    `json:"content"`
	SenderID    string    `json:"senderId"`
	MessageType string    `json:"messageType"`
	SentAt      time.Time `json:"sentAt"`
}

type Conversation struct {
	ID           string           `json:"id"`
	Participants []string         `json:"participants"`
	Participant  *ChatParticipant `json:"participant,omitempty"`
	LastMessage  *ChatLastMessage `json:"lastMessage,omitempty"`
	UnreadCount  int64            `json:"unreadCount"`
	LastActivity time.Time        `json:"lastActivity"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type ChatMessage struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversationId"`
	SenderID       string     `json:"senderId"`
	RecipientID    string     `json:"recipientId"`
	Content        string     `json:"content"`
	MessageType    string     `json:"messageType"`
	Status         string     `json:"status"`
	Read           bool       `json:"read"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type ChatReadReceipt struct {
	ConversationID string `json:"conversationId"`
	MarkedCount    int64  `json:"markedCount"`
}

type ChatUnreadCount struct {
	Total         int64            `json:"total"`
	Conversations map[string]int64 `json:"conversations"`
}
