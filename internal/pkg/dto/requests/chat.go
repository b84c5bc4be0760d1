package requests

type SendChatMessage struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required,max=5000"`
	MessageType string `json:"messageType" validate:"omitempty,oneof=text image file"`
}

type ChatMessageFilter struct {
	Page  int
	Limit int
}
