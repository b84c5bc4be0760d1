package requests

import "time"

// Notification is delivered to connected websocket clients and published to
// the notification queue for offline delivery.
type Notification struct {
	Type           string      `json:"type"`
	RecipientIDs   []string    `json:"recipientIds,omitempty"`
	RecipientRoles []string    `json:"recipientRoles,omitempty"`
	Title          string      `json:"title"`
	Message        string      `json:"message"`
	Data           interface{} `json:"data,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}
