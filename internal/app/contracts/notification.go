package contracts

import (
	"context"
	"mommycare-service/internal/pkg/dto/requests"
)

// NotificationService delivers lifecycle events to connected users and to the
// notification queue.
type NotificationService interface {
	Notify(ctx context.Context, notification *requests.Notification) error
}

// NotificationHub fans messages out to live websocket clients.
type NotificationHub interface {
	Deliver(notification *requests.Notification, payload []byte) int
	ClientCount() int
}
