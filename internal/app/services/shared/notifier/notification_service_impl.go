package notifier

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the subset of *amqp091.Channel used to fan notifications out.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notificationService struct {
	Hub       contracts.NotificationHub
	Publisher Publisher
	Queue     string
	Log       *zap.Logger
}

func NewNotificationService(logger *zap.Logger, hub contracts.NotificationHub, publisher Publisher, queue string) contracts.NotificationService {
	return &notificationService{
		Hub:       hub,
		Publisher: publisher,
		Queue:     queue,
		Log:       logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, notification *requests.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.Notify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationTypeKey, notification.Type),
	)

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	delivered := s.Hub.Deliver(notification, payload)

	err = s.Publisher.PublishWithContext(
		ctx,
		constvars.AMQPDefaultExchange,
		s.Queue,
		constvars.AMQPMandatoryPublish,
		constvars.AMQPImmediatePublish,
		utils.BuildJSONPublishing(payload, amqp091.Table{constvars.AMQPHeaderEventType: notification.Type}),
	)
	if err != nil {
		s.Log.Error("notificationService.Notify error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notificationService.Notify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationTypeKey, notification.Type),
		zap.Int(constvars.LoggingClientCountKey, delivered),
	)
	return nil
}
