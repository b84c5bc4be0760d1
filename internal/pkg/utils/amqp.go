package utils

import (
	"mommycare-service/internal/pkg/constvars"

	"github.com/rabbitmq/amqp091-go"
)

// BuildJSONPublishing wraps a JSON body into a persistent message with the
// headers the queue consumers expect.
func BuildJSONPublishing(body []byte, extraHeaders amqp091.Table) amqp091.Publishing {
	headers := amqp091.Table{
		constvars.AMQPHeaderMessageType: constvars.MessageTypeJSON,
		constvars.AMQPHeaderRequeue:     constvars.RequeueStrategyDrop,
	}
	for key, value := range extraHeaders {
		headers[key] = value
	}

	return amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     constvars.AMQPDefaultPriority,
		Headers:      headers,
	}
}
