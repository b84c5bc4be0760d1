package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoClient    *mongo.Client
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to stop background workers
	WorkerStop func()
	// HubStop if set will be called during Shutdown to close websocket clients
	HubStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		logrus.Println("Successfully stopped vaccination worker")
	}

	if b.HubStop != nil {
		b.HubStop()
		logrus.Println("Successfully stopped notification hub")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing RabbitMQ")

	err = b.MongoClient.Disconnect(ctx)
	if err != nil {
		return err
	}
	logrus.Println("Successfully closing MongoDB")

	_ = b.Logger.Sync()
	logrus.Println("Successfully closing Logger")

	return nil
}
