package logger

import (
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the standard logrus logger used for process
// lifecycle messages.
func InitLogrus(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case constvars.EnvironmentProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
