package config

import (
	"mommycare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mommycare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", "development"),
			Port:                                     utils.GetEnvString("APP_PORT", ":5000"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			ResetPasswordUrl:                         utils.GetEnvString("APP_RESET_PASSWORD_URL", "http://localhost:3000/reset-password?token="),
			CORSAllowedOrigins:                       utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginSessionExpiredTimeInHours:           utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			ForgotPasswordTokenExpiredTimeInMinutes:  utils.GetEnvInt("APP_FORGOT_PASSWORD_TOKEN_EXPIRED_TIME_IN_MINUTES", 30),
			ForgotPasswordMaxRequestsPerHour:         utils.GetEnvInt("APP_FORGOT_PASSWORD_MAX_REQUESTS_PER_HOUR", 3),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
			LoginRateLimitPerMinute:                  utils.GetEnvInt("APP_LOGIN_RATE_LIMIT_PER_MINUTE", 10),
			LoginRateLimitBlockTimeInMinutes:         utils.GetEnvInt("APP_LOGIN_RATE_LIMIT_BLOCK_TIME_IN_MINUTES", 5),
			ProductCategoriesCacheTTLInMinutes:       utils.GetEnvInt("APP_PRODUCT_CATEGORIES_CACHE_TTL_IN_MINUTES", 5),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "mommycare-secret"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue:       utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "notifications"),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@mommycare.local"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "products"),
		},
		Vaccination: AppVaccination{
			SweeperCronSpec: utils.GetEnvString("VACCINATION_SWEEPER_CRON_SPEC", "@daily"),
			MissedGraceDays: utils.GetEnvInt("VACCINATION_MISSED_GRACE_DAYS", 30),
		},
		Admin: AppAdmin{
			Email:    utils.GetEnvString("ADMIN_EMAIL", "admin@mommycare.local"),
			Password: utils.GetEnvString("ADMIN_PASSWORD", ""),
		},
		RBAC: AppRBAC{
			ModelPath:  utils.GetEnvString("APP_RBAC_MODEL_PATH", "resources/rbac_model.conf"),
			PolicyPath: utils.GetEnvString("APP_RBAC_POLICY_PATH", "resources/rbac_policy.csv"),
		},
	}
}
