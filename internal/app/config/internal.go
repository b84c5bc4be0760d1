package config

type InternalConfig struct {
	App         App
	JWT         AppJWT
	Mailer      AppMailer
	Minio       AppMinio
	RabbitMQ    AppRabbitMQ
	Vaccination AppVaccination
	Admin       AppAdmin
	RBAC        AppRBAC
}

type App struct {
	Env                                      string
	Port                                     string
	Version                                  string
	Timezone                                 string
	EndpointPrefix                           string
	ResetPasswordUrl                         string
	CORSAllowedOrigins                       []string
	MaxRequests                              int
	ShutdownTimeoutInSeconds                 int
	LoginSessionExpiredTimeInHours           int
	ForgotPasswordTokenExpiredTimeInMinutes  int
	ForgotPasswordMaxRequestsPerHour         int
	MinioPreSignedUrlObjectExpiryTimeInHours int
	LoginRateLimitPerMinute                  int
	LoginRateLimitBlockTimeInMinutes         int
	ProductCategoriesCacheTTLInMinutes       int
}

type AppJWT struct {
	Secret string
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	MailerQueue       string
	NotificationQueue string
}

// AppVaccination configures the sweeper that marks overdue records as missed.
type AppVaccination struct {
	// SweeperCronSpec is a robfig/cron expression, falls back to @daily when invalid
	SweeperCronSpec string
	// MissedGraceDays is how long a pending record may stay past its due date
	MissedGraceDays int
}

// AppAdmin holds the single admin credential checked by the admin login.
type AppAdmin struct {
	Email    string
	Password string
}

// AppRBAC points at the casbin model and role/method/path policy files.
type AppRBAC struct {
	ModelPath  string
	PolicyPath string
}
