package main

import (
	"context"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"
	"mommycare-service/internal/app/delivery/http/routers"
	"mommycare-service/internal/app/drivers/database"
	"mommycare-service/internal/app/drivers/logger"
	"mommycare-service/internal/app/drivers/messaging"
	"mommycare-service/internal/app/drivers/rbac"
	"mommycare-service/internal/app/drivers/storage"
	"mommycare-service/internal/app/services/core/auth"
	"mommycare-service/internal/app/services/core/chats"
	clinicVisitRequests "mommycare-service/internal/app/services/core/clinic_visit_requests"
	medicalReports "mommycare-service/internal/app/services/core/medical_reports"
	midwifeAssignments "mommycare-service/internal/app/services/core/midwife_assignments"
	"mommycare-service/internal/app/services/core/products"
	"mommycare-service/internal/app/services/core/providers"
	"mommycare-service/internal/app/services/core/session"
	"mommycare-service/internal/app/services/core/users"
	"mommycare-service/internal/app/services/core/vaccinations"
	"mommycare-service/internal/app/services/shared/locker"
	"mommycare-service/internal/app/services/shared/mailer"
	"mommycare-service/internal/app/services/shared/notifier"
	"mommycare-service/internal/app/services/shared/ratelimiter"
	"mommycare-service/internal/app/services/shared/redis"
	minioStorage "mommycare-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureIndexes(indexCtx, mongoDB)
	cancelIndex()
	if err != nil {
		log.Fatal("Error creating mongo indexes", zap.Error(err))
	}

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	err = messaging.DeclareQueues(rabbitMQ, internalConfig.RabbitMQ.MailerQueue, internalConfig.RabbitMQ.NotificationQueue)
	if err != nil {
		log.Fatal("Error declaring rabbitmq queues", zap.Error(err))
	}
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Error releasing resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	sessionService := session.NewSessionService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, log)

	mailerService, err := mailer.NewMailerService(log, bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		return err
	}

	// Notifications
	hub := notifier.NewHub(log)
	go hub.Run()
	bootstrap.HubStop = hub.Stop

	notificationChannel, err := bootstrap.RabbitMQ.Channel()
	if err != nil {
		return err
	}
	notificationService := notifier.NewNotificationService(log, hub, notificationChannel, internalConfig.RabbitMQ.NotificationQueue)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, log)
	vaccinationRepository := vaccinations.NewVaccinationMongoRepository(bootstrap.MongoDB, log)
	clinicVisitRequestRepository := clinicVisitRequests.NewClinicVisitRequestMongoRepository(bootstrap.MongoDB, log)
	midwifeAssignmentRepository := midwifeAssignments.NewMidwifeAssignmentMongoRepository(bootstrap.MongoDB, log)
	productRepository := products.NewProductMongoRepository(bootstrap.MongoDB, log)
	conversationRepository := chats.NewConversationMongoRepository(bootstrap.MongoDB, log)
	chatMessageRepository := chats.NewChatMessageMongoRepository(bootstrap.MongoDB, log)
	medicalReportRepository := medicalReports.NewMedicalReportMongoRepository(bootstrap.MongoDB, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		redisRepository,
		sessionService,
		mailerService,
		resourceLimiter,
		internalConfig,
		log,
	)
	clinicVisitRequestUsecase := clinicVisitRequests.NewClinicVisitRequestUsecase(
		clinicVisitRequestRepository,
		notificationService,
		sessionService,
		log,
	)
	vaccinationUsecase := vaccinations.NewVaccinationUsecase(
		vaccinationRepository,
		clinicVisitRequestUsecase,
		sessionService,
		internalConfig,
		log,
	)
	providerUsecase := providers.NewProviderUsecase(
		userRepository,
		midwifeAssignmentRepository,
		notificationService,
		sessionService,
		log,
	)
	productUsecase := products.NewProductUsecase(
		productRepository,
		redisRepository,
		storageService,
		sessionService,
		internalConfig,
		log,
	)
	chatUsecase := chats.NewChatUsecase(
		conversationRepository,
		chatMessageRepository,
		userRepository,
		notificationService,
		sessionService,
		internalConfig,
		log,
	)
	medicalReportUsecase := medicalReports.NewMedicalReportUsecase(
		medicalReportRepository,
		userRepository,
		notificationService,
		sessionService,
		log,
	)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	err = authUsecase.EnsureAdmin(seedCtx, internalConfig.Admin.Email, internalConfig.Admin.Password)
	cancelSeed()
	if err != nil {
		return err
	}

	// Workers
	worker := vaccinations.NewWorker(log, internalConfig, lockerService, vaccinationUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Controllers
	healthChecks := map[string]controllers.HealthCheck{
		"mongodb": func(ctx context.Context) error {
			return bootstrap.MongoClient.Ping(ctx, readpref.Primary())
		},
		"redis": func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		},
	}

	authController := controllers.NewAuthController(log, authUsecase)
	vaccinationController := controllers.NewVaccinationController(log, vaccinationUsecase)
	clinicVisitRequestController := controllers.NewClinicVisitRequestController(log, clinicVisitRequestUsecase)
	providerController := controllers.NewProviderController(log, providerUsecase)
	productController := controllers.NewProductController(log, productUsecase)
	chatController := controllers.NewChatController(log, chatUsecase)
	medicalReportController := controllers.NewMedicalReportController(log, medicalReportUsecase)
	notificationController := controllers.NewNotificationController(log, hub, internalConfig)
	healthController := controllers.NewHealthController(log, internalConfig, healthChecks)

	enforcer := rbac.NewCasbinEnforcer(internalConfig)
	middlewares := middlewares.NewMiddlewares(log, sessionService, enforcer, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		vaccinationController,
		clinicVisitRequestController,
		providerController,
		productController,
		chatController,
		medicalReportController,
		notificationController,
		healthController,
	)

	return nil
}
