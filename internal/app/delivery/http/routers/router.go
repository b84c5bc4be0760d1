package routers

import (
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"
	"mommycare-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	vaccinationController *controllers.VaccinationController,
	clinicVisitRequestController *controllers.ClinicVisitRequestController,
	providerController *controllers.ProviderController,
	productController *controllers.ProductController,
	chatController *controllers.ChatController,
	medicalReportController *controllers.MedicalReportController,
	notificationController *controllers.NotificationController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.CORSAllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	loginLimiter := middlewares.NewLoginRateLimiter()

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get("/health", healthController.Check)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, loginLimiter, authController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, loginLimiter, authController, providerController, productController)
		})

		r.Route("/mom", func(r chi.Router) {
			attachMomRoutes(r, middlewares, vaccinationController, clinicVisitRequestController, providerController, medicalReportController)
		})

		r.Route("/clinic", func(r chi.Router) {
			attachClinicRoutes(r, middlewares, clinicVisitRequestController)
		})

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, medicalReportController)
		})

		r.Route("/chat", func(r chi.Router) {
			attachChatRoutes(r, middlewares, providerController, chatController)
		})

		r.Route("/products", func(r chi.Router) {
			attachProductRoutes(r, productController)
		})

		r.Route("/service-provider", func(r chi.Router) {
			attachServiceProviderRoutes(r, middlewares, productController)
		})

		r.Route("/ws", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, notificationController)
		})
	})
}
