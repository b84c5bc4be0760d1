package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)

	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
