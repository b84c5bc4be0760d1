package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	providerController *controllers.ProviderController,
	productController *controllers.ProductController,
) {
	router.With(loginLimiter.Limit).Post("/login", authController.AdminLogin)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Post("/midwife-assignments", providerController.AssignMidwife)
		r.Patch("/products/{id}/review", productController.ReviewProduct)
	})
}
