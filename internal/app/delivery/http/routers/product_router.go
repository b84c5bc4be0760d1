package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProductRoutes(router chi.Router, productController *controllers.ProductController) {
	router.Get("/", productController.FindActive)
	router.Get("/categories", productController.FindCategories)
	router.Get("/{id}", productController.FindByID)
	router.Post("/{id}/click", productController.TrackClick)
}

func attachServiceProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, productController *controllers.ProductController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)

	router.Get("/products", productController.FindMyProducts)
	router.Post("/products", productController.CreateProduct)
	router.Put("/products/{id}", productController.UpdateProduct)
	router.Delete("/products/{id}", productController.DeleteProduct)
}
