package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicVisitRequestController *controllers.ClinicVisitRequestController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)

	router.Get("/visit-requests", clinicVisitRequestController.FindAll)
	router.Patch("/visit-requests/{id}/review", clinicVisitRequestController.Review)
}
