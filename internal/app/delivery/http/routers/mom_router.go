package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMomRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	vaccinationController *controllers.VaccinationController,
	clinicVisitRequestController *controllers.ClinicVisitRequestController,
	providerController *controllers.ProviderController,
	medicalReportController *controllers.MedicalReportController,
) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)

	router.Route("/vaccinations", func(r chi.Router) {
		r.Get("/", vaccinationController.FindAll)
		r.Post("/initialize", vaccinationController.Initialize)
		r.Post("/request-appointment", vaccinationController.RequestAppointment)
		r.Patch("/{id}/complete", vaccinationController.MarkCompleted)
	})

	router.Route("/clinic-visit-requests", func(r chi.Router) {
		r.Get("/", clinicVisitRequestController.FindMine)
		r.Post("/", clinicVisitRequestController.Create)
		r.Get("/{id}", clinicVisitRequestController.FindByID)
		r.Put("/{id}", clinicVisitRequestController.Update)
		r.Patch("/{id}/cancel", clinicVisitRequestController.Cancel)
	})

	router.Get("/midwife", providerController.FindMyMidwife)
	router.Get("/medical-records", medicalReportController.FindMine)
}
