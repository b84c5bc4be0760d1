package routers

import (
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalReportController *controllers.MedicalReportController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.Authorize)

	router.Route("/medical-records", func(r chi.Router) {
		r.Get("/patients", medicalReportController.FindReportedPatients)
		r.Get("/patients/{patientId}", medicalReportController.FindByPatient)
		r.Post("/patients/{patientId}", medicalReportController.Create)
		r.Put("/{id}", medicalReportController.Update)
		r.Delete("/{id}", medicalReportController.Delete)
	})
}
