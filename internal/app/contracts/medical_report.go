package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
)

type MedicalReportUsecase interface {
	FindReportedPatients(ctx context.Context, sessionData string) ([]responses.ReportedPatient, error)
	FindByPatient(ctx context.Context, sessionData, patientID string) ([]responses.MedicalReport, error)
	FindMine(ctx context.Context, sessionData string) ([]responses.MedicalReport, error)
	Create(ctx context.Context, sessionData, patientID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error)
	Update(ctx context.Context, sessionData, reportID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error)
	Delete(ctx context.Context, sessionData, reportID string) error
}

type MedicalReportRepository interface {
	Create(ctx context.Context, entity *models.MedicalReport) (string, error)
	FindByID(ctx context.Context, reportID string) (*models.MedicalReport, error)
	FindByDoctorAndPatient(ctx context.Context, doctorID, patientID string) ([]models.MedicalReport, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error)
	UpdateContent(ctx context.Context, entity *models.MedicalReport) error
	DeleteByDoctor(ctx context.Context, reportID, doctorID string) error
	SummarizePatientsByDoctor(ctx context.Context, doctorID string) ([]models.ReportedPatientSummary, error)
}
