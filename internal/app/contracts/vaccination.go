package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"time"
)

type VaccinationUsecase interface {
	Initialize(ctx context.Context, sessionData string, request *requests.InitializeVaccinations) ([]responses.VaccinationRecord, error)
	FindAll(ctx context.Context, sessionData string) ([]responses.VaccinationRecord, error)
	RequestAppointment(ctx context.Context, sessionData string, request *requests.VaccinationAppointment) (*responses.VaccinationAppointment, error)
	MarkCompleted(ctx context.Context, sessionData, recordID string, request *requests.CompleteVaccination) (*responses.VaccinationRecord, error)
	MarkOverdueAsMissed(ctx context.Context, now time.Time) (int64, error)
}

type VaccinationRepository interface {
	InsertMany(ctx context.Context, records []models.VaccinationRecord) ([]models.VaccinationRecord, error)
	CountByMotherID(ctx context.Context, motherID string) (int64, error)
	FindByMotherID(ctx context.Context, motherID string) ([]models.VaccinationRecord, error)
	FindByMotherIDAndVaccineName(ctx context.Context, motherID, vaccineName string) (*models.VaccinationRecord, error)
	FindByIDAndMotherID(ctx context.Context, recordID, motherID string) (*models.VaccinationRecord, error)
	LinkClinicVisitRequest(ctx context.Context, recordID, clinicVisitRequestID string) error
	Complete(ctx context.Context, entity *models.VaccinationRecord) error
	MarkOverdueAsMissed(ctx context.Context, dueBefore time.Time) (int64, error)
}
