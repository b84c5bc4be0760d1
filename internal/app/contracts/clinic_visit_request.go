package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
)

type ClinicVisitRequestUsecase interface {
	Create(ctx context.Context, sessionData string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error)
	CreateForRequester(ctx context.Context, requesterID string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error)
	FindAllByRequester(ctx context.Context, sessionData string, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error)
	FindByID(ctx context.Context, sessionData, requestID string) (*responses.ClinicVisitRequest, error)
	Update(ctx context.Context, sessionData, requestID string, request *requests.UpdateClinicVisitRequest) (*responses.ClinicVisitRequest, error)
	Cancel(ctx context.Context, sessionData, requestID string) (*responses.ClinicVisitRequest, error)
	CancelForRequester(ctx context.Context, requesterID, requestID string) (*responses.ClinicVisitRequest, error)
	FindAll(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error)
	Review(ctx context.Context, sessionData, requestID string, request *requests.ReviewClinicVisitRequest) (*responses.ClinicVisitRequest, error)
}

type ClinicVisitRequestRepository interface {
	Create(ctx context.Context, entity *models.ClinicVisitRequest) (string, error)
	FindByID(ctx context.Context, requestID string) (*models.ClinicVisitRequest, error)
	FindByFilter(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]models.ClinicVisitRequest, error)
	UpdatePending(ctx context.Context, entity *models.ClinicVisitRequest) error
}
