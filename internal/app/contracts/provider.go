package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
)

type ProviderUsecase interface {
	FindProviders(ctx context.Context, sessionData, roleFilter string) ([]responses.Provider, error)
	FindMyMidwife(ctx context.Context, sessionData string) (*responses.Provider, error)
	AssignMidwife(ctx context.Context, sessionData string, request *requests.AssignMidwife) (*responses.MidwifeAssignment, error)
}

type MidwifeAssignmentRepository interface {
	Create(ctx context.Context, entity *models.MidwifeAssignment) (string, error)
	FindActiveByMomID(ctx context.Context, momID string) (*models.MidwifeAssignment, error)
	DeactivateByMomID(ctx context.Context, momID string) (int64, error)
}
