package providers

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type providerUsecase struct {
	UserRepository              contracts.UserRepository
	MidwifeAssignmentRepository contracts.MidwifeAssignmentRepository
	NotificationService         contracts.NotificationService
	SessionService              contracts.SessionService
	Log                         *zap.Logger
}

func NewProviderUsecase(
	userRepository contracts.UserRepository,
	midwifeAssignmentRepository contracts.MidwifeAssignmentRepository,
	notificationService contracts.NotificationService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		UserRepository:              userRepository,
		MidwifeAssignmentRepository: midwifeAssignmentRepository,
		NotificationService:         notificationService,
		SessionService:              sessionService,
		Log:                         logger,
	}
}

// FindProviders lists the chat partners available to the caller. Moms see
// every active doctor plus their own assigned midwife; doctors and midwives
// see each other.
func (uc *providerUsecase) FindProviders(ctx context.Context, sessionData, roleFilter string) ([]responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.FindProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, roleFilter),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	roleFilter = strings.ToLower(strings.TrimSpace(roleFilter))
	if roleFilter != constvars.RoleDoctor && roleFilter != constvars.RoleMidwife {
		roleFilter = ""
	}

	var providers []responses.Provider
	switch session.Role {
	case constvars.RoleMom:
		providers, err = uc.findProvidersForMom(ctx, session.UserID, roleFilter)
	case constvars.RoleDoctor, constvars.RoleMidwife:
		providers, err = uc.findProvidersForStaff(ctx, session.UserID, roleFilter)
	default:
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role)
	}
	if err != nil {
		uc.Log.Error("providerUsecase.FindProviders error resolving providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return strings.ToLower(providers[i].Name) < strings.ToLower(providers[j].Name)
	})

	uc.Log.Info("providerUsecase.FindProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProviderCountKey, len(providers)),
	)
	return providers, nil
}

func (uc *providerUsecase) FindMyMidwife(ctx context.Context, sessionData string) (*responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.FindMyMidwife called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	midwife, err := uc.findAssignedMidwife(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if midwife == nil {
		return nil, exceptions.ErrMidwifeNotAssigned(nil)
	}

	provider := midwife.ConvertIntoProviderResponse(true)
	return &provider, nil
}

// AssignMidwife replaces the mom's active assignment, so each mom has at most
// one active midwife.
func (uc *providerUsecase) AssignMidwife(ctx context.Context, sessionData string, request *requests.AssignMidwife) (*responses.MidwifeAssignment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.AssignMidwife called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMidwifeIDKey, request.MidwifeID),
		zap.String(constvars.LoggingMomIDKey, request.MomID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	midwife, err := uc.UserRepository.FindByID(ctx, request.MidwifeID)
	if err != nil {
		return nil, err
	}
	if midwife == nil || midwife.Role != constvars.RoleMidwife || !midwife.IsActive {
		return nil, exceptions.ErrMidwifeNotFound(nil)
	}

	mom, err := uc.UserRepository.FindByID(ctx, request.MomID)
	if err != nil {
		return nil, err
	}
	if mom == nil || mom.Role != constvars.RoleMom || !mom.IsActive {
		return nil, exceptions.ErrMomNotFound(nil)
	}

	deactivated, err := uc.MidwifeAssignmentRepository.DeactivateByMomID(ctx, request.MomID)
	if err != nil {
		uc.Log.Error("providerUsecase.AssignMidwife error calling MidwifeAssignmentRepository.DeactivateByMomID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	assignment := &models.MidwifeAssignment{
		MidwifeID:    request.MidwifeID,
		MomID:        request.MomID,
		AssignedBy:   session.UserID,
		Status:       constvars.MidwifeAssignmentStatusActive,
		Notes:        request.Notes,
		AssignedDate: time.Now().UTC(),
	}
	assignment.SetCreatedAtUpdatedAt()

	_, err = uc.MidwifeAssignmentRepository.Create(ctx, assignment)
	if err != nil {
		uc.Log.Error("providerUsecase.AssignMidwife error calling MidwifeAssignmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := assignment.ConvertIntoResponse()
	err = uc.NotificationService.Notify(ctx, &requests.Notification{
		Type:         constvars.NotificationMidwifeAssigned,
		RecipientIDs: []string{request.MidwifeID, request.MomID},
		Title:        "Midwife assigned",
		Message:      fmt.Sprintf("%s is now the assigned midwife of %s", midwife.FullName(), mom.FullName()),
		Data:         response,
	})
	if err != nil {
		uc.Log.Warn("providerUsecase.AssignMidwife error calling NotificationService.Notify",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("providerUsecase.AssignMidwife succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAffectedCountKey, deactivated),
	)
	return &response, nil
}

func (uc *providerUsecase) findProvidersForMom(ctx context.Context, momID, roleFilter string) ([]responses.Provider, error) {
	providers := make([]responses.Provider, 0)

	if roleFilter != constvars.RoleMidwife {
		doctors, err := uc.UserRepository.FindActiveByRoles(ctx, []string{constvars.RoleDoctor})
		if err != nil {
			return nil, err
		}
		for i := range doctors {
			providers = append(providers, doctors[i].ConvertIntoProviderResponse(false))
		}
	}

	if roleFilter != constvars.RoleDoctor {
		midwife, err := uc.findAssignedMidwife(ctx, momID)
		if err != nil {
			return nil, err
		}
		if midwife != nil {
			providers = append(providers, midwife.ConvertIntoProviderResponse(true))
		}
	}

	return providers, nil
}

func (uc *providerUsecase) findProvidersForStaff(ctx context.Context, callerID, roleFilter string) ([]responses.Provider, error) {
	roles := []string{constvars.RoleDoctor, constvars.RoleMidwife}
	if roleFilter != "" {
		roles = []string{roleFilter}
	}

	users, err := uc.UserRepository.FindActiveByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	providers := make([]responses.Provider, 0, len(users))
	for i := range users {
		if users[i].ID.Hex() == callerID {
			continue
		}
		providers = append(providers, users[i].ConvertIntoProviderResponse(false))
	}
	return providers, nil
}

// findAssignedMidwife returns nil when the mom has no active assignment or the
// assigned midwife is no longer active.
func (uc *providerUsecase) findAssignedMidwife(ctx context.Context, momID string) (*models.User, error) {
	assignment, err := uc.MidwifeAssignmentRepository.FindActiveByMomID(ctx, momID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}

	midwife, err := uc.UserRepository.FindByID(ctx, assignment.MidwifeID)
	if err != nil {
		return nil, err
	}
	if midwife == nil || !midwife.IsActive || midwife.Role != constvars.RoleMidwife {
		return nil, nil
	}
	return midwife, nil
}
