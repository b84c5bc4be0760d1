package clinicVisitRequests

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

var staffRoles = []string{constvars.RoleDoctor, constvars.RoleMidwife, constvars.RoleAdmin}

type clinicVisitRequestUsecase struct {
	ClinicVisitRequestRepository contracts.ClinicVisitRequestRepository
	NotificationService          contracts.NotificationService
	SessionService               contracts.SessionService
	Log                          *zap.Logger
}

func NewClinicVisitRequestUsecase(
	clinicVisitRequestRepository contracts.ClinicVisitRequestRepository,
	notificationService contracts.NotificationService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ClinicVisitRequestUsecase {
	return &clinicVisitRequestUsecase{
		ClinicVisitRequestRepository: clinicVisitRequestRepository,
		NotificationService:          notificationService,
		SessionService:               sessionService,
		Log:                          logger,
	}
}

func (uc *clinicVisitRequestUsecase) Create(ctx context.Context, sessionData string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.CreateForRequester(ctx, session.UserID, request)
}

func (uc *clinicVisitRequestUsecase) CreateForRequester(ctx context.Context, requesterID string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.CreateForRequester called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, requesterID),
		zap.String(constvars.LoggingRequestTypeKey, request.RequestType),
	)

	clinicVisitRequest := &models.ClinicVisitRequest{
		RequesterID: requesterID,
		RequestType: request.RequestType,
		Payload: models.ClinicVisitRequestPayload{
			Vaccine:       request.Vaccine,
			PreferredDate: request.PreferredDate,
			PreferredTime: request.PreferredTime,
			Location:      request.Location,
			Notes:         request.Notes,
		},
		Status: constvars.ClinicVisitRequestStatusPending,
	}
	clinicVisitRequest.SetCreatedAtUpdatedAt()

	_, err := uc.ClinicVisitRequestRepository.Create(ctx, clinicVisitRequest)
	if err != nil {
		uc.Log.Error("clinicVisitRequestUsecase.CreateForRequester error calling ClinicVisitRequestRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := clinicVisitRequest.ConvertIntoResponse()
	uc.notify(ctx, &requests.Notification{
		Type:           constvars.NotificationClinicVisitRequestCreated,
		RecipientRoles: staffRoles,
		Title:          "New clinic visit request",
		Message:        fmt.Sprintf("A new %s request is waiting for review", response.RequestType),
		Data:           response,
	})

	uc.Log.Info("clinicVisitRequestUsecase.CreateForRequester succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, response.ID),
	)
	return &response, nil
}

func (uc *clinicVisitRequestUsecase) FindAllByRequester(ctx context.Context, sessionData string, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.FindAllByRequester called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return uc.findByFilter(ctx, &requests.ClinicVisitRequestFilter{
		RequesterID: session.UserID,
		RequestType: filter.RequestType,
		Status:      filter.Status,
	})
}

func (uc *clinicVisitRequestUsecase) FindAll(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.findByFilter(ctx, &requests.ClinicVisitRequestFilter{
		RequestType: filter.RequestType,
		Status:      filter.Status,
	})
}

func (uc *clinicVisitRequestUsecase) FindByID(ctx context.Context, sessionData, clinicVisitRequestID string) (*responses.ClinicVisitRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	clinicVisitRequest, err := uc.findOwned(ctx, session.UserID, clinicVisitRequestID)
	if err != nil {
		return nil, err
	}

	response := clinicVisitRequest.ConvertIntoResponse()
	return &response, nil
}

func (uc *clinicVisitRequestUsecase) Update(ctx context.Context, sessionData, clinicVisitRequestID string, request *requests.UpdateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	clinicVisitRequest, err := uc.findOwned(ctx, session.UserID, clinicVisitRequestID)
	if err != nil {
		return nil, err
	}
	if !clinicVisitRequest.IsPending() {
		return nil, exceptions.ErrClinicVisitRequestNotPending(nil)
	}

	if request.PreferredDate != "" {
		clinicVisitRequest.Payload.PreferredDate = request.PreferredDate
	}
	if request.PreferredTime != "" {
		clinicVisitRequest.Payload.PreferredTime = request.PreferredTime
	}
	if request.Location != "" {
		clinicVisitRequest.Payload.Location = request.Location
	}
	if request.Notes != "" {
		clinicVisitRequest.Payload.Notes = request.Notes
	}
	clinicVisitRequest.SetUpdatedAt()

	err = uc.ClinicVisitRequestRepository.UpdatePending(ctx, clinicVisitRequest)
	if err != nil {
		uc.Log.Error("clinicVisitRequestUsecase.Update error calling ClinicVisitRequestRepository.UpdatePending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := clinicVisitRequest.ConvertIntoResponse()
	uc.notify(ctx, &requests.Notification{
		Type:           constvars.NotificationClinicVisitRequestUpdated,
		RecipientRoles: staffRoles,
		Title:          "Clinic visit request updated",
		Message:        fmt.Sprintf("A %s request was updated by the requester", response.RequestType),
		Data:           response,
	})
	return &response, nil
}

func (uc *clinicVisitRequestUsecase) Cancel(ctx context.Context, sessionData, clinicVisitRequestID string) (*responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.CancelForRequester(ctx, session.UserID, clinicVisitRequestID)
}

// CancelForRequester cancels a pending request owned by requesterID without a
// session. Vaccination appointments use it to roll back a request whose
// record could not be linked.
func (uc *clinicVisitRequestUsecase) CancelForRequester(ctx context.Context, requesterID, clinicVisitRequestID string) (*responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	clinicVisitRequest, err := uc.findOwned(ctx, requesterID, clinicVisitRequestID)
	if err != nil {
		return nil, err
	}
	if !clinicVisitRequest.IsPending() {
		return nil, exceptions.ErrClinicVisitRequestNotPending(nil)
	}

	clinicVisitRequest.Status = constvars.ClinicVisitRequestStatusCancelled
	clinicVisitRequest.SetUpdatedAt()

	err = uc.ClinicVisitRequestRepository.UpdatePending(ctx, clinicVisitRequest)
	if err != nil {
		uc.Log.Error("clinicVisitRequestUsecase.CancelForRequester error calling ClinicVisitRequestRepository.UpdatePending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := clinicVisitRequest.ConvertIntoResponse()
	uc.notify(ctx, &requests.Notification{
		Type:           constvars.NotificationClinicVisitRequestCancelled,
		RecipientRoles: staffRoles,
		Title:          "Clinic visit request cancelled",
		Message:        fmt.Sprintf("A %s request was cancelled by the requester", response.RequestType),
		Data:           response,
	})

	uc.Log.Info("clinicVisitRequestUsecase.CancelForRequester succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
	)
	return &response, nil
}

// Review moves a pending request into approved or rejected. Both are
// terminal, so reviewing twice is a conflict.
func (uc *clinicVisitRequestUsecase) Review(ctx context.Context, sessionData, clinicVisitRequestID string, request *requests.ReviewClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicVisitRequestUsecase.Review called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
		zap.String(constvars.LoggingRequestStatusKey, request.Status),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	clinicVisitRequest, err := uc.ClinicVisitRequestRepository.FindByID(ctx, clinicVisitRequestID)
	if err != nil {
		return nil, err
	}
	if clinicVisitRequest == nil {
		return nil, exceptions.ErrClinicVisitRequestNotFound(nil)
	}
	if !clinicVisitRequest.IsPending() {
		return nil, exceptions.ErrClinicVisitRequestFinalized(nil)
	}

	reviewedAt := time.Now().UTC()
	clinicVisitRequest.Status = request.Status
	clinicVisitRequest.StaffNotes = request.StaffNotes
	clinicVisitRequest.ReviewedBy = session.UserID
	clinicVisitRequest.ReviewedAt = &reviewedAt
	clinicVisitRequest.SetUpdatedAt()

	err = uc.ClinicVisitRequestRepository.UpdatePending(ctx, clinicVisitRequest)
	if err != nil {
		uc.Log.Error("clinicVisitRequestUsecase.Review error calling ClinicVisitRequestRepository.UpdatePending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := clinicVisitRequest.ConvertIntoResponse()
	uc.notify(ctx, &requests.Notification{
		Type:         constvars.NotificationClinicVisitRequestReviewed,
		RecipientIDs: []string{clinicVisitRequest.RequesterID},
		Title:        "Clinic visit request " + request.Status,
		Message:      fmt.Sprintf("Your %s request was %s", response.RequestType, request.Status),
		Data:         response,
	})

	uc.Log.Info("clinicVisitRequestUsecase.Review succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
	)
	return &response, nil
}

func (uc *clinicVisitRequestUsecase) findByFilter(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestType := filter.RequestType
	filter.RequestType = ""
	clinicVisitRequests, err := uc.ClinicVisitRequestRepository.FindByFilter(ctx, filter)
	if err != nil {
		uc.Log.Error("clinicVisitRequestUsecase.findByFilter error calling ClinicVisitRequestRepository.FindByFilter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	clinicVisitRequests = FilterByType(clinicVisitRequests, requestType)

	response := make([]responses.ClinicVisitRequest, 0, len(clinicVisitRequests))
	for _, clinicVisitRequest := range clinicVisitRequests {
		response = append(response, clinicVisitRequest.ConvertIntoResponse())
	}

	uc.Log.Info("clinicVisitRequestUsecase.findByFilter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRequestCountKey, len(response)),
	)
	return response, nil
}

func (uc *clinicVisitRequestUsecase) findOwned(ctx context.Context, requesterID, clinicVisitRequestID string) (*models.ClinicVisitRequest, error) {
	clinicVisitRequest, err := uc.ClinicVisitRequestRepository.FindByID(ctx, clinicVisitRequestID)
	if err != nil {
		return nil, err
	}
	if clinicVisitRequest == nil || clinicVisitRequest.RequesterID != requesterID {
		return nil, exceptions.ErrClinicVisitRequestNotFound(nil)
	}
	return clinicVisitRequest, nil
}

// notify never fails the caller; the request state is already persisted.
func (uc *clinicVisitRequestUsecase) notify(ctx context.Context, notification *requests.Notification) {
	err := uc.NotificationService.Notify(ctx, notification)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("clinicVisitRequestUsecase.notify error calling NotificationService.Notify",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTypeKey, notification.Type),
			zap.Error(err),
		)
	}
}
