package vaccinations

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type vaccinationUsecase struct {
	VaccinationRepository     contracts.VaccinationRepository
	ClinicVisitRequestUsecase contracts.ClinicVisitRequestUsecase
	SessionService            contracts.SessionService
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

func NewVaccinationUsecase(
	vaccinationRepository contracts.VaccinationRepository,
	clinicVisitRequestUsecase contracts.ClinicVisitRequestUsecase,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VaccinationUsecase {
	return &vaccinationUsecase{
		VaccinationRepository:     vaccinationRepository,
		ClinicVisitRequestUsecase: clinicVisitRequestUsecase,
		SessionService:            sessionService,
		InternalConfig:            internalConfig,
		Log:                       logger,
	}
}

func (uc *vaccinationUsecase) Initialize(ctx context.Context, sessionData string, request *requests.InitializeVaccinations) ([]responses.VaccinationRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.Initialize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	birthDate, err := utils.ParseDateOnly(request.BabyBirthDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if birthDate.After(utils.StartOfDayUTC(time.Now().UTC())) {
		return nil, exceptions.ErrBirthDateInFuture(nil)
	}

	existing, err := uc.VaccinationRepository.CountByMotherID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.Initialize error calling VaccinationRepository.CountByMotherID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing > 0 {
		return nil, exceptions.ErrVaccinationsAlreadyInitialized(nil)
	}

	records, err := uc.VaccinationRepository.InsertMany(ctx, buildScheduledRecords(session.UserID, birthDate))
	if err != nil {
		uc.Log.Error("vaccinationUsecase.Initialize error calling VaccinationRepository.InsertMany",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.VaccinationRecord, 0, len(records))
	for _, record := range records {
		response = append(response, record.ConvertIntoResponse())
	}

	uc.Log.Info("vaccinationUsecase.Initialize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMotherIDKey, session.UserID),
		zap.Int(constvars.LoggingVaccinationCountKey, len(response)),
	)
	return response, nil
}

func (uc *vaccinationUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.VaccinationRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	records, err := uc.VaccinationRepository.FindByMotherID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.FindAll error calling VaccinationRepository.FindByMotherID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.VaccinationRecord, 0, len(records))
	for _, record := range records {
		response = append(response, record.ConvertIntoResponse())
	}

	uc.Log.Info("vaccinationUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingVaccinationCountKey, len(response)),
	)
	return response, nil
}

func (uc *vaccinationUsecase) RequestAppointment(ctx context.Context, sessionData string, request *requests.VaccinationAppointment) (*responses.VaccinationAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.RequestAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccineNameKey, request.Vaccine),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	record, err := uc.VaccinationRepository.FindByMotherIDAndVaccineName(ctx, session.UserID, request.Vaccine)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.RequestAppointment error calling VaccinationRepository.FindByMotherIDAndVaccineName",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrVaccineNotInSchedule(nil, request.Vaccine)
	}
	if record.Status == constvars.VaccinationStatusCompleted {
		return nil, exceptions.ErrVaccinationAlreadyCompleted(nil)
	}

	notes := request.Notes
	if notes == "" {
		notes = fmt.Sprintf(constvars.VaccinationAppointmentDefaultNotes, record.VaccineName)
	}

	clinicVisitRequest, err := uc.ClinicVisitRequestUsecase.CreateForRequester(ctx, session.UserID, &requests.CreateClinicVisitRequest{
		RequestType:   constvars.RequestTypeVaccinations,
		Vaccine:       record.VaccineName,
		PreferredDate: request.PreferredDate,
		PreferredTime: request.PreferredTime,
		Location:      request.Location,
		Notes:         notes,
	})
	if err != nil {
		uc.Log.Error("vaccinationUsecase.RequestAppointment error calling ClinicVisitRequestUsecase.CreateForRequester",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.VaccinationRepository.LinkClinicVisitRequest(ctx, record.ID.Hex(), clinicVisitRequest.ID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.RequestAppointment error calling VaccinationRepository.LinkClinicVisitRequest",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.rollbackAppointment(ctx, session.UserID, clinicVisitRequest.ID)
		return nil, err
	}

	uc.Log.Info("vaccinationUsecase.RequestAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequest.ID),
	)
	return &responses.VaccinationAppointment{
		Request:          *clinicVisitRequest,
		RedirectTo:       constvars.VaccinationAppointmentRedirectTo,
		HighlightSection: constvars.VaccinationAppointmentHighlightSection,
		RequestType:      constvars.RequestTypeVaccinations,
		VaccineName:      record.VaccineName,
		AppointmentID:    clinicVisitRequest.ID,
	}, nil
}

// rollbackAppointment cancels a clinic visit request that was created for a
// record it could not be linked to. Failures are logged only.
func (uc *vaccinationUsecase) rollbackAppointment(ctx context.Context, motherID, clinicVisitRequestID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	_, err := uc.ClinicVisitRequestUsecase.CancelForRequester(ctx, motherID, clinicVisitRequestID)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.rollbackAppointment error calling ClinicVisitRequestUsecase.CancelForRequester",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicVisitRequestKey, clinicVisitRequestID),
			zap.Error(err),
		)
	}
}

func (uc *vaccinationUsecase) MarkCompleted(ctx context.Context, sessionData, recordID string, request *requests.CompleteVaccination) (*responses.VaccinationRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vaccinationUsecase.MarkCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, recordID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	record, err := uc.VaccinationRepository.FindByIDAndMotherID(ctx, recordID, session.UserID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrVaccinationRecordNotFound(nil)
	}
	if record.Status == constvars.VaccinationStatusCompleted {
		return nil, exceptions.ErrVaccinationAlreadyCompleted(nil)
	}

	vaccinationDate := utils.StartOfDayUTC(time.Now().UTC())
	if request.VaccinationDate != "" {
		vaccinationDate, err = utils.ParseDateOnly(request.VaccinationDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	record.Status = constvars.VaccinationStatusCompleted
	record.VaccinationDate = &vaccinationDate
	record.BatchNo = request.BatchNo
	record.AdverseEffects = request.AdverseEffects
	if request.Notes != "" {
		record.Notes = request.Notes
	}
	record.SetUpdatedAt()

	err = uc.VaccinationRepository.Complete(ctx, record)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.MarkCompleted error calling VaccinationRepository.Complete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := record.ConvertIntoResponse()
	uc.Log.Info("vaccinationUsecase.MarkCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, recordID),
	)
	return &response, nil
}

// MarkOverdueAsMissed flags pending records whose due date is older than the
// configured grace period relative to now.
func (uc *vaccinationUsecase) MarkOverdueAsMissed(ctx context.Context, now time.Time) (int64, error) {
	graceDays := uc.InternalConfig.Vaccination.MissedGraceDays
	if graceDays < 0 {
		graceDays = 0
	}
	dueBefore := utils.StartOfDayUTC(now).AddDate(0, 0, -graceDays)

	affected, err := uc.VaccinationRepository.MarkOverdueAsMissed(ctx, dueBefore)
	if err != nil {
		uc.Log.Error("vaccinationUsecase.MarkOverdueAsMissed error calling VaccinationRepository.MarkOverdueAsMissed",
			zap.Error(err),
		)
		return 0, err
	}

	uc.Log.Info("vaccinationUsecase.MarkOverdueAsMissed succeeded",
		zap.Time("due_before", dueBefore),
		zap.Int64(constvars.LoggingAffectedCountKey, affected),
	)
	return affected, nil
}
