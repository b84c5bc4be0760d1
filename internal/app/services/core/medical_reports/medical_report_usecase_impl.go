package medicalReports

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type medicalReportUsecase struct {
	MedicalReportRepository contracts.MedicalReportRepository
	UserRepository          contracts.UserRepository
	NotificationService     contracts.NotificationService
	SessionService          contracts.SessionService
	Log                     *zap.Logger
}

func NewMedicalReportUsecase(
	medicalReportRepository contracts.MedicalReportRepository,
	userRepository contracts.UserRepository,
	notificationService contracts.NotificationService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.MedicalReportUsecase {
	return &medicalReportUsecase{
		MedicalReportRepository: medicalReportRepository,
		UserRepository:          userRepository,
		NotificationService:     notificationService,
		SessionService:          sessionService,
		Log:                     logger,
	}
}

func (uc *medicalReportUsecase) FindReportedPatients(ctx context.Context, sessionData string) ([]responses.ReportedPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalReportUsecase.FindReportedPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}

	summaries, err := uc.MedicalReportRepository.SummarizePatientsByDoctor(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.FindReportedPatients error calling MedicalReportRepository.SummarizePatientsByDoctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ReportedPatient, 0, len(summaries))
	for i := range summaries {
		response = append(response, summaries[i].ConvertIntoResponse())
	}
	return response, nil
}

// FindByPatient returns only the calling doctor's reports for the patient.
func (uc *medicalReportUsecase) FindByPatient(ctx context.Context, sessionData, patientID string) ([]responses.MedicalReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalReportUsecase.FindByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}

	reports, err := uc.MedicalReportRepository.FindByDoctorAndPatient(ctx, session.UserID, patientID)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.FindByPatient error calling MedicalReportRepository.FindByDoctorAndPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := convertReports(reports)
	uc.Log.Info("medicalReportUsecase.FindByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingReportCountKey, len(response)),
	)
	return response, nil
}

func (uc *medicalReportUsecase) FindMine(ctx context.Context, sessionData string) ([]responses.MedicalReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleMom)
	if err != nil {
		return nil, err
	}

	reports, err := uc.MedicalReportRepository.FindByPatient(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.FindMine error calling MedicalReportRepository.FindByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return convertReports(reports), nil
}

// Create files a report for an active mom and tells her it is available.
func (uc *medicalReportUsecase) Create(ctx context.Context, sessionData, patientID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalReportUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}

	patient, err := uc.UserRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || !patient.IsActive || patient.Role != constvars.RoleMom {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	doctor, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	report := &models.MedicalReport{
		PatientID:            patientID,
		PatientName:          patient.FullName(),
		DoctorID:             session.UserID,
		DoctorName:           doctor.FullName(),
		DoctorSpecialty:      doctor.ProviderSpecialty(),
		MedicalReportContent: normalizeContent(*request),
	}
	report.SetCreatedAtUpdatedAt()

	_, err = uc.MedicalReportRepository.Create(ctx, report)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.Create error calling MedicalReportRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := report.ConvertIntoResponse()
	err = uc.NotificationService.Notify(ctx, &requests.Notification{
		Type:         constvars.NotificationMedicalReportCreated,
		RecipientIDs: []string{patientID},
		Title:        "New medical report",
		Message:      fmt.Sprintf("%s added a report for your visit on %s", doctor.FullName(), report.Visit.Date),
		Data: map[string]string{
			"id":       response.ID,
			"doctorId": report.DoctorID,
		},
	})
	if err != nil {
		uc.Log.Warn("medicalReportUsecase.Create error calling NotificationService.Notify",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("medicalReportUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicalReportIDKey, response.ID),
	)
	return &response, nil
}

func (uc *medicalReportUsecase) Update(ctx context.Context, sessionData, reportID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalReportUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicalReportIDKey, reportID),
	)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}

	report, err := uc.findAuthored(ctx, reportID, session.UserID)
	if err != nil {
		return nil, err
	}

	report.MedicalReportContent = normalizeContent(*request)
	report.SetUpdatedAt()

	err = uc.MedicalReportRepository.UpdateContent(ctx, report)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.Update error calling MedicalReportRepository.UpdateContent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := report.ConvertIntoResponse()
	uc.Log.Info("medicalReportUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *medicalReportUsecase) Delete(ctx context.Context, sessionData, reportID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalReportUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicalReportIDKey, reportID),
	)

	session, err := uc.parseSessionForRole(ctx, sessionData, constvars.RoleDoctor)
	if err != nil {
		return err
	}

	_, err = uc.findAuthored(ctx, reportID, session.UserID)
	if err != nil {
		return err
	}

	err = uc.MedicalReportRepository.DeleteByDoctor(ctx, reportID, session.UserID)
	if err != nil {
		uc.Log.Error("medicalReportUsecase.Delete error calling MedicalReportRepository.DeleteByDoctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *medicalReportUsecase) parseSessionForRole(ctx context.Context, sessionData, role string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != role {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role)
	}
	return session, nil
}

// findAuthored returns 404 for a missing report and 403 for another doctor's.
func (uc *medicalReportUsecase) findAuthored(ctx context.Context, reportID, doctorID string) (*models.MedicalReport, error) {
	report, err := uc.MedicalReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrMedicalReportNotFound(nil)
	}
	if report.DoctorID != doctorID {
		return nil, exceptions.ErrMedicalReportNotOwned(nil)
	}
	return report, nil
}

// normalizeContent keeps list sections as empty arrays rather than null in
// stored documents and responses.
func normalizeContent(content requests.MedicalReportContent) requests.MedicalReportContent {
	if content.Treatment.Medications == nil {
		content.Treatment.Medications = []requests.MedicalReportMedication{}
	}
	if content.LabResults == nil {
		content.LabResults = []requests.MedicalReportLabResult{}
	}
	if content.AdditionalFields == nil {
		content.AdditionalFields = []requests.MedicalReportAdditionalField{}
	}
	return content
}

func convertReports(reports []models.MedicalReport) []responses.MedicalReport {
	response := make([]responses.MedicalReport, 0, len(reports))
	for i := range reports {
		response = append(response, reports[i].ConvertIntoResponse())
	}
	return response
}
