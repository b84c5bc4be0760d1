package medicalReports

import (
	"context"
	"errors"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	doctorSessionData = `{"session_id":"s1","user_id":"doc-1","role":"doctor"}`
	momSessionData    = `{"session_id":"s2","user_id":"mom-1","role":"mom"}`
)

type medicalReportFixture struct {
	repo                *mocks.MockMedicalReportRepository
	userRepo            *mocks.MockUserRepository
	notificationService *mocks.MockNotificationService
	sessionService      *mocks.MockSessionService
	usecase             *medicalReportUsecase
}

func newMedicalReportFixture() *medicalReportFixture {
	f := &medicalReportFixture{
		repo:                new(mocks.MockMedicalReportRepository),
		userRepo:            new(mocks.MockUserRepository),
		notificationService: new(mocks.MockNotificationService),
		sessionService:      new(mocks.MockSessionService),
	}
	f.sessionService.On("ParseSessionData", mock.Anything, doctorSessionData).
		Return(&models.Session{UserID: "doc-1", Role: constvars.RoleDoctor}, nil)
	f.sessionService.On("ParseSessionData", mock.Anything, momSessionData).
		Return(&models.Session{UserID: "mom-1", Role: constvars.RoleMom}, nil)
	f.usecase = NewMedicalReportUsecase(f.repo, f.userRepo, f.notificationService, f.sessionService, zap.NewNop()).(*medicalReportUsecase)
	return f
}

func statusCodeOf(err error) int {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}

func reportContent() *requests.MedicalReportContent {
	return &requests.MedicalReportContent{
		Visit:     requests.MedicalReportVisit{Date: "2026-10-01", ReasonForVisit: "Routine prenatal check"},
		Diagnosis: requests.MedicalReportDiagnosis{Primary: "Healthy pregnancy", Severity: "mild"},
	}
}

func authoredReport(doctorID string) *models.MedicalReport {
	return &models.MedicalReport{
		ID:                   primitive.NewObjectID(),
		PatientID:            "mom-1",
		PatientName:          "Siti Aminah",
		DoctorID:             doctorID,
		MedicalReportContent: *reportContent(),
	}
}

func TestMedicalReportUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshots Names And Notifies Patient", func(t *testing.T) {
		f := newMedicalReportFixture()
		f.userRepo.On("FindByID", ctx, "mom-1").
			Return(&models.User{FirstName: "Siti", LastName: "Aminah", Role: constvars.RoleMom, IsActive: true}, nil)
		f.userRepo.On("FindByID", ctx, "doc-1").
			Return(&models.User{FirstName: "Budi", LastName: "Santoso", Role: constvars.RoleDoctor, IsActive: true}, nil)
		f.repo.On("Create", ctx, mock.MatchedBy(func(entity *models.MedicalReport) bool {
			return entity.PatientName == "Siti Aminah" &&
				entity.DoctorName == "Budi Santoso" &&
				entity.DoctorSpecialty == constvars.SpecialtyGeneralMedicine &&
				entity.LabResults != nil && entity.Treatment.Medications != nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.MedicalReport).ID = primitive.NewObjectID()
		}).Return("ignored", nil)
		f.notificationService.On("Notify", ctx, mock.MatchedBy(func(notification *requests.Notification) bool {
			return notification.Type == constvars.NotificationMedicalReportCreated && notification.RecipientIDs[0] == "mom-1"
		})).Return(nil)

		result, err := f.usecase.Create(ctx, doctorSessionData, "mom-1", reportContent())

		assert.NoError(t, err)
		assert.Equal(t, "doc-1", result.DoctorID)
		assert.Equal(t, "Healthy pregnancy", result.Diagnosis.Primary)
		assert.Empty(t, result.AdditionalFields)
		f.repo.AssertExpectations(t)
		f.notificationService.AssertExpectations(t)
	})

	t.Run("Patient Must Be Active Mom", func(t *testing.T) {
		f := newMedicalReportFixture()
		f.userRepo.On("FindByID", ctx, "mid-1").
			Return(&models.User{Role: constvars.RoleMidwife, IsActive: true}, nil)

		_, err := f.usecase.Create(ctx, doctorSessionData, "mid-1", reportContent())

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Moms Cannot Author Reports", func(t *testing.T) {
		f := newMedicalReportFixture()

		_, err := f.usecase.Create(ctx, momSessionData, "mom-1", reportContent())

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
	})
}

func TestMedicalReportUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Author Replaces Content", func(t *testing.T) {
		f := newMedicalReportFixture()
		report := authoredReport("doc-1")
		reportID := report.ID.Hex()
		f.repo.On("FindByID", ctx, reportID).Return(report, nil)
		f.repo.On("UpdateContent", ctx, mock.MatchedBy(func(entity *models.MedicalReport) bool {
			return entity.Diagnosis.Primary == "Gestational diabetes" && entity.PatientName == "Siti Aminah"
		})).Return(nil)

		content := reportContent()
		content.Diagnosis.Primary = "Gestational diabetes"
		result, err := f.usecase.Update(ctx, doctorSessionData, reportID, content)

		assert.NoError(t, err)
		assert.Equal(t, "Gestational diabetes", result.Diagnosis.Primary)
		assert.WithinDuration(t, time.Now().UTC(), result.UpdatedAt, time.Minute)
	})

	t.Run("Other Doctor Is Forbidden", func(t *testing.T) {
		f := newMedicalReportFixture()
		report := authoredReport("doc-2")
		f.repo.On("FindByID", ctx, report.ID.Hex()).Return(report, nil)

		_, err := f.usecase.Update(ctx, doctorSessionData, report.ID.Hex(), reportContent())

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
		f.repo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
	})

	t.Run("Missing Report", func(t *testing.T) {
		f := newMedicalReportFixture()
		f.repo.On("FindByID", ctx, "gone").Return(nil, nil)

		_, err := f.usecase.Update(ctx, doctorSessionData, "gone", reportContent())

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestMedicalReportUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Author Deletes", func(t *testing.T) {
		f := newMedicalReportFixture()
		report := authoredReport("doc-1")
		f.repo.On("FindByID", ctx, report.ID.Hex()).Return(report, nil)
		f.repo.On("DeleteByDoctor", ctx, report.ID.Hex(), "doc-1").Return(nil)

		err := f.usecase.Delete(ctx, doctorSessionData, report.ID.Hex())

		assert.NoError(t, err)
		f.repo.AssertExpectations(t)
	})

	t.Run("Deleted Concurrently Is Not Found", func(t *testing.T) {
		f := newMedicalReportFixture()
		report := authoredReport("doc-1")
		f.repo.On("FindByID", ctx, report.ID.Hex()).Return(report, nil)
		f.repo.On("DeleteByDoctor", ctx, report.ID.Hex(), "doc-1").Return(exceptions.ErrMedicalReportNotFound(nil))

		err := f.usecase.Delete(ctx, doctorSessionData, report.ID.Hex())

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestMedicalReportUsecase_FindByPatient(t *testing.T) {
	ctx := context.Background()
	f := newMedicalReportFixture()
	f.repo.On("FindByDoctorAndPatient", ctx, "doc-1", "mom-1").
		Return([]models.MedicalReport{*authoredReport("doc-1"), *authoredReport("doc-1")}, nil)

	result, err := f.usecase.FindByPatient(ctx, doctorSessionData, "mom-1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestMedicalReportUsecase_FindMine(t *testing.T) {
	ctx := context.Background()

	t.Run("Mom Sees Reports From Every Doctor", func(t *testing.T) {
		f := newMedicalReportFixture()
		f.repo.On("FindByPatient", ctx, "mom-1").
			Return([]models.MedicalReport{*authoredReport("doc-1"), *authoredReport("doc-2")}, nil)

		result, err := f.usecase.FindMine(ctx, momSessionData)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Doctor Has No Own Reports", func(t *testing.T) {
		f := newMedicalReportFixture()

		_, err := f.usecase.FindMine(ctx, doctorSessionData)

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
	})
}

func TestMedicalReportUsecase_FindReportedPatients(t *testing.T) {
	ctx := context.Background()
	f := newMedicalReportFixture()
	f.repo.On("SummarizePatientsByDoctor", ctx, "doc-1").Return([]models.ReportedPatientSummary{
		{PatientID: "mom-1", PatientName: "Siti Aminah", ReportCount: 3},
	}, nil)

	result, err := f.usecase.FindReportedPatients(ctx, doctorSessionData)

	assert.NoError(t, err)
	assert.Equal(t, "mom-1", result[0].ID)
	assert.Equal(t, int64(3), result[0].ReportCount)
}
