package mocks

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, entity *models.User) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByRoles(ctx context.Context, roles []string) ([]models.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

type MockVaccinationRepository struct {
	mock.Mock
}

func (m *MockVaccinationRepository) InsertMany(ctx context.Context, records []models.VaccinationRecord) ([]models.VaccinationRecord, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) CountByMotherID(ctx context.Context, motherID string) (int64, error) {
	args := m.Called(ctx, motherID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVaccinationRepository) FindByMotherID(ctx context.Context, motherID string) ([]models.VaccinationRecord, error) {
	args := m.Called(ctx, motherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) FindByMotherIDAndVaccineName(ctx context.Context, motherID, vaccineName string) (*models.VaccinationRecord, error) {
	args := m.Called(ctx, motherID, vaccineName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) FindByIDAndMotherID(ctx context.Context, recordID, motherID string) (*models.VaccinationRecord, error) {
	args := m.Called(ctx, recordID, motherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationRepository) LinkClinicVisitRequest(ctx context.Context, recordID, clinicVisitRequestID string) error {
	args := m.Called(ctx, recordID, clinicVisitRequestID)
	return args.Error(0)
}

func (m *MockVaccinationRepository) Complete(ctx context.Context, entity *models.VaccinationRecord) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockVaccinationRepository) MarkOverdueAsMissed(ctx context.Context, dueBefore time.Time) (int64, error) {
	args := m.Called(ctx, dueBefore)
	return args.Get(0).(int64), args.Error(1)
}

type MockClinicVisitRequestRepository struct {
	mock.Mock
}

func (m *MockClinicVisitRequestRepository) Create(ctx context.Context, entity *models.ClinicVisitRequest) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockClinicVisitRequestRepository) FindByID(ctx context.Context, requestID string) (*models.ClinicVisitRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestRepository) FindByFilter(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]models.ClinicVisitRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestRepository) UpdatePending(ctx context.Context, entity *models.ClinicVisitRequest) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

type MockMidwifeAssignmentRepository struct {
	mock.Mock
}

func (m *MockMidwifeAssignmentRepository) Create(ctx context.Context, entity *models.MidwifeAssignment) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockMidwifeAssignmentRepository) FindActiveByMomID(ctx context.Context, momID string) (*models.MidwifeAssignment, error) {
	args := m.Called(ctx, momID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MidwifeAssignment), args.Error(1)
}

func (m *MockMidwifeAssignmentRepository) DeactivateByMomID(ctx context.Context, momID string) (int64, error) {
	args := m.Called(ctx, momID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, entity *models.Product) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter *requests.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindByServiceProviderID(ctx context.Context, serviceProviderID string) ([]models.Product, error) {
	args := m.Called(ctx, serviceProviderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) CountActiveByCategory(ctx context.Context) ([]models.ProductCategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductCategoryCount), args.Error(1)
}

func (m *MockProductRepository) IncrementCounter(ctx context.Context, productID, counter string) (*models.Product, error) {
	args := m.Called(ctx, productID, counter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, entity *models.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) FindOrCreate(ctx context.Context, firstUserID, secondUserID string) (*models.Conversation, error) {
	args := m.Called(ctx, firstUserID, secondUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) UpdateLastMessage(ctx context.Context, conversationID string, lastMessage *models.ConversationLastMessage) error {
	args := m.Called(ctx, conversationID, lastMessage)
	return args.Error(0)
}

type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Create(ctx context.Context, entity *models.ChatMessage) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockChatMessageRepository) FindByID(ctx context.Context, messageID string) (*models.ChatMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockChatMessageRepository) FindByConversation(ctx context.Context, conversationID string, filter *requests.ChatMessageFilter) ([]models.ChatMessage, int64, error) {
	args := m.Called(ctx, conversationID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.ChatMessage), args.Get(1).(int64), args.Error(2)
}

func (m *MockChatMessageRepository) MarkRead(ctx context.Context, conversationID, recipientID string, readAt time.Time) (int64, error) {
	args := m.Called(ctx, conversationID, recipientID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatMessageRepository) DeleteBySender(ctx context.Context, messageID, senderID string) error {
	args := m.Called(ctx, messageID, senderID)
	return args.Error(0)
}

func (m *MockChatMessageRepository) CountUnreadByConversation(ctx context.Context, recipientID string) (map[string]int64, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockMedicalReportRepository struct {
	mock.Mock
}

func (m *MockMedicalReportRepository) Create(ctx context.Context, entity *models.MedicalReport) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockMedicalReportRepository) FindByID(ctx context.Context, reportID string) (*models.MedicalReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportRepository) FindByDoctorAndPatient(ctx context.Context, doctorID, patientID string) ([]models.MedicalReport, error) {
	args := m.Called(ctx, doctorID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportRepository) FindByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportRepository) UpdateContent(ctx context.Context, entity *models.MedicalReport) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockMedicalReportRepository) DeleteByDoctor(ctx context.Context, reportID, doctorID string) error {
	args := m.Called(ctx, reportID, doctorID)
	return args.Error(0)
}

func (m *MockMedicalReportRepository) SummarizePatientsByDoctor(ctx context.Context, doctorID string) ([]models.ReportedPatientSummary, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReportedPatientSummary), args.Error(1)
}
