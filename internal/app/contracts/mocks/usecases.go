package mocks

import (
	"context"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) AdminLogin(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

func (m *MockAuthUsecase) EnsureAdmin(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

type MockVaccinationUsecase struct {
	mock.Mock
}

func (m *MockVaccinationUsecase) Initialize(ctx context.Context, sessionData string, request *requests.InitializeVaccinations) ([]responses.VaccinationRecord, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.VaccinationRecord, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationUsecase) RequestAppointment(ctx context.Context, sessionData string, request *requests.VaccinationAppointment) (*responses.VaccinationAppointment, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VaccinationAppointment), args.Error(1)
}

func (m *MockVaccinationUsecase) MarkCompleted(ctx context.Context, sessionData, recordID string, request *requests.CompleteVaccination) (*responses.VaccinationRecord, error) {
	args := m.Called(ctx, sessionData, recordID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VaccinationRecord), args.Error(1)
}

func (m *MockVaccinationUsecase) MarkOverdueAsMissed(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockClinicVisitRequestUsecase struct {
	mock.Mock
}

func (m *MockClinicVisitRequestUsecase) Create(ctx context.Context, sessionData string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) CreateForRequester(ctx context.Context, requesterID string, request *requests.CreateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, requesterID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) FindAllByRequester(ctx context.Context, sessionData string, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) FindByID(ctx context.Context, sessionData, requestID string) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) Update(ctx context.Context, sessionData, requestID string, request *requests.UpdateClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, requestID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) Cancel(ctx context.Context, sessionData, requestID string) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) CancelForRequester(ctx context.Context, requesterID, requestID string) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, requesterID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) FindAll(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ClinicVisitRequest), args.Error(1)
}

func (m *MockClinicVisitRequestUsecase) Review(ctx context.Context, sessionData, requestID string, request *requests.ReviewClinicVisitRequest) (*responses.ClinicVisitRequest, error) {
	args := m.Called(ctx, sessionData, requestID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicVisitRequest), args.Error(1)
}

type MockProviderUsecase struct {
	mock.Mock
}

func (m *MockProviderUsecase) FindProviders(ctx context.Context, sessionData, roleFilter string) ([]responses.Provider, error) {
	args := m.Called(ctx, sessionData, roleFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Provider), args.Error(1)
}

func (m *MockProviderUsecase) FindMyMidwife(ctx context.Context, sessionData string) (*responses.Provider, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Provider), args.Error(1)
}

func (m *MockProviderUsecase) AssignMidwife(ctx context.Context, sessionData string, request *requests.AssignMidwife) (*responses.MidwifeAssignment, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MidwifeAssignment), args.Error(1)
}

type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) FindActive(ctx context.Context, filter *requests.ProductFilter) ([]responses.Product, *responses.Pagination, error) {
	args := m.Called(ctx, filter)
	var products []responses.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]responses.Product)
	}
	var pagination *responses.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*responses.Pagination)
	}
	return products, pagination, args.Error(2)
}

func (m *MockProductUsecase) FindCategories(ctx context.Context) ([]responses.ProductCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ProductCategory), args.Error(1)
}

func (m *MockProductUsecase) FindByID(ctx context.Context, productID string) (*responses.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Product), args.Error(1)
}

func (m *MockProductUsecase) TrackClick(ctx context.Context, productID string) (*responses.ProductClick, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ProductClick), args.Error(1)
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, sessionData string, request *requests.CreateProduct) (*responses.Product, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Product), args.Error(1)
}

func (m *MockProductUsecase) FindMyProducts(ctx context.Context, sessionData string) ([]responses.Product, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Product), args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, sessionData, productID string, request *requests.UpdateProduct) (*responses.Product, error) {
	args := m.Called(ctx, sessionData, productID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Product), args.Error(1)
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, sessionData, productID string) error {
	args := m.Called(ctx, sessionData, productID)
	return args.Error(0)
}

func (m *MockProductUsecase) ReviewProduct(ctx context.Context, productID string, request *requests.ReviewProduct) (*responses.Product, error) {
	args := m.Called(ctx, productID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Product), args.Error(1)
}

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) FindConversations(ctx context.Context, sessionData string) ([]responses.Conversation, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Conversation), args.Error(1)
}

func (m *MockChatUsecase) FindMessages(ctx context.Context, sessionData, conversationID string, filter *requests.ChatMessageFilter) ([]responses.ChatMessage, *responses.Pagination, error) {
	args := m.Called(ctx, sessionData, conversationID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]responses.ChatMessage), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockChatUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatMessage), args.Error(1)
}

func (m *MockChatUsecase) MarkConversationRead(ctx context.Context, sessionData, conversationID string) (*responses.ChatReadReceipt, error) {
	args := m.Called(ctx, sessionData, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatReadReceipt), args.Error(1)
}

func (m *MockChatUsecase) DeleteMessage(ctx context.Context, sessionData, messageID string) error {
	args := m.Called(ctx, sessionData, messageID)
	return args.Error(0)
}

func (m *MockChatUsecase) CountUnread(ctx context.Context, sessionData string) (*responses.ChatUnreadCount, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatUnreadCount), args.Error(1)
}

type MockMedicalReportUsecase struct {
	mock.Mock
}

func (m *MockMedicalReportUsecase) FindReportedPatients(ctx context.Context, sessionData string) ([]responses.ReportedPatient, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ReportedPatient), args.Error(1)
}

func (m *MockMedicalReportUsecase) FindByPatient(ctx context.Context, sessionData, patientID string) ([]responses.MedicalReport, error) {
	args := m.Called(ctx, sessionData, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportUsecase) FindMine(ctx context.Context, sessionData string) ([]responses.MedicalReport, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportUsecase) Create(ctx context.Context, sessionData, patientID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error) {
	args := m.Called(ctx, sessionData, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportUsecase) Update(ctx context.Context, sessionData, reportID string, request *requests.MedicalReportContent) (*responses.MedicalReport, error) {
	args := m.Called(ctx, sessionData, reportID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MedicalReport), args.Error(1)
}

func (m *MockMedicalReportUsecase) Delete(ctx context.Context, sessionData, reportID string) error {
	args := m.Called(ctx, sessionData, reportID)
	return args.Error(0)
}
