package routers

import (
	"bytes"
	"encoding/json"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/app/delivery/http/controllers"
	"mommycare-service/internal/app/delivery/http/middlewares"
	"mommycare-service/internal/app/services/shared/notifier"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	testSecret       = "test-secret"
	momSessionData   = `{"session_id":"sess-mom","user_id":"mom-1","role":"mom"}`
	staffSessionData = `{"session_id":"sess-doc","user_id":"doc-1","role":"doctor"}`
)

type routerFixture struct {
	router             *chi.Mux
	sessionService     *mocks.MockSessionService
	authUsecase        *mocks.MockAuthUsecase
	vaccinationUsecase *mocks.MockVaccinationUsecase
	clinicUsecase      *mocks.MockClinicVisitRequestUsecase
	providerUsecase    *mocks.MockProviderUsecase
	productUsecase     *mocks.MockProductUsecase
	chatUsecase        *mocks.MockChatUsecase
	reportUsecase      *mocks.MockMedicalReportUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                          "test",
			EndpointPrefix:                   "/api",
			CORSAllowedOrigins:               []string{"*"},
			MaxRequests:                      1000,
			LoginRateLimitPerMinute:          2,
			LoginRateLimitBlockTimeInMinutes: 1,
		},
		JWT: config.AppJWT{Secret: testSecret},
	}

	f := &routerFixture{
		router:             chi.NewRouter(),
		sessionService:     new(mocks.MockSessionService),
		authUsecase:        new(mocks.MockAuthUsecase),
		vaccinationUsecase: new(mocks.MockVaccinationUsecase),
		clinicUsecase:      new(mocks.MockClinicVisitRequestUsecase),
		providerUsecase:    new(mocks.MockProviderUsecase),
		productUsecase:     new(mocks.MockProductUsecase),
		chatUsecase:        new(mocks.MockChatUsecase),
		reportUsecase:      new(mocks.MockMedicalReportUsecase),
	}
	f.sessionService.On("GetSessionData", mock.Anything, "sess-mom").Return(momSessionData, nil)
	f.sessionService.On("GetSessionData", mock.Anything, "sess-doc").Return(staffSessionData, nil)

	enforcer, err := casbin.NewEnforcer("../../../../../resources/rbac_model.conf", "../../../../../resources/rbac_policy.csv")
	if err != nil {
		t.Fatalf("loading rbac policy: %v", err)
	}

	hub := notifier.NewHub(logger)
	t.Cleanup(hub.Stop)

	SetupRoutes(
		f.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, f.sessionService, enforcer, internalConfig),
		controllers.NewAuthController(logger, f.authUsecase),
		controllers.NewVaccinationController(logger, f.vaccinationUsecase),
		controllers.NewClinicVisitRequestController(logger, f.clinicUsecase),
		controllers.NewProviderController(logger, f.providerUsecase),
		controllers.NewProductController(logger, f.productUsecase),
		controllers.NewChatController(logger, f.chatUsecase),
		controllers.NewMedicalReportController(logger, f.reportUsecase),
		controllers.NewNotificationController(logger, hub, internalConfig),
		controllers.NewHealthController(logger, internalConfig, nil),
	)
	return f
}

func (f *routerFixture) serve(method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		token, _ := utils.GenerateSessionJWT(sessionID, testSecret, 1)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.serve(http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRouter_AuthRoutes(t *testing.T) {
	t.Run("Register Valid Body", func(t *testing.T) {
		f := newRouterFixture(t)
		f.authUsecase.On("Register", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).
			Return(&responses.UserProfile{ID: "u1", Role: constvars.RoleMom}, nil)

		rr := f.serve(http.MethodPost, "/api/auth/register", "", requests.RegisterUser{
			FirstName: "Siti",
			LastName:  "Aminah",
			Email:     "  SITI@example.com ",
			Password:  "Str0ng!Pass",
			Role:      constvars.RoleMom,
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.authUsecase.AssertCalled(t, "Register", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "siti@example.com"
		}))
	})

	t.Run("Register Rejects Unknown Role", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodPost, "/api/auth/register", "", requests.RegisterUser{
			FirstName: "Siti",
			LastName:  "Aminah",
			Email:     "siti@example.com",
			Password:  "Str0ng!Pass",
			Role:      constvars.RoleAdmin,
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.authUsecase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Login Is Throttled Per Client", func(t *testing.T) {
		f := newRouterFixture(t)
		f.authUsecase.On("Login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))
		body := requests.LoginUser{Email: "siti@example.com", Password: "wrong"}

		assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodPost, "/api/auth/login", "", body).Code)
		assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodPost, "/api/auth/login", "", body).Code)
		assert.Equal(t, http.StatusTooManyRequests, f.serve(http.MethodPost, "/api/auth/login", "", body).Code)
		f.authUsecase.AssertNumberOfCalls(t, "Login", 2)
	})

	t.Run("Logout Requires Token", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodPost, "/api/auth/logout", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRouter_MomRoutes(t *testing.T) {
	t.Run("Mom Lists Vaccinations", func(t *testing.T) {
		f := newRouterFixture(t)
		f.vaccinationUsecase.On("FindAll", mock.Anything, momSessionData).
			Return([]responses.VaccinationRecord{{VaccineName: "BCG"}}, nil)

		rr := f.serve(http.MethodGet, "/api/mom/vaccinations", "sess-mom", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.vaccinationUsecase.AssertExpectations(t)
	})

	t.Run("Staff Cannot Use Mom Routes", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodGet, "/api/mom/vaccinations", "sess-doc", nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		f.vaccinationUsecase.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("Complete Accepts Empty Body", func(t *testing.T) {
		f := newRouterFixture(t)
		f.vaccinationUsecase.On("MarkCompleted", mock.Anything, momSessionData, "rec-1", mock.AnythingOfType("*requests.CompleteVaccination")).
			Return(&responses.VaccinationRecord{ID: "rec-1", Status: constvars.VaccinationStatusCompleted}, nil)

		rr := f.serve(http.MethodPatch, "/api/mom/vaccinations/rec-1/complete", "sess-mom", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_ClinicRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.clinicUsecase.On("FindAll", mock.Anything, mock.MatchedBy(func(filter *requests.ClinicVisitRequestFilter) bool {
		return filter.Status == constvars.ClinicVisitRequestStatusPending && filter.RequestType == "Vaccinations"
	})).Return([]responses.ClinicVisitRequest{}, nil)

	rr := f.serve(http.MethodGet, "/api/clinic/visit-requests?status=Pending&requestType=Vaccinations", "sess-doc", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.serve(http.MethodGet, "/api/clinic/visit-requests", "sess-mom", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_ProductRoutes(t *testing.T) {
	t.Run("Public Listing With Pagination", func(t *testing.T) {
		f := newRouterFixture(t)
		f.productUsecase.On("FindActive", mock.Anything, mock.MatchedBy(func(filter *requests.ProductFilter) bool {
			return filter.Category == "nutrition" && filter.Page == 2 && filter.Limit == 5
		})).Return([]responses.Product{{ID: "p1"}}, &responses.Pagination{Total: 6, Page: 2, PageSize: 5}, nil)

		rr := f.serve(http.MethodGet, "/api/products?category=nutrition&page=2&limit=5", "", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 6, body.Pagination.Total)
	})

	t.Run("Categories Route Is Not Treated As An ID", func(t *testing.T) {
		f := newRouterFixture(t)
		f.productUsecase.On("FindCategories", mock.Anything).Return([]responses.ProductCategory{{Name: "nutrition", Count: 2}}, nil)

		rr := f.serve(http.MethodGet, "/api/products/categories", "", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.productUsecase.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Mom Cannot Manage Products", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodGet, "/api/service-provider/products", "sess-mom", nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestRouter_MedicalRecordRoutes(t *testing.T) {
	t.Run("Doctor Files Report For Patient", func(t *testing.T) {
		f := newRouterFixture(t)
		f.reportUsecase.On("Create", mock.Anything, staffSessionData, "mom-1", mock.MatchedBy(func(content *requests.MedicalReportContent) bool {
			return content.Diagnosis.Primary == "Healthy pregnancy"
		})).Return(&responses.MedicalReport{ID: "rep-1", PatientID: "mom-1"}, nil)

		rr := f.serve(http.MethodPost, "/api/doctor/medical-records/patients/mom-1", "sess-doc", requests.MedicalReportContent{
			Visit:     requests.MedicalReportVisit{Date: "2026-10-01", ReasonForVisit: "Routine prenatal check"},
			Diagnosis: requests.MedicalReportDiagnosis{Primary: "Healthy pregnancy", Severity: "mild"},
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.reportUsecase.AssertExpectations(t)
	})

	t.Run("Mom Cannot Use Doctor Routes", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodGet, "/api/doctor/medical-records/patients", "sess-mom", nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		f.reportUsecase.AssertNotCalled(t, "FindReportedPatients", mock.Anything, mock.Anything)
	})

	t.Run("Mom Reads Own Reports", func(t *testing.T) {
		f := newRouterFixture(t)
		f.reportUsecase.On("FindMine", mock.Anything, momSessionData).
			Return([]responses.MedicalReport{{ID: "rep-1"}}, nil)

		rr := f.serve(http.MethodGet, "/api/mom/medical-records", "sess-mom", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_ChatRoutes(t *testing.T) {
	t.Run("Send Creates Message", func(t *testing.T) {
		f := newRouterFixture(t)
		f.chatUsecase.On("SendMessage", mock.Anything, momSessionData, mock.MatchedBy(func(request *requests.SendChatMessage) bool {
			return request.RecipientID == "doc-1" && request.Content == "Hello doctor"
		})).Return(&responses.ChatMessage{ID: "msg-1"}, nil)

		rr := f.serve(http.MethodPost, "/api/chat/send", "sess-mom", requests.SendChatMessage{
			RecipientID: "doc-1",
			Content:     "  Hello doctor ",
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.chatUsecase.AssertExpectations(t)
	})

	t.Run("Requires Token", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodGet, "/api/chat/conversations", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRouter_NotificationsRequireQueryToken(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.serve(http.MethodGet, "/api/ws/notifications", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
