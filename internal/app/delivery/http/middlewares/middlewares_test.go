package middlewares

import (
	"context"
	"errors"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	testSecret        = "test-secret"
	momSessionBlob    = `{"session_id":"sess-1","user_id":"mom-1","role":"mom"}`
	adminSessionBlob  = `{"session_id":"sess-2","user_id":"admin-1","role":"admin"}`
	doctorSessionBlob = `{"session_id":"sess-4","user_id":"doc-1","role":"doctor"}`
)

func newTestMiddlewares(t *testing.T, sessionService *mocks.MockSessionService) *Middlewares {
	enforcer, err := casbin.NewEnforcer("../../../../../resources/rbac_model.conf", "../../../../../resources/rbac_policy.csv")
	if err != nil {
		t.Fatalf("loading rbac policy: %v", err)
	}

	return NewMiddlewares(zap.NewNop(), sessionService, enforcer, &config.InternalConfig{
		JWT: config.AppJWT{Secret: testSecret},
		App: config.App{
			EndpointPrefix:                   "/api",
			LoginRateLimitPerMinute:          2,
			LoginRateLimitBlockTimeInMinutes: 1,
		},
	})
}

func okHandler(t *testing.T, wantSession string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantSession != "" {
			sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			assert.True(t, ok, "session data should be set in context")
			assert.Equal(t, wantSession, sessionData)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionService))

	t.Run("Generates Request ID", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		handler := m.RequestIDMiddleware(okHandler(t, ""))
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	token, err := utils.GenerateSessionJWT("sess-1", testSecret, 1)
	assert.NoError(t, err)

	t.Run("Missing Token", func(t *testing.T) {
		sessionService := new(mocks.MockSessionService)
		rr := httptest.NewRecorder()

		newTestMiddlewares(t, sessionService).Authenticate(okHandler(t, "")).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/mom/vaccinations", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("Token Signed With Another Secret", func(t *testing.T) {
		forged, _ := utils.GenerateSessionJWT("sess-1", "other-secret", 1)
		req := httptest.NewRequest(http.MethodGet, "/api/mom/vaccinations", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+forged)
		rr := httptest.NewRecorder()

		newTestMiddlewares(t, new(mocks.MockSessionService)).Authenticate(okHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Session", func(t *testing.T) {
		sessionService := new(mocks.MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return("", exceptions.ErrSessionNotFound(nil))
		req := httptest.NewRequest(http.MethodGet, "/api/mom/vaccinations", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		newTestMiddlewares(t, sessionService).Authenticate(okHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid Token Stores Session", func(t *testing.T) {
		sessionService := new(mocks.MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return(momSessionBlob, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/mom/vaccinations", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		newTestMiddlewares(t, sessionService).Authenticate(okHandler(t, momSessionBlob)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Query Token", func(t *testing.T) {
		sessionService := new(mocks.MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "sess-1").Return(momSessionBlob, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/ws/notifications?token="+token, nil)
		rr := httptest.NewRecorder()

		newTestMiddlewares(t, sessionService).AuthenticateQueryToken(okHandler(t, momSessionBlob)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAuthorize(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionService))
	handler := m.Authorize(okHandler(t, ""))

	serveAs := func(sessionData, method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req.WithContext(ctx))
		return rr.Code
	}

	t.Run("Mom Reads Own Vaccinations", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(momSessionBlob, http.MethodGet, "/api/mom/vaccinations/"))
	})

	t.Run("Mom Updates Clinic Visit Request By ID", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(momSessionBlob, http.MethodPut, "/api/mom/clinic-visit-requests/65f0c0ffee"))
	})

	t.Run("Mom Cannot Delete Clinic Visit Request", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serveAs(momSessionBlob, http.MethodDelete, "/api/mom/clinic-visit-requests/65f0c0ffee"))
	})

	t.Run("Mom Cannot Review Products", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serveAs(momSessionBlob, http.MethodPatch, "/api/admin/products/1/review"))
	})

	t.Run("Admin Reviews Products", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(adminSessionBlob, http.MethodPatch, "/api/admin/products/1/review"))
	})

	t.Run("Doctor Inherits Clinic Staff Permissions", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(doctorSessionBlob, http.MethodPatch, "/api/clinic/visit-requests/abc/review"))
		assert.Equal(t, http.StatusForbidden, serveAs(doctorSessionBlob, http.MethodGet, "/api/mom/vaccinations"))
	})

	t.Run("Only Doctors Manage Medical Records", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(doctorSessionBlob, http.MethodPut, "/api/doctor/medical-records/65f0c0ffee"))
		assert.Equal(t, http.StatusOK, serveAs(doctorSessionBlob, http.MethodGet, "/api/doctor/medical-records/patients/mom-1"))
		assert.Equal(t, http.StatusForbidden, serveAs(adminSessionBlob, http.MethodDelete, "/api/doctor/medical-records/65f0c0ffee"))
		assert.Equal(t, http.StatusForbidden, serveAs(momSessionBlob, http.MethodGet, "/api/doctor/medical-records/patients"))
	})

	t.Run("Admin Inherits Clinic Staff Permissions", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveAs(adminSessionBlob, http.MethodGet, "/api/clinic/visit-requests"))
	})

	t.Run("Session Without Role", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serveAs(`{"session_id":"sess-3"}`, http.MethodGet, "/api/mom/vaccinations"))
	})

	t.Run("No Session In Context", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/mom/vaccinations", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionService))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("nil map write"))
	}))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	m := newTestMiddlewares(t, new(mocks.MockSessionService))
	limiter := m.NewLoginRateLimiter()
	current := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(okHandler(t, ""))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"), "other clients are unaffected")

	current = current.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5003"), "still blocked")

	current = current.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5004"), "block expired")
}
