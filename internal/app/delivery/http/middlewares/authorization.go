package middlewares

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Authorize checks the session role against the casbin policy for the
// request method and path. It must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
			return
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		role := utils.GetSessionRole(sessionData)
		path := m.policyPath(r.URL.Path)

		ok, err := allowed(m.Enforcer, role, r.Method, path)
		if err != nil {
			m.Log.Error("middlewares.Authorize error enforcing policy",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoleKey, role),
				zap.String(constvars.LoggingEndpointKey, path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			return
		}
		if !ok {
			m.Log.Warn("middlewares.Authorize role not allowed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoleKey, role),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil, role))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// policyPath strips the endpoint prefix and any trailing slash so policy
// rows stay independent of where the API is mounted.
func (m *Middlewares) policyPath(path string) string {
	path = strings.TrimPrefix(path, m.InternalConfig.App.EndpointPrefix)
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

func allowed(e *casbin.Enforcer, role, method, path string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return e.Enforce(role, method, path)
}
