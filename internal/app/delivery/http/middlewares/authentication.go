package middlewares

import (
	"context"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// Authenticate resolves the bearer token into the redis session blob and
// stores it in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		m.serveWithSession(w, r, next, strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
	})
}

// AuthenticateQueryToken is Authenticate for clients that cannot set headers,
// such as browser websockets, which pass the token as ?token=.
func (m *Middlewares) AuthenticateQueryToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get(constvars.QueryParamToken)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		m.serveWithSession(w, r, next, token)
	})
}

func (m *Middlewares) serveWithSession(w http.ResponseWriter, r *http.Request, next http.Handler, token string) {
	sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		utils.BuildErrorResponse(m.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(m.Log, w, err)
		return
	}

	requestCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
	next.ServeHTTP(w, r.WithContext(requestCtx))
}
