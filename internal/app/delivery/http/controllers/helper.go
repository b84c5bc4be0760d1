package controllers

import (
	"context"
	"errors"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// newRequestContext keeps the request scoped values, such as the request id,
// while bounding the usecase call.
func newRequestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func sessionDataFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (string, bool) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		log.Error(caller+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
		return "", false
	}
	return sessionData, true
}
