package controllers

import (
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/services/shared/notifier"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log      *zap.Logger
	Hub      *notifier.Hub
	upgrader websocket.Upgrader
}

func NewNotificationController(logger *zap.Logger, hub *notifier.Hub, internalConfig *config.InternalConfig) *NotificationController {
	allowedOrigins := make(map[string]struct{}, len(internalConfig.App.CORSAllowedOrigins))
	for _, origin := range internalConfig.App.CORSAllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	ctrl := &NotificationController{
		Log: logger,
		Hub: hub,
	}
	ctrl.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if _, ok := allowedOrigins["*"]; ok {
				return true
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowedOrigins[origin]
			return ok
		},
		Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
			utils.BuildErrorResponse(logger, w, exceptions.ErrWebsocketUpgrade(reason))
		},
	}
	return ctrl
}

// Subscribe upgrades the request and streams notifications addressed to the
// session's user id or role until the client disconnects.
func (ctrl *NotificationController) Subscribe(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := sessionDataFromContext(ctrl.Log, w, r, "NotificationController.Subscribe")
	if !ok {
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	userID := utils.GetSessionUserID(sessionData)
	role := utils.GetSessionRole(sessionData)

	conn, err := ctrl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Warn("NotificationController.Subscribe error upgrading connection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return
	}

	client := notifier.NewClient(ctrl.Hub, conn, userID, role)
	ctrl.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
