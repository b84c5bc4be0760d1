package controllers

import (
	"context"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck pings one backing dependency.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Checks         map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
		Checks:         checks,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := responses.Health{
		Status:       constvars.HealthStatusUp,
		Version:      ctrl.InternalConfig.App.Version,
		Dependencies: make(map[string]string, len(names)),
	}
	for _, name := range names {
		err := ctrl.Checks[name](ctx)
		if err != nil {
			ctrl.Log.Error("HealthController.Check dependency is down",
				zap.String("dependency", name),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDependencyUnavailable(err, name))
			return
		}
		response.Dependencies[name] = constvars.HealthStatusUp
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, response)
}
