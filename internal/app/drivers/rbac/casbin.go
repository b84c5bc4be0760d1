package rbac

import (
	"log"
	"mommycare-service/internal/app/config"

	"github.com/casbin/casbin/v2"
)

// NewCasbinEnforcer loads the role/method/path policy used by the
// authorization middleware.
func NewCasbinEnforcer(internalConfig *config.InternalConfig) *casbin.Enforcer {
	enforcer, err := casbin.NewEnforcer(internalConfig.RBAC.ModelPath, internalConfig.RBAC.PolicyPath)
	if err != nil {
		log.Fatalf("Failed to load RBAC policy: %v", err)
	}

	log.Println("Successfully loaded RBAC policy")
	return enforcer
}
