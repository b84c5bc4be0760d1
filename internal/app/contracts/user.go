package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, entity *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindActiveByRoles(ctx context.Context, roles []string) ([]models.User, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
}
