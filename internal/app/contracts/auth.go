package contracts

import (
	"context"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	AdminLogin(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	Logout(ctx context.Context, sessionData string) error
	EnsureAdmin(ctx context.Context, email, password string) error
}
