package auth

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/app/services/shared/ratelimiter"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	MailerService   contracts.MailerService
	ResourceLimiter *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		MailerService:   mailerService,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      request.Role,
		IsActive:  true,
	}
	if request.Role == constvars.RoleDoctor || request.Role == constvars.RoleMidwife {
		user.Specialty = request.Specialty
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile := user.ConvertIntoResponse()
	profile.ID = userID

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &profile, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.authenticate(ctx, request)
	if err != nil {
		return nil, err
	}

	if user.Role == constvars.RoleAdmin {
		uc.Log.Error("authUsecase.Login admin must use the admin login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
		return nil, exceptions.ErrNotMatchRoleType(nil, user.Role)
	}

	return uc.startSession(ctx, user)
}

func (uc *authUsecase) AdminLogin(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.AdminLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.authenticate(ctx, request)
	if err != nil {
		return nil, err
	}

	if user.Role != constvars.RoleAdmin {
		uc.Log.Error("authUsecase.AdminLogin user is not an admin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
		return nil, exceptions.ErrNotMatchRoleType(nil, user.Role)
	}

	return uc.startSession(ctx, user)
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

// ForgotPassword never reveals whether the email is registered or throttled;
// both cases return nil so the caller always answers with the same message.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:     request.Email,
		LimiterGroupName: constvars.RateLimitGroupForgotPassword,
		WindowDuration:   time.Hour,
		MaxQuota:         uc.InternalConfig.App.ForgotPasswordMaxRequestsPerHour,
	})
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error applying resource limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisIncrement(err)
	}
	if !limit.Allowed {
		uc.Log.Warn("authUsecase.ForgotPassword throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration("retry_after", limit.RetryAfter),
		)
		return nil
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if user == nil || !user.IsActive {
		uc.Log.Info("authUsecase.ForgotPassword no active user for email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	token := utils.GenerateResetPasswordToken()
	tokenTTL := time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpiredTimeInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyForgotPasswordPrefix+token, user.ID.Hex(), tokenTTL)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error storing reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}

	resetLink := fmt.Sprintf("%s?%s=%s", uc.InternalConfig.App.ResetPasswordUrl, constvars.QueryParamToken, token)
	expiresAt := time.Now().Add(tokenTTL).UTC().Format(time.RFC1123)
	emailPayload := &requests.EmailPayload{
		Subject:  constvars.EmailForgotPasswordSubjectMessage,
		From:     uc.InternalConfig.Mailer.EmailSender,
		To:       []string{user.Email},
		HTMLCode: fmt.Sprintf(constvars.EmailBodyResetPassword, user.FullName(), resetLink, expiresAt),
	}

	err = uc.MailerService.SendEmail(ctx, emailPayload)
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, uc.InternalConfig.RabbitMQ.MailerQueue)
	}

	uc.Log.Info("authUsecase.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	redisKey := constvars.RedisKeyForgotPasswordPrefix + request.Token
	rawUserID, err := uc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error reading reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisGetNoData(err, redisKey)
	}
	if rawUserID == "" {
		return exceptions.ErrTokenResetPasswordExpired(nil)
	}

	var userID string
	err = json.Unmarshal([]byte(rawUserID), &userID)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, userID, hashedPassword)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error calling UserRepository.UpdatePassword",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.RedisRepository.Delete(ctx, redisKey)
	if err != nil {
		uc.Log.Warn("authUsecase.ResetPassword failed to delete used reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

// EnsureAdmin seeds the admin account on startup. It is a no-op when no
// password is configured or the account already exists.
func (uc *authUsecase) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		uc.Log.Info("authUsecase.EnsureAdmin skipped, admin credential not configured")
		return nil
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		if existingUser.Role != constvars.RoleAdmin {
			uc.Log.Warn("authUsecase.EnsureAdmin email is taken by a non admin account",
				zap.String(constvars.LoggingUserIDKey, existingUser.ID.Hex()),
			)
		}
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	admin := &models.User{
		FirstName: "Admin",
		LastName:  "MommyCare",
		Email:     email,
		Password:  hashedPassword,
		Role:      constvars.RoleAdmin,
		IsActive:  true,
	}
	admin.SetCreatedAtUpdatedAt()

	adminID, err := uc.UserRepository.CreateUser(ctx, admin)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.EnsureAdmin created admin account",
		zap.String(constvars.LoggingUserIDKey, adminID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return nil
}

func (uc *authUsecase) authenticate(ctx context.Context, request *requests.LoginUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.authenticate error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !user.IsActive {
		return nil, exceptions.ErrAccountDeactivated(nil)
	}
	return user, nil
}

func (uc *authUsecase) startSession(ctx context.Context, user *models.User) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionTTL := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ExpiresAt: time.Now().Add(sessionTTL).UTC(),
	}

	err := uc.SessionService.CreateSession(ctx, session, sessionTTL)
	if err != nil {
		return nil, exceptions.ErrRedisSet(err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.App.LoginSessionExpiredTimeInHours)
	if err != nil {
		uc.Log.Error("authUsecase.startSession error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.startSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)
	return &responses.LoginUser{
		Token: token,
		Role:  user.Role,
		User:  user.ConvertIntoResponse(),
	}, nil
}
