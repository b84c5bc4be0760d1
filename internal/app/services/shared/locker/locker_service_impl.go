package locker

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Lock values are stored JSON encoded by the redis repository, so the scripts
// compare against the quoted token. Both reply -1 when another holder owns
// the key and 0 when the key is gone.
const (
	unlockScript = `
local stored = redis.call("GET", KEYS[1])
if not stored then return 0 end
if stored ~= ARGV[1] then return -1 end
return redis.call("DEL", KEYS[1])`

	refreshScript = `
local stored = redis.call("GET", KEYS[1])
if not stored then return 0 end
if stored ~= ARGV[1] then return -1 end
return redis.call("PEXPIRE", KEYS[1], ARGV[2])`
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.Unlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	reply, err := s.redisRepo.Eval(ctx, unlockScript, []string{key}, encodeLockValue(lockValue))
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.Eval",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	switch scriptReply(reply) {
	case -1:
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s not owned by this client", key))
		s.Log.Error("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	case 0:
		s.Log.Info("lockService.Unlock no lock found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	s.Log.Info("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	reply, err := s.redisRepo.Eval(ctx, refreshScript, []string{key}, encodeLockValue(lockValue), expiration.Milliseconds())
	if err != nil {
		s.Log.Error("lockService.Refresh error calling redisRepo.Eval",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	switch scriptReply(reply) {
	case -1:
		return exceptions.ErrRedisExpire(fmt.Errorf("lock %s is held by another client", key))
	case 0:
		return exceptions.ErrRedisExpire(fmt.Errorf("lock %s expired before refresh", key))
	}

	s.Log.Info("lockService.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

func encodeLockValue(lockValue string) string {
	return fmt.Sprintf("\"%s\"", lockValue)
}

func scriptReply(reply interface{}) int64 {
	n, _ := reply.(int64)
	return n
}
