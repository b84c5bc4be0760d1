package ratelimiter

import (
	"context"
	"fmt"
	"mommycare-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window limiter backed by a redis counter whose
// TTL equals the window length.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, e.g. an email address
	ResourceName string
	// LimiterGroupName namespaces the counter key, e.g. FORGOT_PASSWORD
	LimiterGroupName string
	WindowDuration   time.Duration
	MaxQuota         int
	// NowUTC defaults to time.Now().UTC()
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed    bool
	RetryAfter time.Duration
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	window := in.WindowDuration
	if window < time.Second {
		window = time.Minute
	}
	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfter: window}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowSec := int64(window / time.Second)
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("ratelimit:%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return &ApplyResourceLimiterOutput{Allowed: false}, err
	}

	if count > in.MaxQuota {
		nextWindowStart := (windowID + 1) * windowSec
		retryAfter := time.Duration(nextWindowStart-now.Unix()) * time.Second
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfter: retryAfter}, nil
	}
	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}
