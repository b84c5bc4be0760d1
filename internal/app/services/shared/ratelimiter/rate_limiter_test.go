package ratelimiter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *mockRedisRepository) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	ret := m.Called(ctx, script, keys, args)
	return ret.Get(0), ret.Error(1)
}

func TestApplyResourceLimiter(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 30, 0, time.UTC)
	windowID := now.Unix() / 3600

	tests := []struct {
		name          string
		count         int
		expectAllowed bool
	}{
		{"under quota", 1, true},
		{"at quota", 3, true},
		{"over quota", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRedisRepository)
			expectedKey := "ratelimit:FORGOT_PASSWORD:mom@example.com:" + itoa(windowID)
			repo.On("IncrementWithTTL", mock.Anything, expectedKey, time.Hour+time.Second).Return(tt.count, nil)
			limiter := NewResourceLimiter(repo, zap.NewNop())

			out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
				ResourceName:     " Mom@Example.com ",
				LimiterGroupName: "forgot_password",
				WindowDuration:   time.Hour,
				MaxQuota:         3,
				NowUTC:           now,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expectAllowed, out.Allowed)
			if !tt.expectAllowed {
				assert.Equal(t, 3570*time.Second, out.RetryAfter)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestApplyResourceLimiter_ZeroQuotaAllowsAll(t *testing.T) {
	repo := new(mockRedisRepository)
	limiter := NewResourceLimiter(repo, zap.NewNop())

	out, err := limiter.ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{ResourceName: "x", LimiterGroupName: "y"})

	assert.NoError(t, err)
	assert.True(t, out.Allowed)
	repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
}

func itoa(v int64) string {
	return fmt.Sprintf("%d", v)
}
