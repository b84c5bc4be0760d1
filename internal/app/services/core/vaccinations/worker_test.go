package vaccinations

import (
	"context"
	"errors"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestWorker() (*Worker, *mocks.MockLockerService, *mocks.MockVaccinationUsecase) {
	locker := new(mocks.MockLockerService)
	usecase := new(mocks.MockVaccinationUsecase)
	cfg := &config.InternalConfig{Vaccination: config.AppVaccination{SweeperCronSpec: "@daily", MissedGraceDays: 30}}
	return NewWorker(zap.NewNop(), cfg, locker, usecase), locker, usecase
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader Sweeps And Unlocks", func(t *testing.T) {
		worker, locker, usecase := newTestWorker()
		locker.On("TryLock", ctx, constvars.RedisKeyVaccinationWorkerLeader, leaderLockTTL).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyVaccinationWorkerLeader, "token-1").Return(nil)
		usecase.On("MarkOverdueAsMissed", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)

		worker.runOnce(ctx)

		locker.AssertExpectations(t)
		usecase.AssertExpectations(t)
	})

	t.Run("Cancelled Sweep Still Unlocks", func(t *testing.T) {
		worker, locker, usecase := newTestWorker()
		sweepCtx, cancel := context.WithCancel(ctx)
		locker.On("TryLock", sweepCtx, constvars.RedisKeyVaccinationWorkerLeader, leaderLockTTL).Return(true, "token-2", nil)
		locker.On("Unlock", mock.MatchedBy(func(unlockCtx context.Context) bool {
			return unlockCtx.Err() == nil
		}), constvars.RedisKeyVaccinationWorkerLeader, "token-2").Return(nil)
		usecase.On("MarkOverdueAsMissed", sweepCtx, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { cancel() }).
			Return(int64(0), context.Canceled)

		worker.runOnce(sweepCtx)

		locker.AssertExpectations(t)
	})

	t.Run("Follower Skips Sweep", func(t *testing.T) {
		worker, locker, usecase := newTestWorker()
		locker.On("TryLock", ctx, constvars.RedisKeyVaccinationWorkerLeader, leaderLockTTL).Return(false, "", nil)

		worker.runOnce(ctx)

		usecase.AssertNotCalled(t, "MarkOverdueAsMissed", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Error Skips Sweep", func(t *testing.T) {
		worker, locker, usecase := newTestWorker()
		locker.On("TryLock", ctx, constvars.RedisKeyVaccinationWorkerLeader, leaderLockTTL).Return(false, "", errors.New("redis down"))

		worker.runOnce(ctx)

		usecase.AssertNotCalled(t, "MarkOverdueAsMissed", mock.Anything, mock.Anything)
	})
}

func TestWorker_StartStop(t *testing.T) {
	worker, _, _ := newTestWorker()
	worker.cfg.Vaccination.SweeperCronSpec = "not a cron spec"

	worker.Start(context.Background())
	worker.Stop()
	worker.Stop()
}
