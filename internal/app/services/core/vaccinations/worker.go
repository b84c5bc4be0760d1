package vaccinations

import (
	"context"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL = 2 * time.Minute
	unlockTimeout = 5 * time.Second
)

// Worker periodically marks overdue pending vaccinations as missed.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	usecase contracts.VaccinationUsecase
	stop    chan struct{}
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, vaccinationUsecase contracts.VaccinationUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, usecase: vaccinationUsecase, stop: make(chan struct{})}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.Vaccination.SweeperCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("vaccinations.worker: invalid cron spec, falling back to @daily",
			zap.String("spec", w.cfg.Vaccination.SweeperCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels an in-flight sweep and waits for its job to return. The
// leader lock is still released because unlock does not use the sweep
// context.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyVaccinationWorkerLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("vaccinations.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("vaccinations.worker: leader lock held by another instance")
		return
	}
	defer w.unlock(token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-w.stop:
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisKeyVaccinationWorkerLeader, token, leaderLockTTL); err != nil {
					w.log.Warn("vaccinations.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	affected, err := w.usecase.MarkOverdueAsMissed(ctx, time.Now().UTC())
	if err != nil {
		w.log.Warn("vaccinations.worker: sweep failed", zap.Error(err))
		return
	}
	w.log.Info("vaccinations.worker: sweep finished",
		zap.Int64(constvars.LoggingAffectedCountKey, affected),
	)
}

func (w *Worker) unlock(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
	defer cancel()

	if err := w.locker.Unlock(ctx, constvars.RedisKeyVaccinationWorkerLeader, token); err != nil {
		w.log.Warn("vaccinations.worker: failed to release leader lock", zap.Error(err))
	}
}
