// Package scheduler runs the periodic sweep that deactivates jobs whose
// deadline has passed.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
)

type Scheduler struct {
	cron   *cron.Cron
	jobs   *app.JobService
	logger *zap.Logger
	spec   string
}

// New builds a Scheduler from a cron spec such as "@every 1h".
func New(jobs *app.JobService, logger *zap.Logger, spec string) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		logger: logger,
		spec:   spec,
	}
}

// Start registers the sweep and starts the cron loop. One sweep runs
// immediately so a restart does not leave stale jobs active until the first
// tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.logger.Info("job sweeper started", zap.String("spec", s.spec))

	go s.sweep(ctx)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("job sweeper stopped")
}

func (s *Scheduler) sweep(ctx context.Context) {
	if _, err := s.jobs.DeactivateExpired(ctx); err != nil {
		s.logger.Warn("job sweep failed", zap.Error(err))
	}
}
