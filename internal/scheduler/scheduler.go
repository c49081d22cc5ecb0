package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/eventpulse/eventpulse/internal/pkg/metrics"
)

type catalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically re-fetches the event catalog so the in-memory
// snapshot tracks rows written outside the booking flow.
type Scheduler struct {
	eventService catalogRefresher
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService catalogRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("catalog refresh scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("catalog refresh scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.eventService.Refresh(ctx); err != nil {
		metrics.CatalogRefreshes.WithLabelValues("error").Inc()
		s.logger.Error("catalog refresh failed, keeping previous snapshot",
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.CatalogRefreshes.WithLabelValues("ok").Inc()
}
