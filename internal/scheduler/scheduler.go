package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/maximdx/TrendRadar/internal/domain"
)

// Enricher runs one enrichment pass.
type Enricher interface {
	Run(ctx context.Context) (*domain.EnrichmentSummary, error)
}

type Scheduler struct {
	enricher Enricher
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(enricher Enricher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		enricher: enricher,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.enricher.Run(passCtx); err != nil {
		s.logger.Error("enrichment pass failed", "error", err)
	}
}
