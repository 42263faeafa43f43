// Package service implements the audit runner
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chalkline/internal/platform/logger"
	confdom "chalkline/internal/services/api/conflicts/domain"
	"chalkline/internal/services/audit/domain"
)

// Config controls sweep cadence and write behavior
type Config struct {
	// Interval between sweeps; Run sweeps once immediately and then on ticks
	Interval time.Duration

	// TermWeeks overrides the detection horizon; 0 keeps the detector default
	TermWeeks int

	// DryRun computes and logs findings without writing history
	DryRun bool
}

// Service implements domain.RunnerPort
type Service struct {
	Scanner confdom.ScannerPort
	History domain.HistoryRepo
	Cfg     Config
}

// New constructs the audit service
func New(scanner confdom.ScannerPort, history domain.HistoryRepo, cfg Config) *Service {
	if scanner == nil {
		panic("audit.Service requires a non nil ScannerPort")
	}
	if history == nil {
		panic("audit.Service requires a non nil HistoryRepo")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Service{Scanner: scanner, History: history, Cfg: cfg}
}

// RunOnce performs a single sweep over the stored schedule
func (s *Service) RunOnce(ctx context.Context) (domain.RunSummary, error) {
	l := logger.C(ctx).With().Str("mod", "audit").Logger()

	start := time.Now()
	rep, err := s.Scanner.Scan(ctx, confdom.ScanInput{TermWeeks: s.Cfg.TermWeeks})
	if err != nil {
		l.Error().Err(err).Msg("audit: sweep failed")
		return domain.RunSummary{}, err
	}

	sum := domain.RunSummary{
		RunID:     uuid.NewString(),
		RunAt:     start.UTC(),
		Total:     rep.Total,
		Totals:    rep.Totals,
		ElapsedMS: int(time.Since(start).Milliseconds()),
		DryRun:    s.Cfg.DryRun,
	}

	if s.Cfg.DryRun {
		for _, f := range rep.Conflicts {
			l.Info().
				Str("kind", f.Kind).
				Strs("events", f.Events).
				Str("resource", f.Resource).
				Msg(f.Message)
		}
		l.Info().Str("run_id", sum.RunID).Int("total", sum.Total).Msg("audit: dry run complete")
		return sum, nil
	}

	if err := s.History.InsertFindings(ctx, sum, rep.Conflicts); err != nil {
		l.Error().Err(err).Str("run_id", sum.RunID).Msg("audit: write findings failed")
		return domain.RunSummary{}, err
	}
	if err := s.History.InsertRun(ctx, sum); err != nil {
		l.Error().Err(err).Str("run_id", sum.RunID).Msg("audit: write run summary failed")
		return domain.RunSummary{}, err
	}

	l.Info().
		Str("run_id", sum.RunID).
		Int("total", sum.Total).
		Int("elapsed_ms", sum.ElapsedMS).
		Msg("audit: sweep complete")
	return sum, nil
}

// Run sweeps once immediately, then on every interval tick until ctx ends.
// A failed sweep is logged and the loop keeps going
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.RunOnce(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	t := time.NewTicker(s.Cfg.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
