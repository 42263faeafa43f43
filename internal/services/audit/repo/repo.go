// Package repo persists audit sweep history to ClickHouse
package repo

import (
	"context"

	"chalkline/internal/platform/store"
	confdom "chalkline/internal/services/api/conflicts/domain"
	"chalkline/internal/services/audit/domain"
)

// NewHistory returns a HistoryRepo backed by the ClickHouse seam
func NewHistory(ch store.Clickhouse) domain.HistoryRepo {
	if ch == nil {
		panic("audit.NewHistory requires a non nil Clickhouse seam")
	}
	return &history{ch: ch}
}

type history struct{ ch store.Clickhouse }

// InsertFindings appends one row per finding stamped with the run id
func (h *history) InsertFindings(ctx context.Context, run domain.RunSummary, findings []confdom.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []any{
			run.RunID,
			run.RunAt,
			f.Kind,
			f.Events,
			f.Resource,
			f.Message,
		})
	}
	return h.ch.Insert(ctx, "chalkline.schedule_conflicts", rows)
}

// InsertRun records the sweep summary row
func (h *history) InsertRun(ctx context.Context, run domain.RunSummary) error {
	return h.ch.Insert(ctx, "chalkline.conflict_runs", [][]any{{
		run.RunID,
		run.RunAt,
		uint32(run.Total),
		uint32(run.ElapsedMS),
	}})
}
