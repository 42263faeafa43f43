package domain

import "time"

// RunSummary describes one completed sweep
type RunSummary struct {
	RunID     string         `json:"run_id"`
	RunAt     time.Time      `json:"run_at"`
	Total     int            `json:"total"`
	Totals    map[string]int `json:"totals"`
	ElapsedMS int            `json:"elapsed_ms"`
	DryRun    bool           `json:"dry_run"`
}
