// Package domain defines the audit worker contracts
package domain

import (
	"context"

	confdom "chalkline/internal/services/api/conflicts/domain"
)

// RunnerPort drives scheduled conflict sweeps over the stored timetable
type RunnerPort interface {
	// Run blocks, sweeping once immediately and then on every interval tick
	Run(ctx context.Context) error

	// RunOnce performs a single sweep and returns its summary
	RunOnce(ctx context.Context) (RunSummary, error)
}

// HistoryRepo persists sweep results to columnar storage
type HistoryRepo interface {
	InsertFindings(ctx context.Context, run RunSummary, findings []confdom.Finding) error
	InsertRun(ctx context.Context, run RunSummary) error
}

// Ports are the cross-module dependencies the audit module needs injected
type Ports struct {
	Scanner confdom.ScannerPort
}
