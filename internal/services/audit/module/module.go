// Package module implements the audit module
package module

import (
	"net/http"

	"chalkline/internal/modkit"
	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/audit/domain"
	"chalkline/internal/services/audit/repo"
	"chalkline/internal/services/audit/service"
)

// Ports exposed by the audit module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new audit module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("audit"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("audit module: expected WithPorts(audit/domain.Ports)")
	}
	if ports.Scanner == nil {
		panic("audit module: Ports missing Scanner")
	}
	if deps.CH == nil {
		panic("audit module: requires a Clickhouse seam")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Interval != 0 {
		cfg.Interval = overrides.Interval
	}
	if overrides.TermWeeks != 0 {
		cfg.TermWeeks = overrides.TermWeeks
	}
	// bool override wins (defaults false if caller didn't set)
	cfg.DryRun = overrides.DryRun

	runner := service.New(
		ports.Scanner,
		repo.NewHistory(deps.CH),
		service.Config{
			Interval:  cfg.Interval,
			TermWeeks: cfg.TermWeeks,
			DryRun:    cfg.DryRun,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "audit" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
