// Package pg wraps pgxpool with slow-query tracing for the relational side
// of the store (careers, groups, teachers, classrooms, events)
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config carries pool sizing and the slow-query threshold
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// PG owns the connection pool plus its optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// Option mutates PG during Open
type Option func(*PG) error

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies the optional pool mutator, and dials the pool.
// tracer may be nil
func Open(ctx context.Context, cfg Config, tracer QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{
		Pool:   pool,
		Tracer: tracer,
		SlowMs: cfg.SlowMs,
	}, nil
}

// Close releases the pool. Safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
