package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"chalkline/internal/modkit"
	"chalkline/internal/modkit/module"
	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/config"
	"chalkline/internal/platform/logger"
	"chalkline/internal/platform/store"

	confmod "chalkline/internal/services/api/conflicts/module"
	auditdom "chalkline/internal/services/audit/domain"
	auditmod "chalkline/internal/services/audit/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled:    true,
			URL:        chCfg.MustString("DBURL"),
			ClientName: "chalkline",
			ClientTag:  "audit",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when a backend is unreachable
	repokit.MustGuard(context.Background(), st)

	var (
		once     = flag.Bool("once", false, "run a single sweep and exit")
		dryRun   = flag.Bool("dry-run", false, "compute but do not write findings")
		interval = flag.Duration("interval", 0, "sweep interval (0 = CORE_AUDIT_INTERVAL or 1h)")
		weeks    = flag.Int("weeks", 0, "term length in weeks (0 = detector default)")
	)
	flag.Parse()

	// Pass CLI flags into CORE_AUDIT_* so the module can read its own config
	if *interval > 0 {
		mustSetEnv("CORE_AUDIT_INTERVAL", interval.String())
	}
	mustSetEnv("CORE_AUDIT_TERM_WEEKS", strconv.Itoa(*weeks))
	mustSetEnv("CORE_AUDIT_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	// Build the scanner module first
	cm := confmod.New(deps)

	// Build the audit module with the scanner port injected
	am := auditmod.New(
		deps,
		auditmod.Options{
			Interval:  *interval,
			TermWeeks: *weeks,
			DryRun:    *dryRun,
		},
		modkit.WithPorts(auditdom.Ports{
			Scanner: module.MustPortsOf[confmod.Ports](cm).Scanner,
		}),
	)

	// Register ports
	module.Register(cm.Name(), cm.Ports())
	module.Register(am.Name(), am.Ports())

	ports := am.Ports().(auditmod.Ports)
	if *once {
		if _, err := ports.Runner.RunOnce(context.Background()); err != nil {
			l.Fatal().Err(err).Msg("audit sweep failed")
		}
		return
	}
	if err := ports.Runner.Run(context.Background()); err != nil && err != context.Canceled {
		l.Fatal().Err(err).Msg("audit runner stopped")
	}
}
