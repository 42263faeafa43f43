// Package api provides the HTTP API for the application
package api

import (
	"context"
	"fmt"
	"time"

	"chalkline/internal/platform/config"
	"chalkline/internal/platform/logger"
	phttp "chalkline/internal/platform/net/http"
	"chalkline/internal/platform/store"

	"chalkline/internal/modkit"
	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/modkit/module"
	"chalkline/internal/modkit/repokit"
	"chalkline/internal/modkit/swaggerkit"

	careersmod "chalkline/internal/services/api/careers/module"
	roomsmod "chalkline/internal/services/api/classrooms/module"
	confmod "chalkline/internal/services/api/conflicts/module"
	groupsmod "chalkline/internal/services/api/groups/module"
	metamod "chalkline/internal/services/api/meta/module"
	schedmod "chalkline/internal/services/api/schedule/module"
	teachersmod "chalkline/internal/services/api/teachers/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// every API transaction gets a server-side statement timeout
	pg := repokit.WithBeginHooks(opt.Store.PG, statementTimeout(opt.Config))

	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  pg,
		CH:  opt.Store.CH,
	}

	mods := []module.Module{
		metamod.New(deps),
		careersmod.New(deps),
		teachersmod.New(deps),
		roomsmod.New(deps),
		groupsmod.New(deps),
		schedmod.New(deps),
		confmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// statementTimeout caps how long any API transaction may hold the database
// reads CORE_API_STATEMENT_TIMEOUT, default 30s
func statementTimeout(cfg config.Conf) repokit.BeginHook {
	ms := cfg.MayDuration("STATEMENT_TIMEOUT", 30*time.Second).Milliseconds()
	sql := fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)
	return func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, sql)
		return err
	}
}
