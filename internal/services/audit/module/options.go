package module

import (
	"time"

	"chalkline/internal/platform/config"
)

// Options holds configuration settings for the audit module
type Options struct {
	Interval  time.Duration
	TermWeeks int
	DryRun    bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_AUDIT_")
	return Options{
		Interval:  af.MayDuration("INTERVAL", time.Hour),
		TermWeeks: af.MayInt("TERM_WEEKS", 0),
		DryRun:    af.MayBool("DRY_RUN", false),
	}
}
