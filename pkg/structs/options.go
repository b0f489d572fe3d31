package structs

import (
	"time"
)

const (
	defStuckAfter   = 4 * time.Hour
	defAuditRetries = 5
)

// Options configure the job service.
type Options struct {
	// TransitionPolicy decides if status changes must follow the lifecycle
	// (strict) or may jump to any status (permissive). Defaults to strict.
	TransitionPolicy TransitionPolicy

	// StuckAfter is how long an unfinished job may go without an update before
	// diagnostics reports it as stuck.
	StuckAfter time.Duration

	// AuditRetries is how many times a failed change log write is retried
	// in the background before being given up on.
	AuditRetries int
}

func (o *Options) SetDefaults() {
	if o.TransitionPolicy == "" {
		o.TransitionPolicy = PolicyStrict
	}
	if o.StuckAfter <= 0 {
		o.StuckAfter = defStuckAfter
	}
	if o.AuditRetries <= 0 {
		o.AuditRetries = defAuditRetries
	}
}
