package gomoryhu

import (
	"context"

	"github.com/dcrane/gokcut/flow"
	"github.com/dcrane/gokcut/ghlog"
)

// Options configures a Gomory–Hu builder run.
type Options struct {
	// Root selects the root vertex for BuildGusfield. Root defaults to the
	// lexicographically first vertex id when left empty, so any choice of
	// root vertex is valid but the zero value stays reproducible across
	// runs. Ignored by BuildClassical.
	Root string

	// Flow configures every max-flow sub-computation the builder performs.
	// A zero value is filled in with flow.DefaultOptions()'s defaults.
	Flow flow.FlowOptions

	// Logger receives phase timings if non-nil. A nil Logger is a no-op.
	Logger *ghlog.Logger
}

// DefaultOptions returns an Options value with flow.DefaultOptions() and no
// logger; Root is left empty so the builder picks its own default.
func DefaultOptions() Options {
	return Options{Flow: flow.DefaultOptions()}
}

// normalize fills in zero-valued Flow fields with the same defaults
// flow.DefaultOptions() uses, so callers may pass a zero Options{}.
func (o *Options) normalize() {
	if o.Flow.Ctx == nil {
		o.Flow.Ctx = context.Background()
	}
	if o.Flow.Epsilon <= 0 {
		o.Flow.Epsilon = 1e-9
	}
}
