package spacing

import "log/slog"

// TrackerOption configures a Tracker during creation.
//
// Example:
//
//	var faults spacing.FaultRecorder
//	d := spacing.NewTracker(
//	    spacing.WithLogger(logger),
//	    spacing.WithFaultHandler(faults.Handle),
//	)
type TrackerOption func(*trackerOptions)

// trackerOptions holds optional configuration for Tracker creation.
type trackerOptions struct {
	logger  *slog.Logger
	onFault FaultHandler
}

// defaultOptions returns the default tracker options.
func defaultOptions() trackerOptions {
	return trackerOptions{
		logger:  nil, // Resolved to Logger() at creation time
		onFault: nil, // Faults are only logged
	}
}

// WithLogger sets the logger the tracker reports faults to.
// A nil logger falls back to the package default from [Logger].
func WithLogger(l *slog.Logger) TrackerOption {
	return func(o *trackerOptions) {
		o.logger = l
	}
}

// WithFaultHandler installs a callback that observes every fault the
// tracker reports, in addition to logging it. Tests use it to check
// contract violations deterministically.
func WithFaultHandler(h FaultHandler) TrackerOption {
	return func(o *trackerOptions) {
		o.onFault = h
	}
}

func resolveOptions(opts []TrackerOption) trackerOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}
