package eventqueue

import "log/slog"

// DefaultName is the component name attached to log records when none is set.
const DefaultName = "eventqueue"

type options struct {
	logger      *slog.Logger
	name        string
	logDispatch bool
}

// Option configures a Queue.
type Option func(*options)

// WithLogger configures structured logging for queue operations.
// By default records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets the component name attached to every log record.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithDispatchLogging emits a debug record for every fired event with the
// number of handlers invoked and the time the pass took.
func WithDispatchLogging(enabled bool) Option {
	return func(o *options) {
		o.logDispatch = enabled
	}
}
