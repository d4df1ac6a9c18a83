package station

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	tracer trace.Tracer
}

// Option configures a channel, or every channel of a station when passed to
// New.
type Option func(*options)

// WithLogger sets the logger for debug-level subscription and publish events.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTracer enables one span per publish fan-out, recorded against the given
// tracer. The default is no tracing.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
