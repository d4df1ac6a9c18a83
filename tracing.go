package station

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const spanPublish = "station.publish"

// publishSpan wraps the optional span recorded around one publish fan-out.
// The zero value is a pass-through for channels without a tracer.
type publishSpan struct {
	span trace.Span
}

func (c *Channel[T]) startPublishSpan() publishSpan {
	if c.tracer == nil {
		return publishSpan{}
	}
	_, span := c.tracer.Start(context.Background(), spanPublish,
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(attribute.String("station.channel", c.name))
	return publishSpan{span: span}
}

func (p publishSpan) end(subscribers, delivered int) {
	if p.span == nil {
		return
	}
	p.span.SetAttributes(
		attribute.Int("station.subscribers", subscribers),
		attribute.Int("station.delivered", delivered),
	)
	p.span.End()
}
