package station

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestTracer(t *testing.T) (trace.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider.Tracer("station-test"), recorder
}

func TestChannel_PublishSpan(t *testing.T) {
	tracer, recorder := newTestTracer(t)

	ch := NewChannel[string]("orders", WithTracer(tracer))
	ch.Subscribe(func(string) {})
	ch.Subscribe(func(string) {})

	ch.Publish("x")

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	require.Equal(t, spanPublish, span.Name())
	require.Equal(t, trace.SpanKindInternal, span.SpanKind())
	require.Contains(t, span.Attributes(), attribute.String("station.channel", "orders"))
	require.Contains(t, span.Attributes(), attribute.Int("station.subscribers", 2))
	require.Contains(t, span.Attributes(), attribute.Int("station.delivered", 2))
}

func TestChannel_PublishSpanCountsSkippedSubscribers(t *testing.T) {
	tracer, recorder := newTestTracer(t)

	ch := NewChannel[string]("orders", WithTracer(tracer))
	var late *Subscription[string]
	ch.Subscribe(func(string) { ch.Unsubscribe(late) })
	late = ch.Subscribe(func(string) {})

	ch.Publish("x")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Contains(t, spans[0].Attributes(), attribute.Int("station.subscribers", 2))
	require.Contains(t, spans[0].Attributes(), attribute.Int("station.delivered", 1))
}

func TestChannel_NoTracerNoSpans(t *testing.T) {
	_, recorder := newTestTracer(t)

	ch := NewChannel[string]("orders")
	ch.Subscribe(func(string) {})
	ch.Publish("x")

	require.Empty(t, recorder.Ended())
}

func TestStation_TracerAppliedToEveryChannel(t *testing.T) {
	tracer, recorder := newTestTracer(t)

	st, err := New[None]([]string{"a", "b"}, WithTracer(tracer))
	require.NoError(t, err)

	a, err := st.Channel("a")
	require.NoError(t, err)
	b, err := st.Channel("b")
	require.NoError(t, err)

	Notify(a)
	Notify(b)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
}
