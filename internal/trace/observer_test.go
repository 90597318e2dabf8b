package trace

import (
	"context"
	"testing"
	"time"

	"paymaker/internal/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestProvider(t *testing.T) (*Provider, *tracetest.InMemoryExporter) {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	p := newProvider(sdktrace.WithSyncer(exp), "")
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, exp
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), "", "paymaker")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.Nil(t, NewRunObserver(p.Tracer()))
}

func TestRunObserver_CompletedRun(t *testing.T) {
	p, exp := newTestProvider(t)
	obs := NewRunObserver(p.Tracer())

	a := counter.NewAnimator()
	a.Observer = obs
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a.Pay()
	a.Tick(base)
	a.Tick(base.Add(counter.Duration))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, SpanName, s.Name)
	assert.Equal(t, codes.Ok, s.Status.Code)
	attrs := attrMap(s.Attributes)
	assert.Equal(t, int64(1000), attrs["paymaker.counter.start"].AsInt64())
	assert.Equal(t, int64(1100), attrs["paymaker.counter.end"].AsInt64())
	assert.Equal(t, int64(1100), attrs["paymaker.counter.displayed"].AsInt64())
	assert.True(t, attrs["paymaker.counter.completed"].AsBool())
}

func TestRunObserver_ReplacedAndCancelledRuns(t *testing.T) {
	p, exp := newTestProvider(t)
	a := counter.NewAnimator()
	a.Observer = NewRunObserver(p.Tracer())

	a.Pay()
	a.Pay()
	a.Cancel()

	spans := exp.GetSpans()
	require.Len(t, spans, 2)
	for _, s := range spans {
		assert.False(t, attrMap(s.Attributes)["paymaker.counter.completed"].AsBool())
		require.Len(t, s.Events, 1)
		assert.Equal(t, "interrupted", s.Events[0].Name)
	}
	second := attrMap(spans[1].Attributes)
	assert.Equal(t, int64(1000), second["paymaker.counter.start"].AsInt64(), "no frame ran, so the counter had not moved")
	assert.Equal(t, int64(1200), second["paymaker.counter.end"].AsInt64())
}

func TestRunObserver_NilIsSafe(t *testing.T) {
	var o *RunObserver
	o.OnRunStart(counter.Run{})
	o.OnRunEnd(counter.Run{}, 0, true)
}
