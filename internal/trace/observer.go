package trace

import (
	"context"
	"time"

	"paymaker/internal/counter"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanName is the name of the span recorded for each animation run.
const SpanName = "paymaker.counter.run"

// RunObserver records one span per counter run.
// The span opens when Pay creates the run and closes when the run completes,
// is replaced by another Pay, or is cancelled.
type RunObserver struct {
	tracer oteltrace.Tracer
	now    func() time.Time
	span   oteltrace.Span
}

// Ensure RunObserver implements counter.Observer.
var _ counter.Observer = (*RunObserver)(nil)

// NewRunObserver returns an observer using tracer, or nil when tracer is nil.
// A nil *RunObserver ignores every callback.
func NewRunObserver(tracer oteltrace.Tracer) *RunObserver {
	if tracer == nil {
		return nil
	}
	return &RunObserver{tracer: tracer, now: time.Now}
}

// OnRunStart opens the run span.
func (o *RunObserver) OnRunStart(run counter.Run) {
	if o == nil {
		return
	}
	_, o.span = o.tracer.Start(context.Background(), SpanName,
		oteltrace.WithTimestamp(o.now()),
		oteltrace.WithAttributes(
			attribute.Int("paymaker.counter.start", run.Start),
			attribute.Int("paymaker.counter.end", run.End),
		),
	)
}

// OnRunEnd closes the run span.
func (o *RunObserver) OnRunEnd(run counter.Run, displayed int, completed bool) {
	if o == nil || o.span == nil {
		return
	}
	o.span.SetAttributes(
		attribute.Int("paymaker.counter.displayed", displayed),
		attribute.Bool("paymaker.counter.completed", completed),
	)
	if completed {
		o.span.SetStatus(codes.Ok, "")
	} else {
		o.span.AddEvent("interrupted")
	}
	o.span.End(oteltrace.WithTimestamp(o.now()))
	o.span = nil
}
