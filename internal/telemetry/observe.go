// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package telemetry

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/diet-reader/internal/session"
)

// Tracer starts spans for traced operations. A nil *Tracer records nothing.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer wraps a tracer obtained from any provider.
func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(tracerName)}
}

// Observe runs fn inside a span called name. The span is tagged with the
// function name, args as JSON, and the session carried by ctx. On success the
// result is attached as the observation output; on failure the error is
// recorded. The span ends on every path, including a panic in fn, which is
// re-raised.
func Observe[T any](ctx context.Context, tr *Tracer, name string, args map[string]any, fn func(context.Context) (T, error)) (result T, err error) {
	if tr == nil {
		return fn(ctx)
	}

	ctx, span := tr.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(functionNameAttr(name))
	if args != nil {
		if b, mErr := json.Marshal(args); mErr == nil {
			span.SetAttributes(functionArgsAttr(string(b)), observationInputAttr(string(b)))
		}
	}
	if s := session.FromContext(ctx); s != nil {
		span.SetAttributes(sessionIDAttr(s.ID()))
	}

	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, fmt.Sprint(r))
			span.End()
			panic(r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else if b, mErr := json.Marshal(result); mErr == nil {
			span.SetAttributes(observationOutputAttr(string(b)))
		}
		span.End()
	}()

	return fn(ctx)
}
