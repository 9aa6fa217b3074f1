package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kavinforever/redux"
)

// tracerName is the instrumentation scope name for redux tracing.
const tracerName = "github.com/kavinforever/redux/middleware"

// Tracing returns middleware that wraps each dispatch in an OpenTelemetry
// span. If no TracerProvider is configured globally, the default noop
// tracer is used and this middleware becomes a pass-through with zero
// overhead.
//
// Span attributes include: redux.action_type. On error, the span status is
// set to codes.Error with the error message.
func Tracing[S any]() Middleware[S] {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer[S](tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer[S any](tracer trace.Tracer) Middleware[S] {
	return func(StoreAPI[S]) func(redux.DispatchFunc) redux.DispatchFunc {
		return func(next redux.DispatchFunc) redux.DispatchFunc {
			return func(action redux.Action) (redux.Action, error) {
				// Dispatch is synchronous and carries no caller context.
				_, span := tracer.Start(context.Background(), "redux.dispatch",
					trace.WithAttributes(
						attribute.String("redux.action_type", fmt.Sprint(action.Type)),
					),
					trace.WithSpanKind(trace.SpanKindInternal),
				)
				defer span.End()

				out, err := next(action)
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				} else {
					span.SetStatus(codes.Ok, "")
				}

				return out, err
			}
		}
	}
}
