package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kavinforever/redux"
)

// meterName is the instrumentation scope name for redux metrics.
const meterName = "github.com/kavinforever/redux/middleware"

// Metrics returns middleware that records per-dispatch metrics using the
// global OTel MeterProvider. If no MeterProvider is configured, noop
// instruments are used and this middleware becomes a pass-through.
//
// Instruments:
//   - redux.dispatch.duration (Float64Histogram): dispatch time in seconds,
//     with attributes: action_type, status ("ok" or "error")
//   - redux.dispatch.count (Int64Counter): total dispatches,
//     with attributes: action_type, status ("ok" or "error")
func Metrics[S any]() Middleware[S] {
	meter := otel.Meter(meterName)
	return MetricsWithMeter[S](meter)
}

// MetricsWithMeter returns metrics middleware using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter[S any](meter metric.Meter) Middleware[S] {
	// Create instruments once at middleware construction time.
	// OTel instruments are safe for concurrent use. On error, the API
	// returns noop instruments so the middleware degrades gracefully.
	duration, dErr := meter.Float64Histogram(
		"redux.dispatch.duration",
		metric.WithDescription("Duration of dispatch in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	dispatches, cErr := meter.Int64Counter(
		"redux.dispatch.count",
		metric.WithDescription("Total number of dispatches"),
		metric.WithUnit("{dispatch}"),
	)
	_ = cErr // noop fallback guaranteed by OTel API contract

	return func(StoreAPI[S]) func(redux.DispatchFunc) redux.DispatchFunc {
		return func(next redux.DispatchFunc) redux.DispatchFunc {
			return func(action redux.Action) (redux.Action, error) {
				start := time.Now()
				out, err := next(action)
				elapsed := time.Since(start).Seconds()

				status := "ok"
				if err != nil {
					status = "error"
				}

				attrs := metric.WithAttributes(
					attribute.String("action_type", fmt.Sprint(action.Type)),
					attribute.String("status", status),
				)

				ctx := context.Background()
				duration.Record(ctx, elapsed, attrs)
				dispatches.Add(ctx, 1, attrs)

				return out, err
			}
		}
	}
}
