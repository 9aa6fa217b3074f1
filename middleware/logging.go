package middleware

import (
	"log/slog"
	"time"

	"github.com/kavinforever/redux"
)

// Logging returns middleware that logs every dispatch with its action type,
// duration, and outcome.
func Logging[S any](logger *slog.Logger) Middleware[S] {
	return func(StoreAPI[S]) func(redux.DispatchFunc) redux.DispatchFunc {
		return func(next redux.DispatchFunc) redux.DispatchFunc {
			return func(action redux.Action) (redux.Action, error) {
				start := time.Now()
				out, err := next(action)
				elapsed := time.Since(start)

				if err != nil {
					logger.Error("dispatch failed",
						slog.Any("action_type", action.Type),
						slog.Duration("elapsed", elapsed),
						slog.String("error", err.Error()),
					)
				} else {
					logger.Info("dispatch completed",
						slog.Any("action_type", action.Type),
						slog.Duration("elapsed", elapsed),
					)
				}

				return out, err
			}
		}
	}
}
