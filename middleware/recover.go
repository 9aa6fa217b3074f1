package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/kavinforever/redux"
)

// Recover returns middleware that recovers from panics below it in the
// chain, reducer and listener panics included. Panics are converted to
// errors and logged with a stack trace. The action is returned unchanged,
// but note that a listener panic happens after the state has already
// committed.
func Recover[S any](logger *slog.Logger) Middleware[S] {
	return func(StoreAPI[S]) func(redux.DispatchFunc) redux.DispatchFunc {
		return func(next redux.DispatchFunc) redux.DispatchFunc {
			return func(action redux.Action) (out redux.Action, retErr error) {
				defer func() {
					if r := recover(); r != nil {
						stack := string(debug.Stack())
						logger.Error("dispatch panicked",
							slog.Any("action_type", action.Type),
							slog.Any("panic", r),
							slog.String("stack", stack),
						)
						out = action
						retErr = fmt.Errorf("panic dispatching %v: %v", action.Type, r)
					}
				}()
				return next(action)
			}
		}
	}
}
