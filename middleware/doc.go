// Package middleware provides composable dispatch-wrapping middleware for
// redux stores. Middleware wraps Dispatch synchronously and can observe or
// transform an action before it reaches the base store (log, recover from
// panics, record metrics, add tracing, etc.).
//
// Middleware are installed at construction time through the enhancer built
// by Apply:
//
//	store, err := redux.New(reducer,
//	    redux.WithEnhancer(middleware.Apply(
//	        middleware.Logging[State](logger),
//	        middleware.Recover[State](logger),
//	        middleware.Metrics[State](),
//	    )),
//	)
//
// The first middleware in the list is the outermost wrapper and sees every
// dispatched action first.
package middleware
