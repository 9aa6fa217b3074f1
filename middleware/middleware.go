package middleware

import (
	"errors"

	"github.com/kavinforever/redux"
)

// ErrDispatchDuringSetup is returned when middleware dispatches through its
// StoreAPI while the chain is still being constructed. Other middleware may
// not be wired up yet at that point.
var ErrDispatchDuringSetup = errors.New("middleware: dispatching while the chain is being constructed is not allowed")

// StoreAPI is the restricted store view handed to middleware. Dispatch is
// late-bound to the fully assembled chain, so an action dispatched by one
// middleware travels through all of them.
type StoreAPI[S any] interface {
	State() (S, error)
	Dispatch(action redux.Action) (redux.Action, error)
}

// Middleware wraps dispatch with cross-cutting logic. It receives the store
// view once at installation time and returns a layer mapping the next-inner
// dispatch function to a replacement. Layers MUST call next to continue the
// chain (unless short-circuiting on error).
type Middleware[S any] func(api StoreAPI[S]) func(next redux.DispatchFunc) redux.DispatchFunc

// Apply assembles mws into a store enhancer. The enhancer constructs the
// base store, chains the layers with redux.Compose so mws[0] wraps
// outermost, and returns the store with Dispatch replaced by the chain.
func Apply[S any](mws ...Middleware[S]) redux.Enhancer[S] {
	return func(next redux.Creator[S]) redux.Creator[S] {
		return func(reducer redux.Reducer[S], preloaded S) (redux.Store[S], error) {
			base, err := next(reducer, preloaded)
			if err != nil {
				return nil, err
			}

			dispatch := redux.DispatchFunc(func(a redux.Action) (redux.Action, error) {
				return a, ErrDispatchDuringSetup
			})

			api := &storeAPI[S]{store: base, dispatch: &dispatch}
			layers := make([]func(redux.DispatchFunc) redux.DispatchFunc, len(mws))
			for i, mw := range mws {
				layers[i] = mw(api)
			}
			dispatch = redux.Compose(layers...)(base.Dispatch)

			return &enhancedStore[S]{Store: base, dispatch: dispatch}, nil
		}
	}
}

// storeAPI resolves Dispatch through a pointer so middleware installed
// early see the final chain, not the placeholder.
type storeAPI[S any] struct {
	store    redux.Store[S]
	dispatch *redux.DispatchFunc
}

func (a *storeAPI[S]) State() (S, error) { return a.store.State() }

func (a *storeAPI[S]) Dispatch(action redux.Action) (redux.Action, error) {
	return (*a.dispatch)(action)
}

// enhancedStore is the base store with Dispatch decorated by the chain.
type enhancedStore[S any] struct {
	redux.Store[S]
	dispatch redux.DispatchFunc
}

func (s *enhancedStore[S]) Dispatch(action redux.Action) (redux.Action, error) {
	return s.dispatch(action)
}
