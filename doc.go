// Package redux provides a minimal single-writer in-memory state container.
// An application holds one store, changes its value only by dispatching
// immutable actions through a pure reducer, and observes committed changes
// through synchronous subscriptions.
//
// Redux is designed as a library, not a service. Create a store from a
// reducer, dispatch actions at it, and subscribe listeners as ordinary Go
// functions.
//
// # Quick Start
//
//	counter := func(state int, action redux.Action) int {
//	    if action.Type == "INCREMENT" {
//	        return state + 1
//	    }
//	    return state
//	}
//
//	store, err := redux.New(counter)
//	if err != nil {
//	    return err
//	}
//	unsubscribe, _ := store.Subscribe(func() {
//	    state, _ := store.State()
//	    fmt.Println("state:", state)
//	})
//	store.Dispatch(redux.Action{Type: "INCREMENT"})
//
// # Architecture
//
// The store owns exactly one state value and one reducer. Dispatch applies
// the reducer, commits its return value wholesale, and then notifies a
// snapshot of the subscribed listeners, in registration order, on the
// caller's goroutine. A reentrancy guard rejects any call back into the
// store while the reducer is executing, so state is never observed
// mid-update.
//
// Construction accepts an enhancer, a wrapper around the raw constructor
// that can decorate the finished store before it is handed back. The
// middleware subpackage builds enhancers that wrap Dispatch with
// cross-cutting layers (logging, recovery, metrics, tracing) chained via
// Compose.
//
// A store assumes calls arrive from a single logical goroutine. The engine
// detects reentrancy, not data races; callers that share a store across
// goroutines must serialize access themselves.
package redux
