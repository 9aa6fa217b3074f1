package redux

import "fmt"

// Reducer is a pure function mapping the current state and an action to the
// next state. Reducers must not mutate their input and must not call back
// into the store that is invoking them.
type Reducer[S any] func(state S, action Action) S

// Listener is a zero-argument callback invoked after each successful
// dispatch. Read the committed state with Store.State from inside it.
type Listener func()

// UnsubscribeFunc removes a listener registration. It is idempotent: calls
// after the first have no effect. It fails with ErrDispatchInProgress when
// invoked while the reducer is executing, and removal never affects a
// notification pass already underway.
type UnsubscribeFunc func() error

// DispatchFunc is the shape of Store.Dispatch. Middleware layers map one
// DispatchFunc to another and are chained with Compose.
type DispatchFunc func(action Action) (Action, error)

// Creator builds an unenhanced store from a reducer and a preloaded state.
// The zero value of S stands in for an absent preloaded state.
type Creator[S any] func(reducer Reducer[S], preloaded S) (Store[S], error)

// Enhancer wraps store construction. It receives the raw Creator and
// returns a replacement, which lets external code decorate the finished
// store, typically its Dispatch, before it is handed back to the caller.
// See middleware.Apply for the canonical enhancer.
type Enhancer[S any] func(next Creator[S]) Creator[S]

// Store is a single-writer in-memory state container. It assumes calls
// arrive from one logical goroutine: the engine detects reentrancy, not
// data races between parallel goroutines.
type Store[S any] interface {
	// Dispatch applies action through the current reducer, commits the
	// result, and synchronously notifies the listeners subscribed before
	// this dispatch began, in registration order. It returns the action it
	// was given, unchanged, so wrapping layers can compose return values.
	//
	// A panicking reducer leaves the state untouched and the store usable;
	// the panic propagates to the caller. A panicking listener propagates
	// too and skips the remaining listeners of that pass, but by then the
	// state is already committed.
	Dispatch(action Action) (Action, error)

	// Subscribe registers listener for all future dispatches and returns
	// its unsubscribe handle. A listener added during a notification pass
	// is first invoked by the next dispatch, not the one in progress.
	Subscribe(listener Listener) (UnsubscribeFunc, error)

	// State returns the current state. It fails with ErrDispatchInProgress
	// while the reducer is executing; the reducer already receives the
	// state as an argument.
	State() (S, error)

	// ReplaceReducer swaps the reducer and immediately dispatches the
	// reserved replace action so the new reducer seeds state for its own
	// shape.
	ReplaceReducer(next Reducer[S]) error

	// Observe returns a minimal reactive-interop view of the store.
	Observe() Observable[S]
}

// Option configures New.
type Option[S any] func(*storeConfig[S]) error

type storeConfig[S any] struct {
	preloaded S
	enhancer  Enhancer[S]
}

// WithPreloadedState seeds the store with an initial state. The reducer
// still sees the reserved init action once during construction and may
// refine the preloaded value.
func WithPreloadedState[S any](state S) Option[S] {
	return func(c *storeConfig[S]) error {
		c.preloaded = state
		return nil
	}
}

// WithEnhancer delegates construction to enhancer. The enhancer receives
// the raw constructor and full responsibility for returning the finished
// store, including the initial dispatch.
func WithEnhancer[S any](enhancer Enhancer[S]) Option[S] {
	return func(c *storeConfig[S]) error {
		if enhancer == nil {
			return ErrNilEnhancer
		}
		c.enhancer = enhancer
		return nil
	}
}

// New creates a store holding the state returned by reducer for the
// reserved init action (refining the preloaded state, if any). When an
// enhancer is configured, construction is delegated to it entirely.
func New[S any](reducer Reducer[S], opts ...Option[S]) (Store[S], error) {
	var cfg storeConfig[S]
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.enhancer != nil {
		return cfg.enhancer(newStore[S])(reducer, cfg.preloaded)
	}
	return newStore(reducer, cfg.preloaded)
}

// newStore is the raw Creator behind New. Enhancers receive it as their
// next constructor.
func newStore[S any](reducer Reducer[S], preloaded S) (Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}
	s := &store[S]{reducer: reducer, state: preloaded}
	// Every reducer sees the reserved init action exactly once before the
	// constructor returns; that dispatch establishes the real initial state.
	if _, err := s.Dispatch(Action{Type: typeInit}); err != nil {
		return nil, err
	}
	return s, nil
}

// store is the engine behind New.
type store[S any] struct {
	reducer   Reducer[S]
	state     S
	listeners listenerRegistry

	// dispatching is the reentrancy guard: true only for the duration of a
	// reducer invocation. It is a plain bool, not a lock; the single-writer
	// contract makes fail-fast detection sufficient.
	dispatching bool
}

func (s *store[S]) Dispatch(action Action) (Action, error) {
	if err := action.validate(); err != nil {
		return action, err
	}
	if s.dispatching {
		return action, fmt.Errorf("%w: reducers may not dispatch", ErrDispatchInProgress)
	}

	func() {
		s.dispatching = true
		// Release on every exit path. A panicking reducer must not leave
		// the store stuck in the dispatching state.
		defer func() { s.dispatching = false }()
		s.state = s.reducer(s.state, action)
	}()

	// The guard is down by the time listeners run, so a listener may call
	// back into the store, including dispatching again. Nested dispatches
	// complete, notification pass included, before this loop resumes.
	for _, e := range s.listeners.snapshot() {
		e.fn()
	}
	return action, nil
}

func (s *store[S]) State() (S, error) {
	if s.dispatching {
		var zero S
		return zero, fmt.Errorf("%w: the reducer already receives the state as an argument", ErrDispatchInProgress)
	}
	return s.state, nil
}

func (s *store[S]) Subscribe(listener Listener) (UnsubscribeFunc, error) {
	if listener == nil {
		return nil, ErrNilListener
	}
	if s.dispatching {
		return nil, fmt.Errorf("%w: subscribe from a listener instead", ErrDispatchInProgress)
	}

	id := s.listeners.add(listener)
	subscribed := true
	return func() error {
		if !subscribed {
			return nil
		}
		if s.dispatching {
			return fmt.Errorf("%w: unsubscribe from a listener instead", ErrDispatchInProgress)
		}
		subscribed = false
		s.listeners.remove(id)
		return nil
	}, nil
}

func (s *store[S]) ReplaceReducer(next Reducer[S]) error {
	if next == nil {
		return ErrNilReducer
	}
	s.reducer = next
	// Same contract as construction: the replacement reducer repopulates
	// state for its own shape without an explicit follow-up dispatch.
	_, err := s.Dispatch(Action{Type: typeReplace})
	return err
}
