package redux

import (
	"fmt"
	"log/slog"
	"sort"
)

// CombineReducers merges per-key reducers into a single reducer over a
// map-shaped state. Each sub-reducer owns the slice of state stored under
// its key and sees only that slice; the combined reducer assembles their
// outputs into a fresh map on every invocation.
//
// Sub-reducers are validated up front: each must return a non-nil initial
// state when probed with the reserved init action, and must pass unknown
// action types through to a default branch rather than handling them.
// Keys are iterated in sorted order so reducer invocation order is
// deterministic.
func CombineReducers(reducers map[string]Reducer[any]) (Reducer[map[string]any], error) {
	if len(reducers) == 0 {
		return nil, fmt.Errorf("%w: no reducers to combine", ErrNilReducer)
	}

	keys := make([]string, 0, len(reducers))
	for key, r := range reducers {
		if r == nil {
			return nil, fmt.Errorf("%w: key %q", ErrNilReducer, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := assertReducerShape(key, reducers[key]); err != nil {
			return nil, err
		}
	}

	// Unexpected state keys are ignored; warn once per key so a shape
	// mismatch between preloaded state and reducers is visible.
	warned := make(map[string]bool)

	return func(state map[string]any, action Action) map[string]any {
		for key := range state {
			if _, ok := reducers[key]; !ok && !warned[key] {
				warned[key] = true
				slog.Warn("redux: state key has no reducer and will be ignored",
					slog.String("key", key),
				)
			}
		}

		next := make(map[string]any, len(keys))
		for _, key := range keys {
			next[key] = reducers[key](state[key], action)
		}
		return next
	}, nil
}

// assertReducerShape probes r with the reserved init action and a random
// unknown action. A nil return for either means the reducer has no explicit
// initial state or swallows unknown types, both of which would corrupt the
// combined shape silently at dispatch time.
func assertReducerShape(key string, r Reducer[any]) error {
	if initial := r(nil, Action{Type: typeInit}); initial == nil {
		return fmt.Errorf("%w: key %q for the reserved init action; return an explicit initial state instead of nil", ErrInvalidReducerShape, key)
	}
	if probed := r(nil, Action{Type: probeType()}); probed == nil {
		return fmt.Errorf("%w: key %q for an unknown action type; unknown actions must fall through to the current state or the initial state", ErrInvalidReducerShape, key)
	}
	return nil
}
