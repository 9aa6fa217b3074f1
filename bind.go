package redux

import "fmt"

// ActionCreator builds an action from call-site arguments.
type ActionCreator func(args ...any) Action

// BoundActionCreator builds an action and dispatches it in one call,
// returning whatever the dispatch returned.
type BoundActionCreator func(args ...any) (Action, error)

// BindActionCreator wraps creator so that calling the result dispatches the
// created action through dispatch. Callers that only hand out the bound
// form never need a reference to the store.
func BindActionCreator(creator ActionCreator, dispatch DispatchFunc) (BoundActionCreator, error) {
	if creator == nil {
		return nil, ErrNilActionCreator
	}
	if dispatch == nil {
		return nil, ErrNilDispatch
	}
	return func(args ...any) (Action, error) {
		return dispatch(creator(args...))
	}, nil
}

// BindActionCreators binds every creator in the map to dispatch, keeping
// the keys. A nil creator under any key fails the whole call.
func BindActionCreators(creators map[string]ActionCreator, dispatch DispatchFunc) (map[string]BoundActionCreator, error) {
	if dispatch == nil {
		return nil, ErrNilDispatch
	}
	bound := make(map[string]BoundActionCreator, len(creators))
	for key, creator := range creators {
		if creator == nil {
			return nil, fmt.Errorf("%w: key %q", ErrNilActionCreator, key)
		}
		b, err := BindActionCreator(creator, dispatch)
		if err != nil {
			return nil, err
		}
		bound[key] = b
	}
	return bound, nil
}
