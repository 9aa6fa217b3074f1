package redux

import "errors"

var (
	// Configuration errors.
	ErrNilReducer       = errors.New("redux: reducer must be non-nil")
	ErrNilListener      = errors.New("redux: listener must be non-nil")
	ErrNilObserver      = errors.New("redux: observer must be non-nil")
	ErrNilEnhancer      = errors.New("redux: enhancer must be non-nil")
	ErrNilDispatch      = errors.New("redux: dispatch function must be non-nil")
	ErrNilActionCreator = errors.New("redux: action creator must be non-nil")

	// Action validation errors.
	ErrMissingActionType = errors.New("redux: action type must not be nil")
	ErrInvalidActionType = errors.New("redux: action type must be a comparable value")

	// Reducer contract errors.
	ErrInvalidReducerShape = errors.New("redux: reducer returned nil state")

	// Reentrancy errors.
	ErrDispatchInProgress = errors.New("redux: store access not allowed while the reducer is executing")
)
