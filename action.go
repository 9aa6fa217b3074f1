package redux

import (
	"fmt"
	"reflect"
	"strings"

	"go.jetify.com/typeid/v2"
)

// Action describes an intended state change. Type identifies the action and
// must be a non-nil comparable value, conventionally a string, so reducers
// can switch on it. Payload carries any additional data and is opaque to
// the engine.
type Action struct {
	Type    any
	Payload any
}

// validate checks the minimal shape Dispatch requires. Anything with a
// non-nil comparable Type is accepted; the engine never inspects actions
// beyond that.
func (a Action) validate() error {
	if a.Type == nil {
		return ErrMissingActionType
	}
	if !reflect.TypeOf(a.Type).Comparable() {
		return fmt.Errorf("%w, got %T", ErrInvalidActionType, a.Type)
	}
	return nil
}

// Reserved action types are namespaced with a fixed prefix plus a random
// token generated once per process, so user-defined action types cannot
// collide with them by coincidence.
var (
	typeInit    = "@@redux/INIT" + randomToken()
	typeReplace = "@@redux/REPLACE" + randomToken()
)

// probeType returns a fresh unknown action type. CombineReducers probes
// sub-reducers with it to assert they fall through to a default branch
// instead of handling arbitrary types.
func probeType() string {
	return "@@redux/PROBE_UNKNOWN_ACTION" + randomToken()
}

func randomToken() string {
	tid, err := typeid.Generate("redux")
	if err != nil {
		panic(fmt.Sprintf("redux: generate sentinel token: %v", err))
	}
	return strings.TrimPrefix(tid.String(), "redux")
}
