// Package workflow models the lifecycle of a single calculator request.
package workflow

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event is not allowed in the current phase.
var ErrInvalidTransition = errors.New("invalid state transition")

// Phase is the tag of a State.
type Phase int

// Phases of a request.
const (
	Idle Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a tagged union of Idle, Loading, Ready(result) and Failed(err).
// The result is only reachable in Ready and the error only in Failed.
type State[R any] struct {
	result R
	err    error
	phase  Phase
}

// Phase returns the current tag.
func (s State[R]) Phase() Phase {
	return s.phase
}

// Result returns the result when Ready.
func (s State[R]) Result() (R, bool) {
	if s.phase != Ready {
		var zero R
		return zero, false
	}
	return s.result, true
}

// Err returns the failure when Failed.
func (s State[R]) Err() error {
	if s.phase != Failed {
		return nil
	}
	return s.err
}

func (s State[R]) invalid(event string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, event, s.phase)
}

// Submit starts a request. Any phase but Loading may submit.
func (s State[R]) Submit() (State[R], error) {
	if s.phase == Loading {
		return s, s.invalid("submit")
	}
	return State[R]{phase: Loading}, nil
}

// Resolve completes a pending request with a result.
func (s State[R]) Resolve(result R) (State[R], error) {
	if s.phase != Loading {
		return s, s.invalid("resolve")
	}
	return State[R]{phase: Ready, result: result}, nil
}

// Fail completes a pending request with an error.
func (s State[R]) Fail(err error) (State[R], error) {
	if s.phase != Loading {
		return s, s.invalid("fail")
	}
	if err == nil {
		return s, fmt.Errorf("%w: fail with nil error", ErrInvalidTransition)
	}
	return State[R]{phase: Failed, err: err}, nil
}

// Clear returns to Idle from any phase except Loading.
func (s State[R]) Clear() (State[R], error) {
	if s.phase == Loading {
		return s, s.invalid("clear")
	}
	return State[R]{}, nil
}
