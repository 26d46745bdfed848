package formstate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEvent is returned when an empty event is fired.
	ErrInvalidEvent = errors.New("invalid event: event cannot be empty")
)

// ErrNoTransition indicates the current state has no transition for the
// fired event. The machine's state is unchanged when this is returned.
type ErrNoTransition struct {
	From  State
	Event Event
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("no transition from state '%s' for event '%s'", e.From, e.Event)
}

func NewErrNoTransition(from State, event Event) *ErrNoTransition {
	return &ErrNoTransition{From: from, Event: event}
}

func IsNoTransitionError(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}
