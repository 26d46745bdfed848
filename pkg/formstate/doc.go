// Package formstate models the submission lifecycle of a single form as a
// small finite state machine with four states: idle, loading, error and
// success.
//
// The transition table is fixed and intentionally sparse. Events that have no
// entry for the current state return ErrNoTransition while leaving the state
// untouched; the caller treats those as ignorable stale or illegal triggers.
// Two gaps carry the core guarantees:
//  1. loading has no submit transition, so a duplicate submission attempt
//     while a request is in flight cannot start a second request
//  2. success only accepts expire and reset, because the controls stay
//     disabled until the success display window ends
//
// # Architecture
//
// Machine uses an in-memory nested map structure map[State][Event]State for
// O(1) lookups and guards all access with a RWMutex. Configuration uses the
// functional options pattern; the only option is an Observer callback that is
// invoked after each completed transition, outside the lock.
//
// # Usage
//
//	machine := formstate.New(
//	    formstate.WithObserver(func(from, to formstate.State, event formstate.Event) {
//	        slog.Debug("form transition", "from", from, "to", to, "event", event)
//	    }),
//	)
//
//	if _, err := machine.Fire(formstate.EventSubmit); err != nil {
//	    if formstate.IsNoTransitionError(err) {
//	        // already loading; ignore the duplicate submit
//	    }
//	}
//
// The machine holds no timers and performs no side effects; showing messages,
// toggling controls and scheduling the success auto-reset belong to the
// caller that owns the rendering surface.
package formstate
