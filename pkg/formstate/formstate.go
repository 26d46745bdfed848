package formstate

// State is a phase of the form submission lifecycle.
type State string

const (
	// StateIdle is the resting state: no errors shown, controls enabled.
	StateIdle State = "idle"
	// StateLoading pins the form while a submission is in flight.
	StateLoading State = "loading"
	// StateError shows validation or server errors, controls enabled.
	StateError State = "error"
	// StateSuccess shows the success message until the auto-reset fires.
	StateSuccess State = "success"
)

// Event triggers a transition between lifecycle states.
type Event string

const (
	// EventSubmit starts a submission after local validation passed.
	EventSubmit Event = "submit"
	// EventReject records a local validation failure without entering loading.
	EventReject Event = "reject"
	// EventResolve completes an in-flight submission successfully.
	EventResolve Event = "resolve"
	// EventFail completes an in-flight submission with an error.
	EventFail Event = "fail"
	// EventExpire ends the success display window.
	EventExpire Event = "expire"
	// EventReset returns the form to idle from any state.
	EventReset Event = "reset"
)

// lifecycle is the fixed transition table. A missing entry means the event is
// illegal in that state and must be ignored by callers; notably there is no
// submit transition out of loading, which is what rejects duplicate
// submissions, and none out of success, where controls are still disabled.
func lifecycle() map[State]map[Event]State {
	return map[State]map[Event]State{
		StateIdle: {
			EventSubmit: StateLoading,
			EventReject: StateError,
			EventReset:  StateIdle,
		},
		StateLoading: {
			EventResolve: StateSuccess,
			EventFail:    StateError,
			EventReset:   StateIdle,
		},
		StateError: {
			EventSubmit: StateLoading,
			EventReject: StateError,
			EventReset:  StateIdle,
		},
		StateSuccess: {
			EventExpire: StateIdle,
			EventReset:  StateIdle,
		},
	}
}
