package formstate

import "sync"

// Observer is notified after every completed transition. It is called
// outside the machine's lock, so it may call back into the machine.
type Observer func(from, to State, event Event)

// Machine is a thread-safe form lifecycle state machine.
// Uses a nested map structure for O(1) transition lookups: [fromState][event]toState
type Machine struct {
	current     State
	transitions map[State]map[Event]State
	observer    Observer
	mu          sync.RWMutex
}

// Option configures a machine during construction.
type Option func(*Machine)

// WithObserver registers a transition observer, typically for logging.
func WithObserver(fn Observer) Option {
	return func(m *Machine) {
		m.observer = fn
	}
}

// New creates a form lifecycle machine starting at StateIdle.
func New(opts ...Option) *Machine {
	m := &Machine{
		current:     StateIdle,
		transitions: lifecycle(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the current state is one of the given states.
func (m *Machine) Is(states ...State) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range states {
		if m.current == s {
			return true
		}
	}
	return false
}

// Fire applies the event and returns the resulting state. When the current
// state has no transition for the event, the state is left untouched and an
// ErrNoTransition is returned; callers decide whether that is a hard error
// or an ignorable stale trigger.
func (m *Machine) Fire(event Event) (State, error) {
	if event == "" {
		return m.Current(), ErrInvalidEvent
	}

	m.mu.Lock()

	from := m.current
	to, ok := m.transitions[from][event]
	if !ok {
		m.mu.Unlock()
		return from, NewErrNoTransition(from, event)
	}

	m.current = to
	observer := m.observer
	m.mu.Unlock()

	if observer != nil {
		observer(from, to, event)
	}

	return to, nil
}

// CanFire reports whether the event has a transition from the current state.
func (m *Machine) CanFire(event Event) bool {
	if event == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.transitions[m.current][event]
	return ok
}

// Reset forces the machine back to StateIdle without firing an event and
// without notifying the observer. Prefer Fire(EventReset) in normal flows.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = StateIdle
}
