// Package state implements the simulation's global state machine.
//
// Transitions are queued with Set and applied once per frame with Apply, so every
// system in a frame observes the same state.
package state

import "log/slog"

// SimState is the global simulation state.
type SimState uint8

const (
	Loading SimState = iota // assets and camera are being prepared
	InitSim                 // world and population are being created
	Simulating
	Paused
)

func (s SimState) String() string {
	switch s {
	case Loading:
		return "loading"
	case InitSim:
		return "init_sim"
	case Simulating:
		return "simulating"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Hook runs when a state is entered or exited.
type Hook func()

// Machine holds the current state and the transition queued for the next Apply.
type Machine struct {
	current SimState
	next    SimState
	pending bool

	onEnter map[SimState][]Hook
	onExit  map[SimState][]Hook

	// entered tracks whether OnEnter hooks of the initial state have run.
	entered bool
}

// NewMachine creates a machine in the Loading state.
// OnEnter(Loading) hooks run on the first Apply.
func NewMachine() *Machine {
	return &Machine{
		current: Loading,
		onEnter: make(map[SimState][]Hook),
		onExit:  make(map[SimState][]Hook),
	}
}

// Current returns the active state.
func (m *Machine) Current() SimState {
	return m.current
}

// In reports whether s is the active state.
func (m *Machine) In(s SimState) bool {
	return m.current == s
}

// Next returns the queued state, if any.
func (m *Machine) Next() (SimState, bool) {
	return m.next, m.pending
}

// Set queues a transition. The last call before Apply wins.
func (m *Machine) Set(next SimState) {
	m.next = next
	m.pending = true
}

// OnEnter registers a hook that runs when s becomes active.
func (m *Machine) OnEnter(s SimState, fn Hook) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// OnExit registers a hook that runs when s stops being active.
func (m *Machine) OnExit(s SimState, fn Hook) {
	m.onExit[s] = append(m.onExit[s], fn)
}

// Apply performs the queued transition, running exit hooks of the old state and
// enter hooks of the new one. Queuing the current state clears the queue without
// running hooks. Returns true if the state changed.
//
// Hooks may call Set; the resulting transition is applied on the next Apply.
func (m *Machine) Apply() bool {
	// Only a transition queued before this call is applied here
	next, pending := m.next, m.pending
	m.pending = false

	if !m.entered {
		m.entered = true
		m.run(m.onEnter[m.current])
	}

	if !pending {
		return false
	}

	if next == m.current {
		return false
	}

	prev := m.current
	m.run(m.onExit[prev])
	m.current = next
	slog.Info("state transition", "from", prev.String(), "to", next.String())
	m.run(m.onEnter[next])
	return true
}

func (m *Machine) run(hooks []Hook) {
	for _, fn := range hooks {
		fn()
	}
}

// TogglePause queues Simulating -> Paused or Paused -> Simulating.
// Other states are left alone.
func TogglePause(m *Machine) {
	switch m.current {
	case Simulating:
		m.Set(Paused)
	case Paused:
		m.Set(Simulating)
	}
}
