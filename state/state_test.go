package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachineStartsLoading(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, Loading, m.Current())
	assert.True(t, m.In(Loading))

	_, pending := m.Next()
	assert.False(t, pending)
}

func TestSetIsDeferredUntilApply(t *testing.T) {
	m := NewMachine()
	m.Set(InitSim)

	assert.Equal(t, Loading, m.Current(), "Set must not change state before Apply")
	require.True(t, m.Apply())
	assert.Equal(t, InitSim, m.Current())
}

func TestLastSetWins(t *testing.T) {
	m := NewMachine()
	m.Set(InitSim)
	m.Set(Simulating)
	m.Apply()

	assert.Equal(t, Simulating, m.Current())
}

func TestInitialEnterHookRunsOnFirstApply(t *testing.T) {
	m := NewMachine()
	calls := 0
	m.OnEnter(Loading, func() { calls++ })

	m.Apply()
	m.Apply()

	assert.Equal(t, 1, calls)
}

func TestHooksRunInOrder(t *testing.T) {
	m := NewMachine()
	var order []string
	m.OnExit(Loading, func() { order = append(order, "exit-loading") })
	m.OnEnter(InitSim, func() { order = append(order, "enter-init-1") })
	m.OnEnter(InitSim, func() { order = append(order, "enter-init-2") })

	m.Set(InitSim)
	m.Apply()

	assert.Equal(t, []string{"exit-loading", "enter-init-1", "enter-init-2"}, order)
}

func TestSameStateIsNoop(t *testing.T) {
	m := NewMachine()
	m.Apply()
	entered := 0
	m.OnEnter(Loading, func() { entered++ })

	m.Set(Loading)
	assert.False(t, m.Apply())
	assert.Zero(t, entered)
}

func TestHookChainsTransition(t *testing.T) {
	m := NewMachine()
	m.OnEnter(Loading, func() { m.Set(InitSim) })
	m.OnEnter(InitSim, func() { m.Set(Simulating) })

	m.Apply()
	assert.Equal(t, Loading, m.Current())
	m.Apply()
	assert.Equal(t, InitSim, m.Current())
	m.Apply()
	assert.Equal(t, Simulating, m.Current())
}

func TestInitialHookSetWaitsForNextApply(t *testing.T) {
	m := NewMachine()
	initEntered := 0
	m.OnEnter(Loading, func() { m.Set(InitSim) })
	m.OnEnter(InitSim, func() { initEntered++ })

	assert.False(t, m.Apply())
	assert.Equal(t, Loading, m.Current())
	assert.Zero(t, initEntered, "InitSim hooks must not run in the same Apply")
	next, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, InitSim, next)

	assert.True(t, m.Apply())
	assert.Equal(t, InitSim, m.Current())
	assert.Equal(t, 1, initEntered)
}

func TestSetBeforeFirstApply(t *testing.T) {
	m := NewMachine()
	loadingEntered := 0
	m.OnEnter(Loading, func() { loadingEntered++ })

	m.Set(Simulating)
	assert.True(t, m.Apply())
	assert.Equal(t, 1, loadingEntered)
	assert.Equal(t, Simulating, m.Current())
}

func TestTogglePause(t *testing.T) {
	tests := []struct {
		from SimState
		want SimState
	}{
		{Simulating, Paused},
		{Paused, Simulating},
		{Loading, Loading},
		{InitSim, InitSim},
	}

	for _, tc := range tests {
		t.Run(tc.from.String(), func(t *testing.T) {
			m := NewMachine()
			m.Apply()
			m.Set(tc.from)
			m.Apply()

			TogglePause(m)
			m.Apply()
			assert.Equal(t, tc.want, m.Current())
		})
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "init_sim", InitSim.String())
	assert.Equal(t, "simulating", Simulating.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "unknown", SimState(99).String())
}
