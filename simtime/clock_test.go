package simtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const dt = 0.01

func TestAdvanceScalesBySpeed(t *testing.T) {
	c := NewClock(dt, 100)
	c.SetRelativeSpeed(2)

	v := c.Advance(0.05)
	assert.InDelta(t, 0.1, v, 1e-12)
	assert.InDelta(t, 0.1, c.Elapsed(), 1e-12)
	assert.Equal(t, 10, c.Steps())
}

func TestZeroSpeedFreezes(t *testing.T) {
	c := NewClock(dt, 100)
	c.SetRelativeSpeed(0)

	assert.Zero(t, c.Advance(1))
	assert.Zero(t, c.Steps())
}

func TestNegativeSpeedClampsToZero(t *testing.T) {
	c := NewClock(dt, 100)
	c.SetRelativeSpeed(-3)
	assert.Zero(t, c.RelativeSpeed())
}

func TestPauseStopsTime(t *testing.T) {
	c := NewClock(dt, 100)
	c.Pause()
	assert.True(t, c.Paused())
	assert.Zero(t, c.Advance(1))

	c.Unpause()
	assert.InDelta(t, 1.0, c.Advance(1), 1e-12)
}

func TestStepsCarryRemainder(t *testing.T) {
	c := NewClock(dt, 100)

	c.Advance(0.015)
	assert.Equal(t, 1, c.Steps(), "half a step stays in the accumulator")

	c.Advance(0.006)
	assert.Equal(t, 1, c.Steps(), "the carried half completes a second step")
	assert.Zero(t, c.Steps())
}

func TestStepsCapped(t *testing.T) {
	c := NewClock(dt, 4)
	c.Advance(1)

	assert.Equal(t, 4, c.Steps())
	assert.Zero(t, c.Steps(), "excess time is dropped")
}
