// Package simtime provides virtual simulation time with a relative speed and a
// fixed-step accumulator.
package simtime

// Clock converts real frame time into virtual time and fixed simulation steps.
type Clock struct {
	dt       float64
	maxSteps int

	speed   float64
	paused  bool
	elapsed float64
	accum   float64
}

// NewClock creates a clock stepping in increments of dt seconds, running at most
// maxSteps steps per frame.
func NewClock(dt float64, maxSteps int) *Clock {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Clock{dt: dt, maxSteps: maxSteps, speed: 1}
}

// DT returns the fixed step size in virtual seconds.
func (c *Clock) DT() float64 { return c.dt }

// SetRelativeSpeed sets how fast virtual time runs relative to real time.
// Negative values are treated as zero.
func (c *Clock) SetRelativeSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	c.speed = s
}

// RelativeSpeed returns the current relative speed.
func (c *Clock) RelativeSpeed() float64 { return c.speed }

// Pause stops virtual time. Pending accumulated time is kept.
func (c *Clock) Pause() { c.paused = true }

// Unpause resumes virtual time.
func (c *Clock) Unpause() { c.paused = false }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Elapsed returns total virtual seconds advanced.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Advance moves virtual time forward by realDelta scaled by the relative speed and
// returns the virtual delta.
func (c *Clock) Advance(realDelta float64) float64 {
	if c.paused || realDelta <= 0 {
		return 0
	}
	v := realDelta * c.speed
	c.elapsed += v
	c.accum += v
	return v
}

// Steps drains the accumulator into whole fixed steps, capped at the per-frame
// maximum. Time beyond the cap is dropped so a slow frame cannot spiral.
func (c *Clock) Steps() int {
	n := int(c.accum / c.dt)
	if n > c.maxSteps {
		n = c.maxSteps
		c.accum = 0
		return n
	}
	c.accum -= float64(n) * c.dt
	return n
}
