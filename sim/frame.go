package sim

import (
	"github.com/pthm-cable/ecosim/input"
	"github.com/pthm-cable/ecosim/state"
)

// timeScaleStep is how much +/- change the time scale.
const timeScaleStep = 0.25

// Frame runs one frame: queued state transitions, keyboard handling, time
// scaling, the fixed simulation steps and camera control. Returns the number of
// steps run.
func (s *Sim) Frame(realDelta float64, in input.State) int {
	s.machine.Apply()

	if in.JustPressed(input.KeySpace) {
		state.TogglePause(s.machine)
	}
	s.Settings.HandleKeyboard(in)
	if in.JustPressed(input.KeyPlus) {
		s.Settings.SetTimeScale(s.Settings.TimeScale + timeScaleStep)
	}
	if in.JustPressed(input.KeyMinus) {
		s.Settings.SetTimeScale(s.Settings.TimeScale - timeScaleStep)
	}
	s.updateTimeScale()

	steps := 0
	if s.machine.In(state.Simulating) {
		s.clock.Unpause()
		s.clock.Advance(realDelta)
		steps = s.clock.Steps()
		for i := 0; i < steps; i++ {
			s.Step()
		}
	} else {
		s.clock.Pause()
	}

	s.updateCamera(in)
	return steps
}

// updateTimeScale sets the clock's relative speed from the settings.
func (s *Sim) updateTimeScale() {
	s.clock.SetRelativeSpeed(s.Settings.TimeScale)
}

// updateCamera applies manual pan and zoom, then the active camera mode.
// Modes only drive the camera while simulating.
func (s *Sim) updateCamera(in input.State) {
	c := s.camera
	if c == nil {
		return
	}

	pan := float32(s.cfg.Camera.PanSpeed)
	if in.Down(input.KeyLeft) {
		c.Pan(-pan, 0)
	}
	if in.Down(input.KeyRight) {
		c.Pan(pan, 0)
	}
	if in.Down(input.KeyUp) {
		c.Pan(0, -pan)
	}
	if in.Down(input.KeyDown) {
		c.Pan(0, pan)
	}
	if dx, dy := in.Drag(); dx != 0 || dy != 0 {
		c.Pan(-dx, -dy)
	}
	if wheel := in.Wheel(); wheel != 0 {
		c.ZoomBy(1 + wheel*float32(s.cfg.Camera.WheelZoomStep))
	}
	if in.JustPressed(input.KeyHome) {
		c.Reset()
	}

	if !s.machine.In(state.Simulating) {
		return
	}

	switch {
	case s.Settings.CameraClampCenter:
		c.ClampCenter(float32(s.cfg.Camera.ClampLerp))
	case s.Settings.CameraFollowBoid, s.Settings.CameraFollowPredator:
		if t, ok := s.FollowTarget(); ok {
			c.Follow(t.X, t.Y, float32(s.cfg.Camera.FollowLerp))
		}
	}
}
