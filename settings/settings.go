// Package settings holds the runtime Settings resource toggled from the keyboard
// and the plot settings panel.
package settings

import (
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/input"
)

// Settings are the user-facing runtime toggles.
type Settings struct {
	// Camera modes; at most one is true.
	CameraFollowBoid     bool
	CameraFollowPredator bool
	CameraClampCenter    bool

	EnableGizmos     bool
	ShowPlots        bool
	ShowPlotSettings bool

	// TimeScale is the relative speed of virtual time.
	TimeScale    float64
	MinTimeScale float64
	MaxTimeScale float64

	// Plot series visibility
	PlotBoids     bool
	PlotPredators bool
	PlotFood      bool
	PlotEnergy    bool
}

// Default returns settings initialised from the settings config section.
func Default(cfg config.SettingsConfig) Settings {
	s := Settings{
		EnableGizmos:     cfg.EnableGizmos,
		ShowPlots:        cfg.ShowPlots,
		ShowPlotSettings: cfg.ShowPlotSettings,
		MinTimeScale:     cfg.MinTimeScale,
		MaxTimeScale:     cfg.MaxTimeScale,
		PlotBoids:        true,
		PlotPredators:    true,
		PlotFood:         true,
	}
	s.SetTimeScale(cfg.TimeScale)
	return s
}

// HandleKeyboard applies the keyboard shortcuts for this frame.
//
//	1  follow a boid       2  follow a predator   3  ease back to the map centre
//	Tab gizmos             Backspace plots        ` plot settings
func (s *Settings) HandleKeyboard(keys input.Pressed) {
	if keys.JustPressed(input.KeyOne) {
		s.CameraFollowBoid = !s.CameraFollowBoid
		s.CameraFollowPredator = false
		s.CameraClampCenter = false
	}
	if keys.JustPressed(input.KeyTwo) {
		s.CameraFollowPredator = !s.CameraFollowPredator
		s.CameraFollowBoid = false
		s.CameraClampCenter = false
	}
	if keys.JustPressed(input.KeyThree) {
		s.CameraClampCenter = !s.CameraClampCenter
		s.CameraFollowBoid = false
		s.CameraFollowPredator = false
	}
	if keys.JustPressed(input.KeyTab) {
		s.EnableGizmos = !s.EnableGizmos
	}
	if keys.JustPressed(input.KeyBackspace) {
		s.ShowPlots = !s.ShowPlots
	}
	if keys.JustPressed(input.KeyGrave) {
		s.ShowPlotSettings = !s.ShowPlotSettings
	}
}

// SetTimeScale sets the time scale clamped to the configured bounds.
func (s *Settings) SetTimeScale(v float64) {
	if v < s.MinTimeScale {
		v = s.MinTimeScale
	}
	if s.MaxTimeScale > 0 && v > s.MaxTimeScale {
		v = s.MaxTimeScale
	}
	s.TimeScale = v
}

// CameraMode names the active camera mode for display.
func (s *Settings) CameraMode() string {
	switch {
	case s.CameraFollowBoid:
		return "follow boid"
	case s.CameraFollowPredator:
		return "follow predator"
	case s.CameraClampCenter:
		return "center"
	default:
		return "free"
	}
}
