package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/sim"
	"github.com/pthm-cable/ecosim/state"
)

const controlsLegend = "Space pause | +/- speed | 1 follow boid | 2 follow predator | 3 center | " +
	"Tab gizmos | Backspace plots | ` plot settings | arrows/drag pan | wheel zoom | Home reset"

// HUD renders the status panel in the top-left corner.
type HUD struct {
	theme Theme
}

// NewHUD creates a HUD.
func NewHUD(theme Theme) *HUD {
	return &HUD{theme: theme}
}

// Draw renders the HUD.
func (h *HUD) Draw(s *sim.Sim, title string, fps int32) {
	t := h.theme
	x, y := t.Padding, t.Padding
	width := int32(240)
	height := 12*t.LineHeight + 8

	target, following := s.FollowTarget()
	if following {
		height += 4*t.LineHeight + 6
	}
	t.DrawPanel(x-4, y-4, width, height)

	rl.DrawText(title, x, y, 20, rl.White)
	y += 26

	status := s.State().String()
	statusColor := t.ValueColor
	if s.State() == state.Paused {
		status = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(status, x, y, t.HeaderFontSize, statusColor)
	y += t.LineHeight + 2

	boids, preds, food := s.Counts()
	y = t.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", s.Tick()))
	y = t.DrawLabelValue(x, y, "Time", fmt.Sprintf("%.1fs x%.2f", s.SimTime(), s.Settings.TimeScale))
	y = t.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", fps))
	y = t.DrawLabelValue(x, y, "Step", fmt.Sprintf("%dus", s.Perf().AvgStep.Microseconds()))
	y = t.DrawLabelValue(x, y, "Boids", fmt.Sprintf("%d", boids))
	y = t.DrawLabelValue(x, y, "Predators", fmt.Sprintf("%d", preds))
	y = t.DrawLabelValue(x, y, "Food", fmt.Sprintf("%d", food))
	last := s.LastSample()
	y = t.DrawLabelValue(x, y, "Births/Deaths", fmt.Sprintf("%d / %d", last.Births(), last.Deaths()))
	y = t.DrawLabelValue(x, y, "Camera", s.Settings.CameraMode())

	if following {
		y += 6
		y = t.DrawSectionHeader(x, y, fmt.Sprintf("%s #%d", target.Kind, target.ID))
		y = t.DrawFractionBar(x, y, "Energy", target.Energy, width-8)
		y = t.DrawLabelValue(x, y, "Age", fmt.Sprintf("%.1fs", target.Age))
		t.DrawLabelValue(x, y, "Gen", fmt.Sprintf("%d", target.Generation))
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(controlsLegend, h.theme.Padding, screenHeight-22, h.theme.FontSize, h.theme.MutedColor)
}
