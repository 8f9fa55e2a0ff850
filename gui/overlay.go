package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/sim"
)

// Overlay groups every screen-space panel.
type Overlay struct {
	Title string

	hud      *HUD
	plots    *PlotPanel
	settings *SettingsPanel
}

// NewOverlay creates the overlay. The colours are used for plot series.
func NewOverlay(title string, boid, predator, food rl.Color) *Overlay {
	theme := DefaultTheme()
	return &Overlay{
		Title:    title,
		hud:      NewHUD(theme),
		plots:    NewPlotPanel(theme, boid, predator, food),
		settings: NewSettingsPanel(theme),
	}
}

// OverSettings reports whether the mouse is over the open settings panel.
func (o *Overlay) OverSettings(s *sim.Sim) bool {
	if !s.Settings.ShowPlotSettings {
		return false
	}
	m := rl.GetMousePosition()
	return o.settings.Contains(int32(rl.GetScreenWidth()), m.X, m.Y)
}

// Draw renders the panels enabled in the settings. Call after rl.EndMode2D.
func (o *Overlay) Draw(s *sim.Sim) {
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	o.hud.Draw(s, o.Title, rl.GetFPS())
	o.hud.DrawControls(screenH)

	if s.Settings.ShowPlots {
		o.plots.Draw(s.History(), &s.Settings, screenW, screenH)
	}
	if s.Settings.ShowPlotSettings {
		o.settings.Draw(&s.Settings, s.Camera(), screenW)
	}
}
