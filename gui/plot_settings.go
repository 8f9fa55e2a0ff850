package gui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/camera"
	"github.com/pthm-cable/ecosim/settings"
)

// SettingsPanel edits Settings with raygui controls. Changes are written
// straight back to the settings resource.
type SettingsPanel struct {
	theme Theme
}

// NewSettingsPanel creates a settings panel.
func NewSettingsPanel(theme Theme) *SettingsPanel {
	return &SettingsPanel{theme: theme}
}

// Contains reports whether a screen point is over the panel, so callers can
// keep mouse drags meant for the controls away from the camera.
func (p *SettingsPanel) Contains(screenW int32, x, y float32) bool {
	r := p.bounds(screenW)
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, r)
}

func (p *SettingsPanel) bounds(screenW int32) rl.Rectangle {
	const width, height = 240, 250
	return rl.Rectangle{
		X:      float32(screenW - width - p.theme.Padding),
		Y:      float32(p.theme.Padding),
		Width:  width,
		Height: height,
	}
}

// Draw renders the panel in the top-right corner.
func (p *SettingsPanel) Draw(st *settings.Settings, cam *camera.Camera, screenW int32) {
	t := p.theme
	b := p.bounds(screenW)
	t.DrawPanel(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))

	x := b.X + 10
	y := float32(t.DrawSectionHeader(int32(x), int32(b.Y)+8, "Plots"))

	box := func(text string, checked bool) bool {
		v := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, text, checked)
		y += 20
		return v
	}
	st.PlotBoids = box("Boids", st.PlotBoids)
	st.PlotPredators = box("Predators", st.PlotPredators)
	st.PlotFood = box("Food", st.PlotFood)
	st.PlotEnergy = box("Mean energy", st.PlotEnergy)

	y += 6
	y = float32(t.DrawSectionHeader(int32(x), int32(y), "Display"))
	st.ShowPlots = box("Show plots", st.ShowPlots)
	st.EnableGizmos = box("Gizmos", st.EnableGizmos)

	y += 6
	rl.DrawText(fmt.Sprintf("Time scale x%.2f", st.TimeScale), int32(x), int32(y), t.FontSize, t.LabelColor)
	y += 16
	scale := gui.SliderBar(
		rl.Rectangle{X: x + 24, Y: y, Width: b.Width - 68, Height: 16},
		fmt.Sprintf("%.0f", st.MinTimeScale), fmt.Sprintf("%.0f", st.MaxTimeScale),
		float32(st.TimeScale), float32(st.MinTimeScale), float32(st.MaxTimeScale),
	)
	if scale != float32(st.TimeScale) {
		st.SetTimeScale(float64(scale))
	}
	y += 26

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 105, Height: 22}, "1x speed") {
		st.SetTimeScale(1)
	}
	if cam != nil && gui.Button(rl.Rectangle{X: x + 115, Y: y, Width: 105, Height: 22}, "Reset camera") {
		cam.Reset()
	}
}
