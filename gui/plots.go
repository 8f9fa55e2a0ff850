package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/settings"
	"github.com/pthm-cable/ecosim/stats"
)

// series is one plotted line.
type series struct {
	name  string
	field stats.Field
	color rl.Color
	unit  bool // plotted on the fixed [0, 1] axis instead of the count axis
	shown func(*settings.Settings) bool
}

// PlotPanel draws population history as line plots.
type PlotPanel struct {
	theme  Theme
	series []series
	buf    []float64
	points []rl.Vector2
}

// NewPlotPanel creates a plot panel using the given series colours.
func NewPlotPanel(theme Theme, boid, predator, food rl.Color) *PlotPanel {
	return &PlotPanel{
		theme: theme,
		series: []series{
			{name: "boids", field: stats.FieldBoids, color: boid, shown: showBoids},
			{name: "predators", field: stats.FieldPredators, color: predator, shown: showPredators},
			{name: "food", field: stats.FieldFood, color: food, shown: showFood},
			{name: "boid energy", field: stats.FieldBoidEnergy, color: rl.Fade(boid, 0.6), unit: true, shown: showEnergy},
			{name: "predator energy", field: stats.FieldPredatorEnergy, color: rl.Fade(predator, 0.6), unit: true, shown: showEnergy},
		},
	}
}

func showBoids(st *settings.Settings) bool     { return st.PlotBoids }
func showPredators(st *settings.Settings) bool { return st.PlotPredators }
func showFood(st *settings.Settings) bool      { return st.PlotFood }
func showEnergy(st *settings.Settings) bool    { return st.PlotEnergy }

// Draw renders the panel anchored to the bottom-right corner.
func (p *PlotPanel) Draw(h *stats.History, st *settings.Settings, screenW, screenH int32) {
	t := p.theme
	width, height := int32(460), int32(190)
	x := screenW - width - t.Padding
	y := screenH - height - t.Padding - 24
	t.DrawPanel(x, y, width, height)
	t.DrawSectionHeader(x+8, y+6, "Population")

	plotX, plotY := float32(x+8), float32(y+28)
	plotW, plotH := float32(width-16), float32(height-56)
	for i := 0; i <= 4; i++ {
		gy := int32(plotY + plotH*float32(i)/4)
		rl.DrawLine(int32(plotX), gy, int32(plotX+plotW), gy, t.GridLine)
	}

	if h.Len() < 2 {
		rl.DrawText("waiting for samples", int32(plotX)+4, int32(plotY)+4, t.FontSize, t.MutedColor)
		return
	}

	// Counts share one axis scaled to the largest visible value
	var top float64
	for _, s := range p.series {
		if s.unit || !s.shown(st) {
			continue
		}
		p.buf = h.Series(p.buf[:0], s.field)
		for _, v := range p.buf {
			top = max(top, v)
		}
	}
	if top <= 0 {
		top = 1
	}

	legendX := int32(plotX)
	legendY := y + height - 22
	for _, s := range p.series {
		if !s.shown(st) {
			continue
		}
		scale := top
		if s.unit {
			scale = 1
		}
		p.buf = h.Series(p.buf[:0], s.field)
		p.points = p.points[:0]
		n := len(p.buf)
		for i, v := range p.buf {
			px := plotX + plotW*float32(i)/float32(n-1)
			py := plotY + plotH - plotH*float32(min(v/scale, 1))
			p.points = append(p.points, rl.Vector2{X: px, Y: py})
		}
		for i := 1; i < len(p.points); i++ {
			rl.DrawLineV(p.points[i-1], p.points[i], s.color)
		}

		rl.DrawRectangle(legendX, legendY+3, 8, 8, s.color)
		rl.DrawText(s.name, legendX+11, legendY, t.FontSize, t.LabelColor)
		legendX += rl.MeasureText(s.name, t.FontSize) + 20
	}

	rl.DrawText(fmt.Sprintf("%.0f", top), x+width-48, y+8, t.FontSize, t.MutedColor)
}
