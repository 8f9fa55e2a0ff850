// Package gui draws the overlays on top of the world: the HUD, population
// plots, the plot settings panel and debug gizmos.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	MutedColor    rl.Color
	BarBg         rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color
	GridLine      rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		MutedColor:     rl.Gray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:     rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 100, G: 200, B: 100, A: 255},
		GridLine:       rl.Color{R: 60, G: 70, B: 80, A: 120},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// DrawPanel draws a panel background with border.
func (t Theme) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, t.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, t.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (t Theme) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, t.HeaderFontSize, t.SectionHeader)
	return y + t.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line.
func (t Theme) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawText(value, x+t.LabelWidth, y, t.FontSize, t.ValueColor)
	return y + t.LineHeight
}

// DrawFractionBar draws a [0, 1] bar coloured by how full it is.
func (t Theme) DrawFractionBar(x, y int32, label string, value float32, width int32) int32 {
	value = max(0, min(1, value))

	barX := x + t.LabelWidth
	barWidth := width - t.LabelWidth - 40

	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, t.BarHeight, t.BarBg)

	col := t.BarFillHigh
	if value < 0.3 {
		col = t.BarFillLow
	} else if value < 0.6 {
		col = t.BarFillMedium
	}
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*value), t.BarHeight, col)
	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, t.FontSize, t.ValueColor)

	return y + t.LineHeight + 2
}
