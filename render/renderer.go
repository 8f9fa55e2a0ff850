package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/atlas"
	"github.com/pthm-cable/ecosim/camera"
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/sim"
	"github.com/pthm-cable/ecosim/systems"
	"github.com/pthm-cable/ecosim/world"
)

// Palette holds the draw colours.
type Palette struct {
	Background rl.Color
	Boid       rl.Color
	Predator   rl.Color
	Food       rl.Color
}

// Color converts a parsed config colour.
func Color(c config.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// PaletteFromConfig parses the colours section.
func PaletteFromConfig(cfg config.ColorsConfig) (Palette, error) {
	p, err := cfg.Palette()
	if err != nil {
		return Palette{}, err
	}
	return Palette{
		Background: Color(p.Background),
		Boid:       Color(p.Boid),
		Predator:   Color(p.Predator),
		Food:       Color(p.Food),
	}, nil
}

// Tile colours used when no sprite sheet is loaded.
var tileColors = [...]rl.Color{
	world.Water:  {R: 38, G: 84, B: 140, A: 255},
	world.Sand:   {R: 196, G: 178, B: 128, A: 255},
	world.Grass:  {R: 72, G: 128, B: 64, A: 255},
	world.Forest: {R: 34, G: 82, B: 44, A: 255},
}

// Renderer draws the simulation world.
type Renderer struct {
	sheet   *Sheet
	palette Palette
}

// New creates a renderer. sheet may be nil.
func New(sheet *Sheet, palette Palette) *Renderer {
	return &Renderer{sheet: sheet, palette: palette}
}

// Palette returns the draw colours.
func (r *Renderer) Palette() Palette { return r.palette }

// Camera2D converts the simulation camera to a raylib camera.
func Camera2D(c *camera.Camera) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: c.ViewportW / 2, Y: c.ViewportH / 2},
		Target: rl.Vector2{X: c.X, Y: c.Y},
		Zoom:   c.Zoom,
	}
}

// Clear fills the frame with the background colour.
func (r *Renderer) Clear() {
	rl.ClearBackground(r.palette.Background)
}

// DrawWorld draws tiles, food and animals. Must be called inside
// rl.BeginMode2D with Camera2D(s.Camera()).
func (r *Renderer) DrawWorld(s *sim.Sim) {
	tiles, cam := s.Tiles(), s.Camera()
	if tiles == nil || cam == nil {
		return
	}

	// Sprites need both a loaded texture and a valid atlas
	tex, ok := r.sheet.Texture()
	a := s.Atlas()
	if !ok {
		a = nil
	}

	r.drawTiles(tiles, cam, tex, a)

	tileW, tileH := tiles.TileSize()
	s.EachFood(func(f sim.FoodView) {
		if !cam.IsVisible(f.X, f.Y, tileW) {
			return
		}
		r.drawFood(f, tex, a, tileW, tileH)
	})
	s.EachAnimal(func(v sim.AnimalView) {
		if !cam.IsVisible(v.X, v.Y, tileW) {
			return
		}
		r.drawAnimal(v, tex, a, tileW, tileH)
	})
}

// drawTiles draws only the tiles inside the view.
func (r *Renderer) drawTiles(tiles *world.TileMap, cam *camera.Camera, tex rl.Texture2D, a *atlas.Atlas) {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	c0, r0 := tiles.Cell(minX, minY)
	c1, r1 := tiles.Cell(maxX, maxY)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, tiles.Cols()-1), min(r1, tiles.Rows()-1)
	tileW, tileH := tiles.TileSize()

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			kind := tiles.At(col, row)
			dst := rl.Rectangle{X: float32(col) * tileW, Y: float32(row) * tileH, Width: tileW, Height: tileH}
			if a != nil {
				if src, err := a.Rect(kind.Sprite()); err == nil {
					rl.DrawTexturePro(tex, rect(src), dst, rl.Vector2{}, 0, rl.White)
					continue
				}
			}
			rl.DrawRectangleRec(dst, tileColors[kind])
		}
	}
}

func (r *Renderer) drawFood(f sim.FoodView, tex rl.Texture2D, a *atlas.Atlas, tileW, tileH float32) {
	alpha := uint8(80 + 175*f.Fill)
	if a != nil {
		if src, err := a.Rect(f.Sprite); err == nil {
			dst := rl.Rectangle{X: f.X, Y: f.Y, Width: tileW, Height: tileH}
			rl.DrawTexturePro(tex, rect(src), dst, rl.Vector2{X: tileW / 2, Y: tileH / 2}, 0, rl.NewColor(255, 255, 255, alpha))
			return
		}
	}
	col := r.palette.Food
	col.A = alpha
	rl.DrawCircleV(rl.Vector2{X: f.X, Y: f.Y}, 1+tileW*0.2*f.Fill, col)
}

func (r *Renderer) drawAnimal(v sim.AnimalView, tex rl.Texture2D, a *atlas.Atlas, tileW, tileH float32) {
	heading := systems.Heading(v.VX, v.VY)
	if a != nil {
		if src, err := a.Rect(v.Sprite); err == nil {
			dst := rl.Rectangle{X: v.X, Y: v.Y, Width: tileW, Height: tileH}
			rl.DrawTexturePro(tex, rect(src), dst, rl.Vector2{X: tileW / 2, Y: tileH / 2}, heading*rl.Rad2deg, rl.White)
			return
		}
	}

	col, size := r.palette.Boid, tileW*0.25
	if v.Kind == components.KindPredator {
		col, size = r.palette.Predator, tileW*0.4
	}
	drawArrow(v.X, v.Y, heading, size, col)
}

// drawArrow draws a triangle pointing along heading.
func drawArrow(x, y, heading, size float32, col rl.Color) {
	dx := float32(math.Cos(float64(heading)))
	dy := float32(math.Sin(float64(heading)))
	tip := rl.Vector2{X: x + dx*size*1.5, Y: y + dy*size*1.5}
	left := rl.Vector2{X: x - dx*size - dy*size, Y: y - dy*size + dx*size}
	right := rl.Vector2{X: x - dx*size + dy*size, Y: y - dy*size - dx*size}

	// raylib only fills triangles wound counter-clockwise on screen
	if cross(tip, left, right) > 0 {
		left, right = right, left
	}
	rl.DrawTriangle(tip, left, right, col)
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func rect(r atlas.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
