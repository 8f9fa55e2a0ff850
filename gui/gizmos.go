package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/sim"
)

var (
	visualColor    = rl.Color{R: 120, G: 200, B: 255, A: 50}
	protectedColor = rl.Color{R: 255, G: 120, B: 120, A: 70}
	visionColor    = rl.Color{R: 255, G: 200, B: 80, A: 60}
	velocityColor  = rl.Color{R: 255, G: 255, B: 255, A: 160}
	followColor    = rl.Color{R: 255, G: 255, B: 0, A: 220}
)

// velocityScale stretches per-tick velocities so they are visible.
const velocityScale = 6

// DrawGizmos draws perception ranges and velocity vectors in world space.
// Must be called inside rl.BeginMode2D.
func DrawGizmos(s *sim.Sim) {
	cam := s.Camera()
	if cam == nil {
		return
	}
	cfg := s.Config()
	visual := float32(cfg.Boids.VisualRange)
	protected := float32(cfg.Boids.ProtectedRange)
	vision := float32(cfg.Predators.VisionRange)

	s.EachAnimal(func(a sim.AnimalView) {
		if !cam.IsVisible(a.X, a.Y, vision) {
			return
		}
		cx, cy := int32(a.X), int32(a.Y)
		if a.Kind == components.KindPredator {
			rl.DrawCircleLines(cx, cy, vision, visionColor)
		} else {
			rl.DrawCircleLines(cx, cy, visual, visualColor)
			rl.DrawCircleLines(cx, cy, protected, protectedColor)
		}
		rl.DrawLineV(
			rl.Vector2{X: a.X, Y: a.Y},
			rl.Vector2{X: a.X + a.VX*velocityScale, Y: a.Y + a.VY*velocityScale},
			velocityColor,
		)
	})

	if target, ok := s.FollowTarget(); ok {
		rl.DrawCircleLines(int32(target.X), int32(target.Y), 10, followColor)
	}
}
