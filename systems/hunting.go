package systems

import (
	"math"

	"github.com/pthm-cable/ecosim/components"
)

// Hunt computes the steering intent of predator i. The predator steers toward the
// nearest living boid in vision; with nothing in sight it wanders, turning by
// jitter*WanderFactor radians, where jitter is a caller-supplied value in [-1, 1].
func Hunt(i int32, agents []Agent, grid *SpatialGrid, p HuntParams, jitter float32) Intent {
	self := &agents[i]
	vx, vy := self.VX, self.VY
	intent := Intent{Target: -1}

	prey, ok := grid.Nearest(self.X, self.Y, p.VisionRange, i, func(j int32) bool {
		a := &agents[j]
		return a.Alive && a.Kind == components.KindBoid
	})

	if ok {
		vx += prey.DX * p.ChaseFactor
		vy += prey.DY * p.ChaseFactor
		intent.Target = prey.Index
	} else {
		angle := float64(jitter * p.WanderFactor)
		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))
		vx, vy = vx*cos-vy*sin, vx*sin+vy*cos
		if vx == 0 && vy == 0 {
			vx = p.MinSpeed
		}
	}

	intent.VX, intent.VY = LimitSpeed(vx, vy, p.MinSpeed, p.MaxSpeed)
	return intent
}

// Bite transfers energy from prey to predator. The prey loses up to amount; the
// predator gains that loss times efficiency, capped at its capacity. Returns true
// if the prey died.
func Bite(predator, prey *components.Energy, amount, efficiency float32) bool {
	if !predator.Alive || !prey.Alive {
		return false
	}
	taken := min(amount, prey.Value)
	prey.Value -= taken
	predator.Value = min(predator.Value+taken*efficiency, predator.Max)

	if prey.Value <= 0 {
		prey.Value = 0
		prey.Alive = false
		return true
	}
	return false
}
