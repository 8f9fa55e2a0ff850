package systems

import (
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
)

// Metabolism holds per-kind energy costs.
type Metabolism struct {
	BaseCost float32 // energy per second for existing
	MoveCost float32 // energy per second per unit of speed (units per tick)
	MaxAge   float32 // seconds; 0 = immortal
}

// BoidMetabolism returns the boid costs from config.
func BoidMetabolism(c config.BoidsConfig) Metabolism {
	return Metabolism{BaseCost: float32(c.BaseCost), MoveCost: float32(c.MoveCost), MaxAge: float32(c.MaxAge)}
}

// PredatorMetabolism returns the predator costs from config.
func PredatorMetabolism(c config.PredatorsConfig) Metabolism {
	return Metabolism{BaseCost: float32(c.BaseCost), MoveCost: float32(c.MoveCost), MaxAge: float32(c.MaxAge)}
}

// UpdateEnergy ages an animal, applies metabolic costs and checks for death.
// Returns the energy spent.
func UpdateEnergy(energy *components.Energy, vel components.Velocity, m Metabolism, dt float32) float32 {
	if !energy.Alive {
		return 0
	}

	energy.Age += dt

	speed := velocityMagnitude(vel.X, vel.Y)
	cost := (m.BaseCost + m.MoveCost*speed) * dt
	cost = min(cost, energy.Value)
	energy.Value -= cost

	if energy.Value <= 0 || (m.MaxAge > 0 && energy.Age >= m.MaxAge) {
		energy.Value = max(energy.Value, 0)
		energy.Alive = false
	}

	return cost
}

// Graze moves energy from a food element into a boid at rate per second, limited
// by what the food holds and what the boid can store. Returns the amount eaten.
func Graze(energy *components.Energy, food *components.Element, rate, dt float32) float32 {
	if !energy.Alive || food.Amount <= 0 {
		return 0
	}
	eaten := min(rate*dt, food.Amount, energy.Max-energy.Value)
	if eaten <= 0 {
		return 0
	}
	food.Amount -= eaten
	energy.Value += eaten
	return eaten
}

// RegrowElement grows food back toward its maximum and tracks how long it has
// been empty. Returns true once it has been empty for at least respawnDelay
// seconds and should be moved.
func RegrowElement(e *components.Element, rate, respawnDelay, dt float32) bool {
	if e.Amount <= 0 {
		e.Amount = 0
		e.Empty += dt
		if respawnDelay > 0 && e.Empty >= respawnDelay {
			return true
		}
		// Depleted plants stay bare until moved
		return false
	}
	e.Empty = 0
	e.Amount = min(e.Amount+rate*dt, e.Max)
	return false
}
