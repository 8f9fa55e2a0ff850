package systems

import (
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
)

// Reproduction holds per-kind breeding parameters.
type Reproduction struct {
	Threshold   float32 // minimum energy fraction
	MaturityAge float32 // seconds
	Cooldown    float32 // seconds between births
	ChildShare  float32 // fraction of parent energy handed to the child
	Max         int     // population cap
}

// BoidReproduction returns boid breeding parameters from config.
func BoidReproduction(c config.BoidsConfig) Reproduction {
	return Reproduction{
		Threshold:   float32(c.ReproThreshold),
		MaturityAge: float32(c.MaturityAge),
		Cooldown:    float32(c.ReproCooldown),
		ChildShare:  float32(c.ChildEnergy),
		Max:         c.Max,
	}
}

// PredatorReproduction returns predator breeding parameters from config.
func PredatorReproduction(c config.PredatorsConfig) Reproduction {
	return Reproduction{
		Threshold:   float32(c.ReproThreshold),
		MaturityAge: float32(c.MaturityAge),
		Cooldown:    float32(c.ReproCooldown),
		ChildShare:  float32(c.ChildEnergy),
		Max:         c.Max,
	}
}

// CanReproduce reports whether an animal may give birth given the current
// population of its kind.
func CanReproduce(e *components.Energy, org *components.Organism, r Reproduction, population int) bool {
	if !e.Alive || population >= r.Max {
		return false
	}
	if e.Age < r.MaturityAge || org.ReproCooldown > 0 {
		return false
	}
	return e.Fraction() >= r.Threshold
}

// SplitEnergy takes the child's share out of the parent, starts the parent's
// cooldown and returns the child's starting energy.
func SplitEnergy(e *components.Energy, org *components.Organism, r Reproduction) float32 {
	child := e.Value * clamp01(r.ChildShare)
	e.Value -= child
	org.ReproCooldown = r.Cooldown
	org.Children++
	return child
}

// TickCooldowns counts organism timers down by dt.
func TickCooldowns(org *components.Organism, dt float32) {
	org.ReproCooldown = max(org.ReproCooldown-dt, 0)
	org.BiteCooldown = max(org.BiteCooldown-dt, 0)
}
