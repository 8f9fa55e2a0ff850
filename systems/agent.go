package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
)

// Agent is a read-only snapshot of an animal taken at the start of a step.
// Steering reads snapshots and writes Intents so results do not depend on
// iteration order.
type Agent struct {
	Entity ecs.Entity
	Kind   components.Kind
	X, Y   float32
	VX, VY float32
	Energy float32 // fraction of capacity
	Alive  bool
}

// Food is a snapshot of a food element.
type Food struct {
	Entity ecs.Entity
	X, Y   float32
	Amount float32
}

// Intent is the velocity an agent wants for this step, plus an optional target.
type Intent struct {
	VX, VY float32
	Target int32 // predator: index of chased boid; boid: index of food sought; -1 if none
}

// FlockParams are the boid steering parameters.
type FlockParams struct {
	VisualRange    float32
	ProtectedRange float32
	FearRange      float32
	CenterFactor   float32
	AvoidFactor    float32
	MatchingFactor float32
	FleeFactor     float32
	FoodFactor     float32
	HungerLevel    float32
	MinSpeed       float32
	MaxSpeed       float32
}

// FlockParamsFromConfig converts the boids config section.
func FlockParamsFromConfig(c config.BoidsConfig) FlockParams {
	return FlockParams{
		VisualRange:    float32(c.VisualRange),
		ProtectedRange: float32(c.ProtectedRange),
		FearRange:      float32(c.FearRange),
		CenterFactor:   float32(c.CenterFactor),
		AvoidFactor:    float32(c.AvoidFactor),
		MatchingFactor: float32(c.MatchingFactor),
		FleeFactor:     float32(c.FleeFactor),
		FoodFactor:     float32(c.FoodFactor),
		HungerLevel:    float32(c.HungerLevel),
		MinSpeed:       float32(c.MinSpeed),
		MaxSpeed:       float32(c.MaxSpeed),
	}
}

// HuntParams are the predator steering parameters.
type HuntParams struct {
	VisionRange  float32
	ChaseFactor  float32
	WanderFactor float32
	MinSpeed     float32
	MaxSpeed     float32
}

// HuntParamsFromConfig converts the predators config section.
func HuntParamsFromConfig(c config.PredatorsConfig) HuntParams {
	return HuntParams{
		VisionRange:  float32(c.VisionRange),
		ChaseFactor:  float32(c.ChaseFactor),
		WanderFactor: float32(c.WanderFactor),
		MinSpeed:     float32(c.MinSpeed),
		MaxSpeed:     float32(c.MaxSpeed),
	}
}
