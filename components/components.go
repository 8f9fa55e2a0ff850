// Package components defines ECS components for the simulation.
package components

// Kind distinguishes the two animal populations.
type Kind uint8

const (
	KindBoid Kind = iota
	KindPredator
)

func (k Kind) String() string {
	if k == KindPredator {
		return "predator"
	}
	return "boid"
}

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in world units per tick.
type Velocity struct {
	X, Y float32
}

// Energy tracks an animal's metabolic state.
type Energy struct {
	Value float32 // absolute energy
	Max   float32 // capacity
	Age   float32 // seconds alive
	Alive bool
}

// Fraction returns Value/Max, or 0 for a zero capacity.
func (e *Energy) Fraction() float32 {
	if e.Max <= 0 {
		return 0
	}
	return e.Value / e.Max
}

// Organism bundles identity and life-cycle timers of an animal.
type Organism struct {
	ID            uint32
	Kind          Kind
	Generation    uint32
	ReproCooldown float32 // seconds until it can reproduce again
	BiteCooldown  float32 // seconds until it can bite again (predators only)
	Children      uint32
	Kills         uint32
}

// ElementKind identifies an environmental element.
type ElementKind uint8

const (
	ElementFood ElementKind = iota
)

// Element is a static environmental resource such as a food plant.
type Element struct {
	Kind   ElementKind
	Amount float32 // current energy available
	Max    float32
	Empty  float32 // seconds spent fully depleted
}

// Sprite selects the atlas tile used to draw an entity.
type Sprite struct {
	Index int
}
