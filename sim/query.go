package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/components"
)

// AnimalView is a read-only view of an animal for rendering.
type AnimalView struct {
	Entity     ecs.Entity
	ID         uint32
	Kind       components.Kind
	X, Y       float32
	VX, VY     float32
	Energy     float32 // fraction of capacity
	Age        float32
	Generation uint32
	Sprite     int
}

// FoodView is a read-only view of a food plant for rendering.
type FoodView struct {
	X, Y   float32
	Fill   float32 // Amount/Max
	Sprite int
}

// EachAnimal calls fn for every living animal.
func (s *Sim) EachAnimal(fn func(AnimalView)) {
	query := s.animalFilter.Query()
	for query.Next() {
		pos, vel, energy, org := query.Get()
		if !energy.Alive {
			continue
		}
		fn(s.view(query.Entity(), pos, vel, energy, org))
	}
}

// EachFood calls fn for every food plant.
func (s *Sim) EachFood(fn func(FoodView)) {
	query := s.foodFilter.Query()
	for query.Next() {
		pos, el := query.Get()
		var fill float32
		if el.Max > 0 {
			fill = el.Amount / el.Max
		}
		fn(FoodView{X: pos.X, Y: pos.Y, Fill: fill, Sprite: s.spriteOf(query.Entity())})
	}
}

// FollowTarget returns the animal tracked by the active follow camera mode. The
// oldest living animal of the wanted kind is picked and kept until it dies.
func (s *Sim) FollowTarget() (AnimalView, bool) {
	var kind components.Kind
	switch {
	case s.Settings.CameraFollowBoid:
		kind = components.KindBoid
	case s.Settings.CameraFollowPredator:
		kind = components.KindPredator
	default:
		return AnimalView{}, false
	}

	if s.hasFollowed && s.world.Alive(s.followed) {
		org := s.orgMap.Get(s.followed)
		energy := s.energyMap.Get(s.followed)
		if org != nil && org.Kind == kind && energy.Alive {
			return s.view(s.followed, s.posMap.Get(s.followed), s.velMap.Get(s.followed), energy, org), true
		}
	}

	var best AnimalView
	found := false
	query := s.animalFilter.Query()
	for query.Next() {
		pos, vel, energy, org := query.Get()
		if !energy.Alive || org.Kind != kind {
			continue
		}
		if !found || energy.Age > best.Age {
			best = s.view(query.Entity(), pos, vel, energy, org)
			found = true
		}
	}

	s.followed, s.hasFollowed = best.Entity, found
	return best, found
}

func (s *Sim) view(e ecs.Entity, pos *components.Position, vel *components.Velocity, energy *components.Energy, org *components.Organism) AnimalView {
	return AnimalView{
		Entity:     e,
		ID:         org.ID,
		Kind:       org.Kind,
		X:          pos.X,
		Y:          pos.Y,
		VX:         vel.X,
		VY:         vel.Y,
		Energy:     energy.Fraction(),
		Age:        energy.Age,
		Generation: org.Generation,
		Sprite:     s.spriteOf(e),
	}
}

func (s *Sim) spriteOf(e ecs.Entity) int {
	if spr := s.spriteMap.Get(e); spr != nil {
		return spr.Index
	}
	return -1
}
