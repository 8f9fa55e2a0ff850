package sim

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/atlas"
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/world"
)

// spawnAnimals places n animals of kind at random walkable positions.
func (s *Sim) spawnAnimals(kind components.Kind, n int) int {
	spawned := 0
	for i := 0; i < n; i++ {
		x, y, ok := s.tiles.RandomWalkable(s.rng)
		if !ok {
			slog.Warn("no walkable tile for spawn", "kind", kind.String())
			break
		}
		s.spawnAnimal(kind, x, y, s.initialEnergy(kind), 0, true)
		spawned++
	}
	return spawned
}

func (s *Sim) initialEnergy(kind components.Kind) float32 {
	if kind == components.KindPredator {
		return float32(s.cfg.Predators.InitialEnergy)
	}
	return float32(s.cfg.Boids.InitialEnergy)
}

// spawnAnimal creates one animal heading in a random direction. Founders get a
// random reproduction cooldown so the population does not breed in lockstep.
func (s *Sim) spawnAnimal(kind components.Kind, x, y, energy float32, generation uint32, founder bool) ecs.Entity {
	var minSpeed, maxSpeed, maxEnergy, cooldown float32
	sprite := atlas.SpriteBoid
	if kind == components.KindPredator {
		minSpeed, maxSpeed = s.hunt.MinSpeed, s.hunt.MaxSpeed
		maxEnergy = float32(s.cfg.Predators.MaxEnergy)
		cooldown = s.predRepro.Cooldown
		sprite = atlas.SpritePredator
	} else {
		minSpeed, maxSpeed = s.flock.MinSpeed, s.flock.MaxSpeed
		maxEnergy = float32(s.cfg.Boids.MaxEnergy)
		cooldown = s.boidRepro.Cooldown
	}

	heading := s.rng.Float64() * 2 * math.Pi
	speed := minSpeed + s.rng.Float32()*(maxSpeed-minSpeed)

	id := s.nextID
	s.nextID++

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{
		X: float32(math.Cos(heading)) * speed,
		Y: float32(math.Sin(heading)) * speed,
	}
	en := components.Energy{Value: min(energy, maxEnergy), Max: maxEnergy, Alive: true}
	org := components.Organism{ID: id, Kind: kind, Generation: generation}
	if founder {
		org.ReproCooldown = s.rng.Float32() * cooldown
	}
	spr := components.Sprite{Index: sprite}

	entity := s.animalMapper.NewEntity(&pos, &vel, &en, &org, &spr)

	if kind == components.KindPredator {
		s.numPredators++
	} else {
		s.numBoids++
	}
	return entity
}

// spawnFood places n food plants on fertile tiles, falling back to any walkable
// tile on maps without grass or forest.
func (s *Sim) spawnFood(n int) {
	foodMax := float32(s.cfg.Elements.FoodMax)
	for i := 0; i < n; i++ {
		x, y, ok := s.randomFoodPosition()
		if !ok {
			slog.Warn("no tile for food")
			return
		}
		pos := components.Position{X: x, Y: y}
		el := components.Element{Kind: components.ElementFood, Amount: foodMax, Max: foodMax}
		spr := components.Sprite{Index: atlas.SpriteFood}
		s.foodMapper.NewEntity(&pos, &el, &spr)
		s.numFood++
	}
}

func (s *Sim) randomFoodPosition() (float32, float32, bool) {
	if x, y, ok := s.tiles.RandomTile(s.rng, world.TileKind.Fertile); ok {
		return x, y, true
	}
	return s.tiles.RandomWalkable(s.rng)
}

// respawnIfExtinct reseeds a population that died out.
func (s *Sim) respawnIfExtinct() {
	if s.numBoids == 0 && s.cfg.Boids.RespawnCount > 0 {
		n := s.spawnAnimals(components.KindBoid, s.cfg.Boids.RespawnCount)
		s.collector.RecordRespawn()
		slog.Info("population reseeded", "kind", "boid", "count", n, "tick", s.tick)
	}
	if s.numPredators == 0 && s.cfg.Predators.RespawnCount > 0 {
		n := s.spawnAnimals(components.KindPredator, s.cfg.Predators.RespawnCount)
		s.collector.RecordRespawn()
		slog.Info("population reseeded", "kind", "predator", "count", n, "tick", s.tick)
	}
}
