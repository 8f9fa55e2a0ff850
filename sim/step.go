package sim

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/stats"
	"github.com/pthm-cable/ecosim/systems"
)

// Step advances the simulation by one fixed tick.
func (s *Sim) Step() {
	if s.tiles == nil {
		return
	}
	dt := s.cfg.Derived.DT32
	s.perf.StartStep()

	s.perf.StartPhase(stats.PhaseSnapshot)
	s.snapshot()
	s.perf.StartPhase(stats.PhaseIntents)
	s.computeIntents()
	s.perf.StartPhase(stats.PhaseMovement)
	s.applyIntents()
	s.perf.StartPhase(stats.PhaseFeeding)
	s.updateBites()
	s.updateGrazing(dt)
	s.perf.StartPhase(stats.PhaseEnergy)
	s.updateEnergy(dt)
	s.perf.StartPhase(stats.PhaseReproduction)
	s.updateReproduction()
	s.perf.StartPhase(stats.PhaseCleanup)
	s.cleanupDead()
	s.respawnIfExtinct()
	s.perf.StartPhase(stats.PhaseFood)
	s.updateFood(dt)

	s.tick++
	s.perf.StartPhase(stats.PhaseStats)
	s.sampleStats(float64(dt))
	s.perf.EndStep()
}

// snapshot copies animal and food state into flat slices and rebuilds both
// spatial grids. Random wander jitter is drawn here so the parallel phase never
// touches the RNG.
func (s *Sim) snapshot() {
	s.agents = s.agents[:0]
	s.jitter = s.jitter[:0]
	s.grid.Clear()

	query := s.animalFilter.Query()
	for query.Next() {
		pos, vel, energy, org := query.Get()
		s.agents = append(s.agents, systems.Agent{
			Entity: query.Entity(),
			Kind:   org.Kind,
			X:      pos.X,
			Y:      pos.Y,
			VX:     vel.X,
			VY:     vel.Y,
			Energy: energy.Fraction(),
			Alive:  energy.Alive,
		})
	}
	for i, a := range s.agents {
		s.grid.Insert(int32(i), a.X, a.Y)
		s.jitter = append(s.jitter, s.rng.Float32()*2-1)
	}

	s.foods = s.foods[:0]
	s.foodGrid.Clear()
	fq := s.foodFilter.Query()
	for fq.Next() {
		pos, el := fq.Get()
		s.foods = append(s.foods, systems.Food{Entity: fq.Entity(), X: pos.X, Y: pos.Y, Amount: el.Amount})
	}
	for i, f := range s.foods {
		s.foodGrid.Insert(int32(i), f.X, f.Y)
	}

	if cap(s.intents) < len(s.agents) {
		s.intents = make([]systems.Intent, len(s.agents))
	}
	s.intents = s.intents[:len(s.agents)]
}

// applyIntents turns intents into motion: terrain avoidance, speed limits and a
// move that refuses water and the map edge.
func (s *Sim) applyIntents() {
	margin := float32(s.cfg.World.EdgeMargin)
	boidTurn := float32(s.cfg.Boids.TurnFactor)
	predTurn := float32(s.cfg.Predators.TurnFactor)

	for i := range s.agents {
		a := &s.agents[i]
		if !a.Alive {
			continue
		}
		in := s.intents[i]

		turn, minSpeed, maxSpeed := boidTurn, s.flock.MinSpeed, s.flock.MaxSpeed
		if a.Kind == components.KindPredator {
			turn, minSpeed, maxSpeed = predTurn, s.hunt.MinSpeed, s.hunt.MaxSpeed
		}

		vx, vy := systems.AvoidTerrain(a.X, a.Y, in.VX, in.VY, s.tiles, margin, turn)
		vx, vy = systems.LimitSpeed(vx, vy, minSpeed, maxSpeed)
		x, y, vx, vy := systems.Move(a.X, a.Y, vx, vy, s.tiles)

		pos := s.posMap.Get(a.Entity)
		vel := s.velMap.Get(a.Entity)
		pos.X, pos.Y = x, y
		vel.X, vel.Y = vx, vy
	}
}

// updateBites lets predators bite the boid they chased this step when it is in
// range and their bite is ready.
func (s *Sim) updateBites() {
	biteRange := float32(s.cfg.Predators.BiteRange)
	biteRangeSq := biteRange * biteRange
	amount := float32(s.cfg.Predators.BiteEnergy)
	efficiency := float32(s.cfg.Predators.Efficiency)
	cooldown := float32(s.cfg.Predators.BiteCooldown)

	for i := range s.agents {
		a := &s.agents[i]
		target := s.intents[i].Target
		if !a.Alive || a.Kind != components.KindPredator || target < 0 {
			continue
		}

		org := s.orgMap.Get(a.Entity)
		if org.BiteCooldown > 0 {
			continue
		}

		prey := s.agents[target].Entity
		pp := s.posMap.Get(a.Entity)
		tp := s.posMap.Get(prey)
		dx, dy := tp.X-pp.X, tp.Y-pp.Y
		if dx*dx+dy*dy > biteRangeSq {
			continue
		}

		predEnergy := s.energyMap.Get(a.Entity)
		preyEnergy := s.energyMap.Get(prey)
		if !preyEnergy.Alive {
			continue
		}

		org.BiteCooldown = cooldown
		if systems.Bite(predEnergy, preyEnergy, amount, efficiency) {
			org.Kills++
			s.collector.RecordKill()
		}
	}
}

// updateGrazing feeds boids from the nearest non-empty food in graze range.
func (s *Sim) updateGrazing(dt float32) {
	grazeRange := float32(s.cfg.Boids.GrazeRange)
	rate := float32(s.cfg.Boids.GrazeRate)

	for i := range s.agents {
		a := &s.agents[i]
		if a.Kind != components.KindBoid {
			continue
		}

		energy := s.energyMap.Get(a.Entity)
		if !energy.Alive || energy.Value >= energy.Max {
			continue
		}

		pos := s.posMap.Get(a.Entity)
		food, ok := s.foodGrid.Nearest(pos.X, pos.Y, grazeRange, -1, func(j int32) bool {
			return s.foods[j].Amount > 0
		})
		if !ok {
			continue
		}

		el := s.elementMap.Get(s.foods[food.Index].Entity)
		systems.Graze(energy, el, rate, dt)
		// Keep the snapshot in step so later boids see the depletion
		s.foods[food.Index].Amount = el.Amount
	}
}

// updateEnergy applies metabolic costs and counts down cooldowns.
func (s *Sim) updateEnergy(dt float32) {
	query := s.animalFilter.Query()
	for query.Next() {
		_, vel, energy, org := query.Get()
		if !energy.Alive {
			continue
		}

		m := s.boidMeta
		if org.Kind == components.KindPredator {
			m = s.predMeta
		}
		systems.UpdateEnergy(energy, *vel, m, dt)
		systems.TickCooldowns(org, dt)
	}
}

// updateReproduction splits energy from ready parents into children spawned
// next to them, respecting population caps.
func (s *Sim) updateReproduction() {
	type birthInfo struct {
		kind       components.Kind
		x, y       float32
		energy     float32
		generation uint32
	}
	var births []birthInfo

	boids, preds := s.numBoids, s.numPredators

	query := s.animalFilter.Query()
	for query.Next() {
		pos, _, energy, org := query.Get()

		r, population := s.boidRepro, &boids
		if org.Kind == components.KindPredator {
			r, population = s.predRepro, &preds
		}
		if !systems.CanReproduce(energy, org, r, *population) {
			continue
		}

		childEnergy := systems.SplitEnergy(energy, org, r)
		x, y := s.birthPosition(pos.X, pos.Y)
		births = append(births, birthInfo{
			kind:       org.Kind,
			x:          x,
			y:          y,
			energy:     childEnergy,
			generation: org.Generation + 1,
		})
		*population++
	}

	for _, b := range births {
		s.spawnAnimal(b.kind, b.x, b.y, b.energy, b.generation, false)
		s.collector.RecordBirth(b.kind)
	}
}

// birthPosition picks a walkable spot near a parent, or the parent's own spot.
func (s *Sim) birthPosition(x, y float32) (float32, float32) {
	const spread = 8
	cx := x + (s.rng.Float32()*2-1)*spread
	cy := y + (s.rng.Float32()*2-1)*spread
	w, h := s.tiles.Size()
	if cx >= 0 && cx < w && cy >= 0 && cy < h && s.tiles.TileAt(cx, cy).Walkable() {
		return cx, cy
	}
	return x, y
}

// cleanupDead removes dead animals.
func (s *Sim) cleanupDead() {
	type deadInfo struct {
		entity ecs.Entity
		kind   components.Kind
	}
	var toRemove []deadInfo

	// First pass: collect (no structural changes while a query is open)
	query := s.animalFilter.Query()
	for query.Next() {
		_, _, energy, org := query.Get()
		if !energy.Alive {
			toRemove = append(toRemove, deadInfo{entity: query.Entity(), kind: org.Kind})
		}
	}

	for _, dead := range toRemove {
		s.collector.RecordDeath(dead.kind)
		s.world.RemoveEntity(dead.entity)
		if s.hasFollowed && s.followed == dead.entity {
			s.hasFollowed = false
		}

		if dead.kind == components.KindPredator {
			s.numPredators--
		} else {
			s.numBoids--
		}
	}
}

// updateFood regrows food and moves plants that stayed empty too long.
func (s *Sim) updateFood(dt float32) {
	rate := float32(s.cfg.Elements.RegrowRate)
	delay := float32(s.cfg.Elements.RespawnDelay)

	query := s.foodFilter.Query()
	for query.Next() {
		pos, el := query.Get()
		if !systems.RegrowElement(el, rate, delay, dt) {
			continue
		}
		x, y, ok := s.randomFoodPosition()
		if !ok {
			continue
		}
		pos.X, pos.Y = x, y
		el.Amount = el.Max
		el.Empty = 0
	}
}

// sampleStats produces a stats sample when the interval has elapsed.
func (s *Sim) sampleStats(dt float64) {
	if !s.collector.Advance(dt) {
		return
	}

	sample := s.collector.Flush(s.tick, s.SimTime(), s.population())
	s.samples++

	if err := s.opts.Output.WriteSample(sample); err != nil {
		slog.Warn("writing stats sample failed", "error", err)
	}
	if s.opts.LogStats && s.cfg.Stats.LogEvery > 0 && s.samples%s.cfg.Stats.LogEvery == 0 {
		slog.Info("stats", "sample", sample, "perf", s.perf.Stats())
	}
}

// population gathers the values a stats sample needs.
func (s *Sim) population() stats.Population {
	p := stats.Population{
		Boids:     s.numBoids,
		Predators: s.numPredators,
		Food:      s.numFood,
	}

	query := s.animalFilter.Query()
	for query.Next() {
		_, _, energy, org := query.Get()
		if !energy.Alive {
			continue
		}
		if org.Kind == components.KindPredator {
			p.PredatorEnergies = append(p.PredatorEnergies, float64(energy.Fraction()))
		} else {
			p.BoidEnergies = append(p.BoidEnergies, float64(energy.Fraction()))
		}
	}

	fq := s.foodFilter.Query()
	for fq.Next() {
		_, el := fq.Get()
		p.FoodTotal += float64(el.Amount)
	}

	return p
}
