package systems

import "github.com/pthm-cable/ecosim/components"

// Flock computes the steering intent of boid i.
//
// Separation pushes away from flockmates inside the protected range, alignment and
// cohesion pull toward the average velocity and position of flockmates inside the
// visual range, and predators inside the fear range are fled. Hungry boids are also
// drawn toward the nearest food.
//
// scratch is reused between calls and returned.
func Flock(i int32, agents []Agent, grid *SpatialGrid, foods []Food, foodGrid *SpatialGrid, p FlockParams, scratch []Neighbor) (Intent, []Neighbor) {
	self := &agents[i]
	vx, vy := self.VX, self.VY
	intent := Intent{Target: -1}

	queryRange := max(p.VisualRange, p.FearRange)
	scratch = grid.QueryRadiusInto(scratch[:0], self.X, self.Y, queryRange, i)

	var closeX, closeY float32
	var velX, velY, posX, posY float32
	var fleeX, fleeY float32
	var mates float32

	protSq := p.ProtectedRange * p.ProtectedRange
	visSq := p.VisualRange * p.VisualRange
	fearSq := p.FearRange * p.FearRange

	for _, n := range scratch {
		other := &agents[n.Index]
		if !other.Alive {
			continue
		}

		if other.Kind == components.KindPredator {
			if n.DistSq < fearSq {
				fleeX -= n.DX
				fleeY -= n.DY
			}
			continue
		}

		if n.DistSq < protSq {
			closeX -= n.DX
			closeY -= n.DY
		}
		if n.DistSq < visSq {
			velX += other.VX
			velY += other.VY
			posX += n.DX
			posY += n.DY
			mates++
		}
	}

	// Separation
	vx += closeX * p.AvoidFactor
	vy += closeY * p.AvoidFactor

	// Alignment and cohesion
	if mates > 0 {
		velX /= mates
		velY /= mates
		vx += (velX - self.VX) * p.MatchingFactor
		vy += (velY - self.VY) * p.MatchingFactor

		vx += posX / mates * p.CenterFactor
		vy += posY / mates * p.CenterFactor
	}

	// Fear
	vx += fleeX * p.FleeFactor
	vy += fleeY * p.FleeFactor

	// Hunger
	if foodGrid != nil && self.Energy < p.HungerLevel {
		food, ok := foodGrid.Nearest(self.X, self.Y, p.VisualRange, -1, func(j int32) bool {
			return foods[j].Amount > 0
		})
		if ok {
			vx += food.DX * p.FoodFactor
			vy += food.DY * p.FoodFactor
			intent.Target = food.Index
		}
	}

	intent.VX, intent.VY = LimitSpeed(vx, vy, p.MinSpeed, p.MaxSpeed)
	return intent, scratch
}
