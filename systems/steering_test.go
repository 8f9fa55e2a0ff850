package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/world"
)

func testFlockParams() FlockParams {
	return FlockParams{
		VisualRange:    50,
		ProtectedRange: 10,
		FearRange:      80,
		CenterFactor:   0.01,
		AvoidFactor:    0.05,
		MatchingFactor: 0.05,
		FleeFactor:     0.01,
		FoodFactor:     0.01,
		HungerLevel:    0.5,
		MinSpeed:       0,
		MaxSpeed:       100,
	}
}

func buildGrid(agents []Agent) *SpatialGrid {
	g := NewSpatialGrid(1000, 1000, 50)
	for i, a := range agents {
		g.Insert(int32(i), a.X, a.Y)
	}
	return g
}

func boid(x, y, vx, vy float32) Agent {
	return Agent{Kind: components.KindBoid, X: x, Y: y, VX: vx, VY: vy, Energy: 1, Alive: true}
}

func TestFlock_SeparationPushesApart(t *testing.T) {
	p := testFlockParams()
	p.CenterFactor = 0
	p.MatchingFactor = 0
	agents := []Agent{boid(500, 500, 0, 0), boid(505, 500, 0, 0)}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.Negative(t, intent.VX, "moves away (-x)")
}

func TestFlock_CohesionPullsTogether(t *testing.T) {
	p := testFlockParams()
	p.AvoidFactor = 0
	p.MatchingFactor = 0
	agents := []Agent{boid(500, 500, 0, 0), boid(540, 500, 0, 0)}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.Positive(t, intent.VX, "moves toward flockmate (+x)")
}

func TestFlock_AlignmentMatchesVelocity(t *testing.T) {
	p := testFlockParams()
	p.AvoidFactor = 0
	p.CenterFactor = 0
	agents := []Agent{boid(500, 500, 0, 0), boid(530, 500, 0, 2), boid(470, 500, 0, 2)}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	// average neighbor velocity (0, 2) * 0.05
	assert.Zero(t, intent.VX)
	assert.InDelta(t, 0.1, intent.VY, 1e-5)
}

func TestFlock_FleesPredator(t *testing.T) {
	p := testFlockParams()
	pred := Agent{Kind: components.KindPredator, X: 560, Y: 500, Alive: true}
	agents := []Agent{boid(500, 500, 0, 0), pred}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.Negative(t, intent.VX, "flees (-x)")
}

func TestFlock_IgnoresDead(t *testing.T) {
	p := testFlockParams()
	dead := boid(505, 500, 0, 0)
	dead.Alive = false
	agents := []Agent{boid(500, 500, 1, 0), dead}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.Equal(t, float32(1), intent.VX, "dead neighbors must not steer")
	assert.Zero(t, intent.VY, "dead neighbors must not steer")
}

func TestFlock_HungrySeeksFood(t *testing.T) {
	p := testFlockParams()
	hungry := boid(500, 500, 0, 0)
	hungry.Energy = 0.2
	agents := []Agent{hungry}

	foods := []Food{{X: 500, Y: 530, Amount: 10}, {X: 500, Y: 460, Amount: 0}}
	fg := NewSpatialGrid(1000, 1000, 50)
	for i, f := range foods {
		fg.Insert(int32(i), f.X, f.Y)
	}

	intent, _ := Flock(0, agents, buildGrid(agents), foods, fg, p, nil)
	require.Equal(t, int32(0), intent.Target, "targets the non-empty food")
	assert.Positive(t, intent.VY, "heads toward food (+y)")

	agents[0].Energy = 0.9
	intent, _ = Flock(0, agents, buildGrid(agents), foods, fg, p, nil)
	assert.Equal(t, int32(-1), intent.Target, "sated boid should not seek food")
}

func TestFlock_SpeedLimits(t *testing.T) {
	p := testFlockParams()
	p.MinSpeed = 1
	p.MaxSpeed = 2
	agents := []Agent{boid(500, 500, 10, 0)}

	intent, _ := Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.InDelta(t, 2, velocityMagnitude(intent.VX, intent.VY), 1e-5, "clamped to max speed")

	agents[0].VX = 0.1
	intent, _ = Flock(0, agents, buildGrid(agents), nil, nil, p, nil)
	assert.InDelta(t, 1, velocityMagnitude(intent.VX, intent.VY), 1e-5, "raised to min speed")
}

func TestAvoidTerrain_TurnsFromEdges(t *testing.T) {
	tm := world.NewUniform(10, 10, 10, 10, world.Grass)

	vx, vy := AvoidTerrain(5, 50, 0, 0, tm, 20, 0.5)
	assert.Positive(t, vx, "pushed right near left edge")
	assert.Zero(t, vy)

	vx, vy = AvoidTerrain(50, 95, 0, 0, tm, 20, 0.5)
	assert.Negative(t, vy, "pushed up near bottom edge")
	assert.Zero(t, vx)
}

func TestAvoidTerrain_TurnsFromWater(t *testing.T) {
	tm := world.NewUniform(10, 10, 10, 10, world.Grass)
	tm.Set(6, 5, world.Water)

	// Heading right toward the water tile at col 6
	vx, _ := AvoidTerrain(45, 55, 3, 0, tm, 0, 0.5)
	assert.Less(t, vx, float32(3), "brakes away from water")
}

func TestMove_BlockedByWater(t *testing.T) {
	tm := world.NewUniform(10, 10, 10, 10, world.Grass)
	tm.Set(5, 5, world.Water)

	x, y, vx, vy := Move(48, 55, 3, 0, tm)
	assert.Equal(t, [4]float32{48, 55, -3, 0}, [4]float32{x, y, vx, vy}, "refused move reverses velocity")

	x, y, _, _ = Move(30, 30, 3, 1, tm)
	assert.Equal(t, float32(33), x)
	assert.Equal(t, float32(31), y)
}

func TestMove_StaysInWorld(t *testing.T) {
	tm := world.NewUniform(10, 10, 10, 10, world.Grass)
	x, _, vx, _ := Move(99, 50, 3, 0, tm)
	assert.Equal(t, float32(99), x, "bounces at world edge")
	assert.Equal(t, float32(-3), vx, "bounces at world edge")
}
