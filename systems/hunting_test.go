package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
)

func testHuntParams() HuntParams {
	return HuntParams{
		VisionRange:  100,
		ChaseFactor:  0.05,
		WanderFactor: 0.3,
		MinSpeed:     1,
		MaxSpeed:     4,
	}
}

func predator(x, y, vx, vy float32) Agent {
	return Agent{Kind: components.KindPredator, X: x, Y: y, VX: vx, VY: vy, Energy: 1, Alive: true}
}

func TestHunt_ChasesNearestBoid(t *testing.T) {
	agents := []Agent{
		predator(500, 500, 1, 0),
		boid(560, 500, 0, 0),
		boid(500, 530, 0, 0),
	}

	intent := Hunt(0, agents, buildGrid(agents), testHuntParams(), 0)
	require.Equal(t, int32(2), intent.Target, "nearest boid")
	assert.Positive(t, intent.VY, "turns toward prey")
}

func TestHunt_IgnoresDeadAndPredators(t *testing.T) {
	dead := boid(510, 500, 0, 0)
	dead.Alive = false
	agents := []Agent{
		predator(500, 500, 1, 0),
		dead,
		predator(505, 500, 0, 0),
		boid(580, 500, 0, 0),
	}

	intent := Hunt(0, agents, buildGrid(agents), testHuntParams(), 0)
	assert.Equal(t, int32(3), intent.Target)
}

func TestHunt_WandersWithoutPrey(t *testing.T) {
	agents := []Agent{predator(500, 500, 2, 0)}

	intent := Hunt(0, agents, buildGrid(agents), testHuntParams(), 0)
	assert.Equal(t, int32(-1), intent.Target)
	assert.Equal(t, float32(2), intent.VX, "zero jitter keeps heading")
	assert.Zero(t, intent.VY, "zero jitter keeps heading")

	intent = Hunt(0, agents, buildGrid(agents), testHuntParams(), 1)
	want := Heading(2, 0) + 0.3
	assert.InDelta(t, want, Heading(intent.VX, intent.VY), 1e-4)
}

func TestHunt_StationaryStartsMoving(t *testing.T) {
	agents := []Agent{predator(500, 500, 0, 0)}

	intent := Hunt(0, agents, buildGrid(agents), testHuntParams(), 0.5)
	assert.GreaterOrEqual(t, velocityMagnitude(intent.VX, intent.VY), float32(1-1e-5), "at least min speed")
}

func TestBite(t *testing.T) {
	pred := components.Energy{Value: 50, Max: 100, Alive: true}
	prey := components.Energy{Value: 30, Max: 100, Alive: true}

	require.False(t, Bite(&pred, &prey, 20, 0.5), "prey should survive first bite")
	assert.Equal(t, float32(10), prey.Value)
	assert.Equal(t, float32(60), pred.Value)

	require.True(t, Bite(&pred, &prey, 20, 0.5), "second bite kills")
	assert.False(t, prey.Alive)
	assert.Zero(t, prey.Value)
	assert.Equal(t, float32(65), pred.Value, "predator gains only what prey had")
}

func TestBite_CapsPredatorEnergy(t *testing.T) {
	pred := components.Energy{Value: 95, Max: 100, Alive: true}
	prey := components.Energy{Value: 80, Max: 100, Alive: true}

	Bite(&pred, &prey, 40, 1)
	assert.Equal(t, float32(100), pred.Value)
}

func TestBite_DeadParticipants(t *testing.T) {
	pred := components.Energy{Value: 50, Max: 100, Alive: true}
	prey := components.Energy{Value: 0, Max: 100, Alive: false}

	assert.False(t, Bite(&pred, &prey, 20, 1), "biting a corpse must not report a kill")
	assert.Equal(t, float32(50), pred.Value, "predator gains nothing")
}
