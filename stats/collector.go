package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ecosim/components"
)

// Population is the state of the world handed to the collector when a sample is
// taken.
type Population struct {
	Boids, Predators, Food int
	FoodTotal              float64
	BoidEnergies           []float64 // energy fractions of living boids
	PredatorEnergies       []float64 // energy fractions of living predators
}

// Collector accumulates events between samples and produces a Sample every
// interval seconds of virtual time.
type Collector struct {
	interval float64
	since    float64

	history *History

	boidBirths     int
	predatorBirths int
	boidDeaths     int
	predatorDeaths int
	kills          int
	respawns       int
}

// NewCollector creates a collector sampling every interval virtual seconds and
// keeping historyLen samples.
func NewCollector(interval float64, historyLen int) *Collector {
	return &Collector{
		interval: interval,
		history:  NewHistory(historyLen),
	}
}

// RecordBirth records a birth.
func (c *Collector) RecordBirth(kind components.Kind) {
	if kind == components.KindBoid {
		c.boidBirths++
	} else {
		c.predatorBirths++
	}
}

// RecordDeath records a death.
func (c *Collector) RecordDeath(kind components.Kind) {
	if kind == components.KindBoid {
		c.boidDeaths++
	} else {
		c.predatorDeaths++
	}
}

// RecordKill records a predator kill.
func (c *Collector) RecordKill() {
	c.kills++
}

// RecordRespawn records a population reseed.
func (c *Collector) RecordRespawn() {
	c.respawns++
}

// Advance adds dt virtual seconds and reports whether a sample is due.
func (c *Collector) Advance(dt float64) bool {
	c.since += dt
	return c.since >= c.interval
}

// Flush builds a Sample from the counters and the given population, appends it
// to the history and resets the counters.
func (c *Collector) Flush(tick int64, simTime float64, p Population) Sample {
	s := Sample{
		Tick:               tick,
		Time:               simTime,
		Boids:              p.Boids,
		Predators:          p.Predators,
		Food:               p.Food,
		FoodTotal:          p.FoodTotal,
		MeanBoidEnergy:     mean(p.BoidEnergies),
		MeanPredatorEnergy: mean(p.PredatorEnergies),
		BoidBirths:         c.boidBirths,
		PredatorBirths:     c.predatorBirths,
		BoidDeaths:         c.boidDeaths,
		PredatorDeaths:     c.predatorDeaths,
		Kills:              c.kills,
		Respawns:           c.respawns,
	}

	c.history.Push(s)

	c.boidBirths = 0
	c.predatorBirths = 0
	c.boidDeaths = 0
	c.predatorDeaths = 0
	c.kills = 0
	c.respawns = 0
	c.since -= c.interval
	if c.since < 0 || c.since >= c.interval {
		c.since = 0
	}

	return s
}

// History returns the sample history.
func (c *Collector) History() *History {
	return c.history
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
