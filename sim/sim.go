// Package sim wires the simulation together: entity storage, the state
// machine, virtual time, the camera and the per-step rules.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ecosim/atlas"
	"github.com/pthm-cable/ecosim/camera"
	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/settings"
	"github.com/pthm-cable/ecosim/simtime"
	"github.com/pthm-cable/ecosim/state"
	"github.com/pthm-cable/ecosim/stats"
	"github.com/pthm-cable/ecosim/systems"
	"github.com/pthm-cable/ecosim/world"
)

// perfWindow is the number of steps step timings are averaged over.
const perfWindow = 120

// Assets supplies the sprite sheet layout during setup.
type Assets interface {
	LoadAtlas() (*atlas.Atlas, error)
}

// GridAssets derives the atlas from the configured grid without touching the
// sheet image. Used by headless runs and as the fallback when loading fails.
type GridAssets struct {
	Config config.AssetsConfig
}

// LoadAtlas implements Assets.
func (g GridAssets) LoadAtlas() (*atlas.Atlas, error) {
	return atlas.FromGrid(float32(g.Config.TileW), float32(g.Config.TileH), g.Config.Rows, g.Config.Cols)
}

// Options configure a Sim.
type Options struct {
	Seed     int64
	Assets   Assets        // nil = GridAssets from config
	Output   *stats.Output // nil = no files written
	LogStats bool
}

// Sim holds the complete simulation state.
type Sim struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	world *ecs.World

	animalMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Energy,
		components.Organism,
		components.Sprite,
	]
	animalFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Energy,
		components.Organism,
	]
	foodMapper *ecs.Map3[components.Position, components.Element, components.Sprite]
	foodFilter *ecs.Filter2[components.Position, components.Element]

	// Individual component mappers for lookups
	posMap     *ecs.Map[components.Position]
	velMap     *ecs.Map[components.Velocity]
	energyMap  *ecs.Map[components.Energy]
	orgMap     *ecs.Map[components.Organism]
	elementMap *ecs.Map[components.Element]
	spriteMap  *ecs.Map[components.Sprite]

	tiles  *world.TileMap
	atlas  *atlas.Atlas
	camera *camera.Camera

	// Spatial indices, rebuilt each step from the snapshots
	grid     *systems.SpatialGrid
	foodGrid *systems.SpatialGrid

	// Step scratch
	agents   []systems.Agent
	foods    []systems.Food
	intents  []systems.Intent
	jitter   []float32
	parallel *parallelState

	Settings  settings.Settings
	machine   *state.Machine
	clock     *simtime.Clock
	collector *stats.Collector
	perf      *stats.StepTimer

	flock     systems.FlockParams
	hunt      systems.HuntParams
	boidMeta  systems.Metabolism
	predMeta  systems.Metabolism
	boidRepro systems.Reproduction
	predRepro systems.Reproduction
	samples   int

	// Followed entity for the follow camera modes
	followed    ecs.Entity
	hasFollowed bool

	tick         int64
	nextID       uint32
	numBoids     int
	numPredators int
	numFood      int
}

// New creates a simulation in the Loading state. Nothing is spawned until the
// first frames run setup and world initialisation.
func New(cfg *config.Config, opts Options) *Sim {
	if opts.Assets == nil {
		opts.Assets = GridAssets{Config: cfg.Assets}
	}

	w := ecs.NewWorld()

	s := &Sim{
		cfg:   cfg,
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		world: w,
		animalMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Energy,
			components.Organism,
			components.Sprite,
		](w),
		animalFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Energy,
			components.Organism,
		](w),
		foodMapper: ecs.NewMap3[components.Position, components.Element, components.Sprite](w),
		foodFilter: ecs.NewFilter2[components.Position, components.Element](w),
		posMap:     ecs.NewMap[components.Position](w),
		velMap:     ecs.NewMap[components.Velocity](w),
		energyMap:  ecs.NewMap[components.Energy](w),
		orgMap:     ecs.NewMap[components.Organism](w),
		elementMap: ecs.NewMap[components.Element](w),
		spriteMap:  ecs.NewMap[components.Sprite](w),

		parallel:  newParallelState(),
		Settings:  settings.Default(cfg.Settings),
		machine:   state.NewMachine(),
		clock:     simtime.NewClock(cfg.Physics.DT, cfg.Physics.MaxStepsPerFrame),
		collector: stats.NewCollector(cfg.Stats.SampleInterval, cfg.Stats.HistoryLen),
		perf:      stats.NewStepTimer(perfWindow),

		flock:     systems.FlockParamsFromConfig(cfg.Boids),
		hunt:      systems.HuntParamsFromConfig(cfg.Predators),
		boidMeta:  systems.BoidMetabolism(cfg.Boids),
		predMeta:  systems.PredatorMetabolism(cfg.Predators),
		boidRepro: systems.BoidReproduction(cfg.Boids),
		predRepro: systems.PredatorReproduction(cfg.Predators),
	}

	s.machine.OnEnter(state.Loading, s.setup)
	s.machine.OnEnter(state.InitSim, s.initSim)

	return s
}

// setup loads the sprite atlas, creates the camera and moves on to InitSim.
func (s *Sim) setup() {
	a, err := s.opts.Assets.LoadAtlas()
	if err != nil {
		slog.Warn("loading sprite atlas failed, using configured grid", "error", err)
		a, err = GridAssets{Config: s.cfg.Assets}.LoadAtlas()
		if err != nil {
			slog.Error("invalid sprite atlas, drawing shapes only", "error", err)
		}
	}
	s.atlas = a
	if a != nil {
		slog.Info("sprite atlas ready", "rows", a.Rows, "cols", a.Cols, "tile_w", a.TileW, "tile_h", a.TileH)
	}

	s.camera = camera.New(s.cfg.Derived.WindowW, s.cfg.Derived.WindowH, s.cfg.Derived.WorldW, s.cfg.Derived.WorldH)
	s.camera.MaxZoom = float32(s.cfg.Camera.MaxZoom)

	s.machine.Set(state.InitSim)
}

// initSim generates the tile map and spawns the starting population.
func (s *Sim) initSim() {
	tileW, tileH := float32(s.cfg.Assets.TileW), float32(s.cfg.Assets.TileH)
	s.tiles = world.Generate(s.cfg.World, tileW, tileH, s.opts.Seed)

	worldW, worldH := s.tiles.Size()
	cell := float32(s.cfg.Physics.GridCellSize)
	s.grid = systems.NewSpatialGrid(worldW, worldH, cell)
	s.foodGrid = systems.NewSpatialGrid(worldW, worldH, cell)

	s.spawnFood(s.cfg.Elements.FoodCount)
	s.spawnAnimals(components.KindBoid, s.cfg.Boids.Initial)
	s.spawnAnimals(components.KindPredator, s.cfg.Predators.Initial)

	counts := s.tiles.Counts()
	slog.Info("world initialised",
		"seed", s.opts.Seed,
		"cols", s.tiles.Cols(),
		"rows", s.tiles.Rows(),
		"water", counts[world.Water],
		"sand", counts[world.Sand],
		"grass", counts[world.Grass],
		"forest", counts[world.Forest],
		"boids", s.numBoids,
		"predators", s.numPredators,
		"food", s.numFood,
	)

	if err := s.opts.Output.WriteConfig(s.cfg); err != nil {
		slog.Warn("writing config snapshot failed", "error", err)
	}

	s.machine.Set(state.Simulating)
}

// Finish writes the run summary. Safe to call more than once.
func (s *Sim) Finish() error {
	sums := stats.SummarizeHistory(s.collector.History())
	for _, sum := range sums {
		slog.Info("summary", "stats", sum)
	}
	slog.Info("step timings", "perf", s.perf.Stats())
	if err := s.opts.Output.WriteSummary(sums); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() *config.Config { return s.cfg }

// State returns the active simulation state.
func (s *Sim) State() state.SimState { return s.machine.Current() }

// Machine returns the state machine.
func (s *Sim) Machine() *state.Machine { return s.machine }

// Clock returns the virtual clock.
func (s *Sim) Clock() *simtime.Clock { return s.clock }

// Camera returns the camera, or nil before setup.
func (s *Sim) Camera() *camera.Camera { return s.camera }

// Atlas returns the sprite atlas, or nil before setup or if it was invalid.
func (s *Sim) Atlas() *atlas.Atlas { return s.atlas }

// Tiles returns the tile map, or nil before world initialisation.
func (s *Sim) Tiles() *world.TileMap { return s.tiles }

// History returns the stats history for plotting.
func (s *Sim) History() *stats.History { return s.collector.History() }

// LastSample returns the most recent stats sample, or a zero Sample before the
// first one is taken.
func (s *Sim) LastSample() stats.Sample {
	last, _ := s.collector.History().Last()
	return last
}

// Perf returns step timings over the recent window.
func (s *Sim) Perf() stats.PerfStats { return s.perf.Stats() }

// Tick returns the number of steps run.
func (s *Sim) Tick() int64 { return s.tick }

// SimTime returns virtual seconds simulated.
func (s *Sim) SimTime() float64 { return float64(s.tick) * s.cfg.Physics.DT }

// Counts returns current population sizes.
func (s *Sim) Counts() (boids, predators, food int) {
	return s.numBoids, s.numPredators, s.numFood
}
