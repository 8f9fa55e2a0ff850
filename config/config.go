// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Assets    AssetsConfig    `yaml:"assets"`
	Colors    ColorsConfig    `yaml:"colors"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Boids     BoidsConfig     `yaml:"boids"`
	Predators PredatorsConfig `yaml:"predators"`
	Elements  ElementsConfig  `yaml:"elements"`
	Camera    CameraConfig    `yaml:"camera"`
	Settings  SettingsConfig  `yaml:"settings"`
	Stats     StatsConfig     `yaml:"stats"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings. The window is created at a fixed resolution.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// AssetsConfig describes the sprite sheet layout.
type AssetsConfig struct {
	SpriteSheetPath string `yaml:"sprite_sheet_path"`
	TileW           int    `yaml:"tile_w"`
	TileH           int    `yaml:"tile_h"`
	Rows            int    `yaml:"rows"`
	Cols            int    `yaml:"cols"`
}

// ColorsConfig holds hex colour strings ("#rrggbb").
type ColorsConfig struct {
	Background string `yaml:"background"`
	Boid       string `yaml:"boid"`
	Predator   string `yaml:"predator"`
	Food       string `yaml:"food"`
}

// WorldConfig holds tile map generation parameters.
// World size in world units is Cols*TileW by Rows*TileH.
type WorldConfig struct {
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	NoiseScale  float64 `yaml:"noise_scale"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Gain        float64 `yaml:"gain"`
	WaterLevel  float64 `yaml:"water_level"`  // noise below this = water
	SandLevel   float64 `yaml:"sand_level"`   // below this = sand
	ForestLevel float64 `yaml:"forest_level"` // above this = forest
	EdgeMargin  float64 `yaml:"edge_margin"`  // world units where agents start turning back
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`
	GridCellSize     float64 `yaml:"grid_cell_size"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
}

// BoidsConfig holds flocking and life-cycle parameters for boids.
type BoidsConfig struct {
	Initial        int     `yaml:"initial"`
	Max            int     `yaml:"max"`
	RespawnCount   int     `yaml:"respawn_count"`
	VisualRange    float64 `yaml:"visual_range"`
	ProtectedRange float64 `yaml:"protected_range"`
	FearRange      float64 `yaml:"fear_range"`
	CenterFactor   float64 `yaml:"center_factor"`   // cohesion
	AvoidFactor    float64 `yaml:"avoid_factor"`    // separation
	MatchingFactor float64 `yaml:"matching_factor"` // alignment
	FleeFactor     float64 `yaml:"flee_factor"`
	FoodFactor     float64 `yaml:"food_factor"`
	TurnFactor     float64 `yaml:"turn_factor"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	InitialEnergy  float64 `yaml:"initial_energy"`
	MaxEnergy      float64 `yaml:"max_energy"`
	HungerLevel    float64 `yaml:"hunger_level"` // seek food below this fraction of max
	BaseCost       float64 `yaml:"base_cost"`    // energy per second
	MoveCost       float64 `yaml:"move_cost"`    // energy per unit speed per second
	GrazeRange     float64 `yaml:"graze_range"`
	GrazeRate      float64 `yaml:"graze_rate"` // energy per second while grazing
	MaxAge         float64 `yaml:"max_age"`
	ReproThreshold float64 `yaml:"repro_threshold"` // fraction of max energy
	MaturityAge    float64 `yaml:"maturity_age"`
	ReproCooldown  float64 `yaml:"repro_cooldown"`
	ChildEnergy    float64 `yaml:"child_energy"` // fraction of parent energy given to child
}

// PredatorsConfig holds hunting and life-cycle parameters for predators.
type PredatorsConfig struct {
	Initial        int     `yaml:"initial"`
	Max            int     `yaml:"max"`
	RespawnCount   int     `yaml:"respawn_count"`
	VisionRange    float64 `yaml:"vision_range"`
	ChaseFactor    float64 `yaml:"chase_factor"`
	WanderFactor   float64 `yaml:"wander_factor"`
	TurnFactor     float64 `yaml:"turn_factor"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	BiteRange      float64 `yaml:"bite_range"`
	BiteEnergy     float64 `yaml:"bite_energy"`
	BiteCooldown   float64 `yaml:"bite_cooldown"`
	Efficiency     float64 `yaml:"efficiency"` // fraction of prey energy gained
	InitialEnergy  float64 `yaml:"initial_energy"`
	MaxEnergy      float64 `yaml:"max_energy"`
	BaseCost       float64 `yaml:"base_cost"`
	MoveCost       float64 `yaml:"move_cost"`
	MaxAge         float64 `yaml:"max_age"`
	ReproThreshold float64 `yaml:"repro_threshold"`
	MaturityAge    float64 `yaml:"maturity_age"`
	ReproCooldown  float64 `yaml:"repro_cooldown"`
	ChildEnergy    float64 `yaml:"child_energy"`
}

// ElementsConfig holds food plant parameters.
type ElementsConfig struct {
	FoodCount    int     `yaml:"food_count"`
	FoodMax      float64 `yaml:"food_max"`
	RegrowRate   float64 `yaml:"regrow_rate"`   // amount per second
	RespawnDelay float64 `yaml:"respawn_delay"` // seconds a depleted plant stays empty before moving
}

// CameraConfig holds camera control parameters.
type CameraConfig struct {
	PanSpeed      float64 `yaml:"pan_speed"`
	MaxZoom       float64 `yaml:"max_zoom"`
	ClampLerp     float64 `yaml:"clamp_lerp"`
	FollowLerp    float64 `yaml:"follow_lerp"`
	WheelZoomStep float64 `yaml:"wheel_zoom_step"`
}

// SettingsConfig holds initial values of the runtime Settings resource.
type SettingsConfig struct {
	EnableGizmos     bool    `yaml:"enable_gizmos"`
	ShowPlots        bool    `yaml:"show_plots"`
	ShowPlotSettings bool    `yaml:"show_plot_settings"`
	TimeScale        float64 `yaml:"time_scale"`
	MinTimeScale     float64 `yaml:"min_time_scale"`
	MaxTimeScale     float64 `yaml:"max_time_scale"`
}

// StatsConfig holds statistics sampling parameters.
type StatsConfig struct {
	SampleInterval float64 `yaml:"sample_interval"` // virtual seconds between samples
	HistoryLen     int     `yaml:"history_len"`     // samples kept for plots
	LogEvery       int     `yaml:"log_every"`       // log every Nth sample when log-stats is on
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32    float32 // Physics.DT as float32
	WorldW  float32 // World.Cols * Assets.TileW
	WorldH  float32 // World.Rows * Assets.TileH
	WindowW float32
	WindowH float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values that would make the simulation ill-defined.
func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Assets.TileW <= 0 || c.Assets.TileH <= 0:
		return fmt.Errorf("tile size must be positive, got %dx%d", c.Assets.TileW, c.Assets.TileH)
	case c.World.Cols <= 0 || c.World.Rows <= 0:
		return fmt.Errorf("world grid must be positive, got %dx%d", c.World.Cols, c.World.Rows)
	case c.Physics.DT <= 0:
		return fmt.Errorf("physics dt must be positive, got %v", c.Physics.DT)
	case c.Physics.GridCellSize <= 0:
		return fmt.Errorf("grid cell size must be positive, got %v", c.Physics.GridCellSize)
	case c.Settings.MinTimeScale < 0 || c.Settings.MaxTimeScale < c.Settings.MinTimeScale:
		return fmt.Errorf("invalid time scale bounds [%v, %v]", c.Settings.MinTimeScale, c.Settings.MaxTimeScale)
	case c.Stats.SampleInterval <= 0:
		return fmt.Errorf("stats sample interval must be positive, got %v", c.Stats.SampleInterval)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.WorldW = float32(c.World.Cols * c.Assets.TileW)
	c.Derived.WorldH = float32(c.World.Rows * c.Assets.TileH)
	c.Derived.WindowW = float32(c.Window.Width)
	c.Derived.WindowH = float32(c.Window.Height)

	if c.Physics.MaxStepsPerFrame <= 0 {
		c.Physics.MaxStepsPerFrame = 1
	}
	if c.Stats.HistoryLen <= 0 {
		c.Stats.HistoryLen = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
