// Package stats collects population statistics, keeps a history for plots and
// writes CSV output.
package stats

import "log/slog"

// Sample holds population statistics at the end of a sampling interval.
type Sample struct {
	Tick int64   `csv:"tick"`
	Time float64 `csv:"sim_time"`

	// Population at sample time
	Boids     int     `csv:"boids"`
	Predators int     `csv:"predators"`
	Food      int     `csv:"food"`
	FoodTotal float64 `csv:"food_total"` // summed food amount

	MeanBoidEnergy     float64 `csv:"boid_energy_mean"`
	MeanPredatorEnergy float64 `csv:"predator_energy_mean"`

	// Events during the interval
	BoidBirths     int `csv:"boid_births"`
	PredatorBirths int `csv:"predator_births"`
	BoidDeaths     int `csv:"boid_deaths"`
	PredatorDeaths int `csv:"predator_deaths"`
	Kills          int `csv:"kills"`
	Respawns       int `csv:"respawns"`
}

// Births returns births of both kinds.
func (s Sample) Births() int { return s.BoidBirths + s.PredatorBirths }

// Deaths returns deaths of both kinds.
func (s Sample) Deaths() int { return s.BoidDeaths + s.PredatorDeaths }

// LogValue implements slog.LogValuer for structured logging.
func (s Sample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", s.Tick),
		slog.Float64("sim_time", s.Time),
		slog.Int("boids", s.Boids),
		slog.Int("predators", s.Predators),
		slog.Int("food", s.Food),
		slog.Float64("food_total", s.FoodTotal),
		slog.Float64("boid_energy_mean", s.MeanBoidEnergy),
		slog.Float64("predator_energy_mean", s.MeanPredatorEnergy),
		slog.Int("boid_births", s.BoidBirths),
		slog.Int("predator_births", s.PredatorBirths),
		slog.Int("boid_deaths", s.BoidDeaths),
		slog.Int("predator_deaths", s.PredatorDeaths),
		slog.Int("kills", s.Kills),
		slog.Int("respawns", s.Respawns),
	)
}

// Field selects a plotted series from a sample.
type Field func(Sample) float64

// Common series.
var (
	FieldBoids          Field = func(s Sample) float64 { return float64(s.Boids) }
	FieldPredators      Field = func(s Sample) float64 { return float64(s.Predators) }
	FieldFood           Field = func(s Sample) float64 { return s.FoodTotal }
	FieldBoidEnergy     Field = func(s Sample) float64 { return s.MeanBoidEnergy }
	FieldPredatorEnergy Field = func(s Sample) float64 { return s.MeanPredatorEnergy }
)
