package stats

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a series.
type Summary struct {
	Name   string  `csv:"series"`
	N      int     `csv:"n"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"stddev"`
	Min    float64 `csv:"min"`
	Median float64 `csv:"median"`
	Max    float64 `csv:"max"`
}

// Summarize computes a Summary of values. An empty series summarises to zeros.
func Summarize(name string, values []float64) Summary {
	s := Summary{Name: name, N: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		// Sample stddev is undefined for a single value
		s.StdDev = 0
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return s
}

// SummarizeHistory summarises the standard plotted series of a history.
func SummarizeHistory(h *History) []Summary {
	var buf []float64
	out := make([]Summary, 0, 5)
	for _, series := range []struct {
		name string
		f    Field
	}{
		{"boids", FieldBoids},
		{"predators", FieldPredators},
		{"food", FieldFood},
		{"boid_energy", FieldBoidEnergy},
		{"predator_energy", FieldPredatorEnergy},
	} {
		buf = h.Series(buf, series.f)
		out = append(out, Summarize(series.name, buf))
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("series", s.Name),
		slog.Int("n", s.N),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("min", s.Min),
		slog.Float64("median", s.Median),
		slog.Float64("max", s.Max),
	)
}
