package stats

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/config"
)

func TestHistoryRing(t *testing.T) {
	h := NewHistory(3)
	_, ok := h.Last()
	assert.False(t, ok)

	for i := 1; i <= 5; i++ {
		h.Push(Sample{Tick: int64(i), Boids: i * 10})
	}

	require.Equal(t, 3, h.Len())
	assert.Equal(t, int64(3), h.At(0).Tick, "oldest kept sample")
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, int64(5), last.Tick)

	assert.Equal(t, []float64{30, 40, 50}, h.Series(nil, FieldBoids))
}

func TestCollectorSamplesOnInterval(t *testing.T) {
	c := NewCollector(1.0, 10)

	c.RecordBirth(components.KindBoid)
	c.RecordBirth(components.KindBoid)
	c.RecordBirth(components.KindPredator)
	c.RecordDeath(components.KindBoid)
	c.RecordKill()

	assert.False(t, c.Advance(0.5))
	assert.True(t, c.Advance(0.5))

	s := c.Flush(60, 1.0, Population{
		Boids:            2,
		Predators:        1,
		Food:             4,
		FoodTotal:        40,
		BoidEnergies:     []float64{0.2, 0.6},
		PredatorEnergies: []float64{0.9},
	})

	assert.Equal(t, 2, s.BoidBirths)
	assert.Equal(t, 1, s.PredatorBirths)
	assert.Equal(t, 3, s.Births())
	assert.Equal(t, 1, s.Deaths())
	assert.Equal(t, 1, s.Kills)
	assert.InDelta(t, 0.4, s.MeanBoidEnergy, 1e-9)
	assert.InDelta(t, 0.9, s.MeanPredatorEnergy, 1e-9)
	assert.Equal(t, 1, c.History().Len())

	// Counters reset after flush
	assert.False(t, c.Advance(0.1))
	s = c.Flush(66, 1.1, Population{})
	assert.Zero(t, s.Births())
	assert.Zero(t, s.Kills)
	assert.Zero(t, s.MeanBoidEnergy, "no boids means zero mean")
}

func TestSummarize(t *testing.T) {
	s := Summarize("x", []float64{5, 1, 3, 2, 4})
	assert.Equal(t, 5, s.N)
	assert.InDelta(t, 3, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Median)
}

func TestSummarizeEdgeCases(t *testing.T) {
	assert.Equal(t, Summary{Name: "empty"}, Summarize("empty", nil))

	one := Summarize("one", []float64{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Zero(t, one.StdDev)
	assert.Equal(t, 7.0, one.Median)
}

func TestSummarizeHistory(t *testing.T) {
	h := NewHistory(4)
	h.Push(Sample{Boids: 10, Predators: 2})
	h.Push(Sample{Boids: 20, Predators: 4})

	sums := SummarizeHistory(h)
	require.Len(t, sums, 5)
	assert.Equal(t, "boids", sums[0].Name)
	assert.InDelta(t, 15, sums[0].Mean, 1e-9)
	assert.InDelta(t, 3, sums[1].Mean, 1e-9)
}

func TestNilOutputIsNoop(t *testing.T) {
	out, err := NewOutput("")
	require.NoError(t, err)
	assert.Nil(t, out)

	assert.NoError(t, out.WriteSample(Sample{}))
	assert.NoError(t, out.WriteSummary(nil))
	assert.NoError(t, out.WriteConfig(nil))
	assert.NoError(t, out.Close())
	assert.Equal(t, "", out.Dir())
}

func TestOutputWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	out, err := NewOutput(dir)
	require.NoError(t, err)

	require.NoError(t, out.WriteSample(Sample{Tick: 60, Boids: 10}))
	require.NoError(t, out.WriteSample(Sample{Tick: 120, Boids: 12}))
	require.NoError(t, out.WriteSummary([]Summary{Summarize("boids", []float64{10, 12})}))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "tick,sim_time,boids"))

	var rows []Sample
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 12, rows[1].Boids)

	_, err = os.Stat(filepath.Join(dir, "summary.csv"))
	assert.NoError(t, err)
}

func TestOutputWritesConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	out, err := NewOutput(t.TempDir())
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.WriteConfig(cfg))
	_, err = os.Stat(filepath.Join(out.Dir(), "config.yaml"))
	assert.NoError(t, err)
}
