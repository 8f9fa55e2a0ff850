package stats

import (
	"log/slog"
	"time"
)

// Phase identifies one part of a simulation step.
type Phase int

// Step phases in execution order.
const (
	PhaseSnapshot Phase = iota
	PhaseIntents
	PhaseMovement
	PhaseFeeding
	PhaseEnergy
	PhaseReproduction
	PhaseCleanup
	PhaseFood
	PhaseStats
	numPhases
)

var phaseNames = [numPhases]string{
	PhaseSnapshot:     "snapshot",
	PhaseIntents:      "intents",
	PhaseMovement:     "movement",
	PhaseFeeding:      "feeding",
	PhaseEnergy:       "energy",
	PhaseReproduction: "reproduction",
	PhaseCleanup:      "cleanup",
	PhaseFood:         "food",
	PhaseStats:        "stats",
}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

type stepTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// StepTimer measures step phases over a rolling window of steps.
type StepTimer struct {
	window []stepTiming
	next   int
	n      int

	current    stepTiming
	stepStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	now func() time.Time
}

// NewStepTimer creates a timer averaging over the last windowSize steps.
func NewStepTimer(windowSize int) *StepTimer {
	if windowSize < 1 {
		windowSize = 60
	}
	return &StepTimer{window: make([]stepTiming, windowSize), now: time.Now}
}

// StartStep begins timing a step.
func (t *StepTimer) StartStep() {
	t.stepStart = t.now()
	t.current = stepTiming{}
	t.inPhase = false
}

// StartPhase ends the running phase, if any, and starts p.
func (t *StepTimer) StartPhase(p Phase) {
	now := t.now()
	if t.inPhase {
		t.current.phases[t.phase] += now.Sub(t.phaseStart)
	}
	t.phase, t.phaseStart, t.inPhase = p, now, true
}

// EndStep closes the running phase and records the step.
func (t *StepTimer) EndStep() {
	now := t.now()
	if t.inPhase {
		t.current.phases[t.phase] += now.Sub(t.phaseStart)
		t.inPhase = false
	}
	t.current.total = now.Sub(t.stepStart)

	t.window[t.next] = t.current
	t.next = (t.next + 1) % len(t.window)
	if t.n < len(t.window) {
		t.n++
	}
}

// PerfStats aggregates the timing window.
type PerfStats struct {
	Steps        int
	AvgStep      time.Duration
	MinStep      time.Duration
	MaxStep      time.Duration
	StepsPerSec  float64
	PhaseAvg     [numPhases]time.Duration
	PhasePercent [numPhases]float64
}

// Stats computes aggregates over the steps in the window.
func (t *StepTimer) Stats() PerfStats {
	if t.n == 0 {
		return PerfStats{}
	}

	var total time.Duration
	var sums [numPhases]time.Duration
	ps := PerfStats{Steps: t.n}
	for i := 0; i < t.n; i++ {
		s := t.window[i]
		total += s.total
		if i == 0 || s.total < ps.MinStep {
			ps.MinStep = s.total
		}
		ps.MaxStep = max(ps.MaxStep, s.total)
		for p, d := range s.phases {
			sums[p] += d
		}
	}

	ps.AvgStep = total / time.Duration(t.n)
	for p := range sums {
		ps.PhaseAvg[p] = sums[p] / time.Duration(t.n)
		if total > 0 {
			ps.PhasePercent[p] = float64(sums[p]) / float64(total) * 100
		}
	}
	if ps.AvgStep > 0 {
		ps.StepsPerSec = float64(time.Second) / float64(ps.AvgStep)
	}
	return ps
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("steps", s.Steps),
		slog.Int64("avg_step_us", s.AvgStep.Microseconds()),
		slog.Int64("min_step_us", s.MinStep.Microseconds()),
		slog.Int64("max_step_us", s.MaxStep.Microseconds()),
		slog.Float64("steps_per_sec", s.StepsPerSec),
	}
	for p, pct := range s.PhasePercent {
		if pct > 0.1 {
			attrs = append(attrs, slog.Float64(Phase(p).String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}
