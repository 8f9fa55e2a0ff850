package sim

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/ecosim/components"
	"github.com/pthm-cable/ecosim/systems"
)

// parallelThreshold is the minimum agent count to use parallel processing.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// workerScratch holds per-worker reusable buffers.
type workerScratch struct {
	neighbors []systems.Neighbor
}

// parallelState holds per-worker resources for steering computation.
type parallelState struct {
	numWorkers int
	scratches  []workerScratch
	wg         sync.WaitGroup
}

func newParallelState() *parallelState {
	numWorkers := runtime.GOMAXPROCS(0)
	scratches := make([]workerScratch, numWorkers)
	for i := range scratches {
		scratches[i].neighbors = make([]systems.Neighbor, 0, systems.MaxQueryResults)
	}
	return &parallelState{numWorkers: numWorkers, scratches: scratches}
}

// computeIntents fills s.intents from the snapshots. Steering only reads
// snapshots and writes its own intent slot, so chunks run concurrently and the
// result does not depend on scheduling.
func (s *Sim) computeIntents() {
	n := len(s.agents)
	if n < parallelThreshold || s.parallel.numWorkers == 1 {
		s.computeChunk(0, n, &s.parallel.scratches[0])
		return
	}

	p := s.parallel
	chunk := (n + p.numWorkers - 1) / p.numWorkers
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		p.wg.Add(1)
		go func(start, end int, scratch *workerScratch) {
			defer p.wg.Done()
			s.computeChunk(start, end, scratch)
		}(start, end, &p.scratches[w])
	}
	p.wg.Wait()
}

// computeChunk computes intents for agents [start, end).
func (s *Sim) computeChunk(start, end int, scratch *workerScratch) {
	for i := start; i < end; i++ {
		idx := int32(i)
		if s.agents[i].Kind == components.KindPredator {
			s.intents[i] = systems.Hunt(idx, s.agents, s.grid, s.hunt, s.jitter[i])
			continue
		}
		s.intents[i], scratch.neighbors = systems.Flock(idx, s.agents, s.grid, s.foods, s.foodGrid, s.flock, scratch.neighbors)
	}
}
