// Package status simulates an external real-time booking feed by
// randomly walking seat statuses between AVAILABLE and HOLD. SOLD is
// absorbing for this engine: it is only produced by an explicit booking
// action on the world, never by the random walk.
package status

import (
	"math/rand"
	"time"

	"seatmap/event"
	"seatmap/world"
)

// Engine mutates a bounded random subset of seats per tick
// The ticker goroutine only pushes a tick event; the mutation itself
// runs in the loop handler via Step, keeping all world writes on the
// single handler goroutine
type Engine struct {
	rng          *rand.Rand
	seatsPerTick int
	holdProb     float64
	releaseProb  float64

	queue  *event.Queue
	ticker *time.Ticker
	done   chan struct{}
}

// NewEngine creates a seeded engine
// The seed makes transition sequences reproducible in tests
func NewEngine(seed int64, seatsPerTick int, holdProb, releaseProb float64, queue *event.Queue) *Engine {
	return &Engine{
		rng:          rand.New(rand.NewSource(seed)),
		seatsPerTick: seatsPerTick,
		holdProb:     holdProb,
		releaseProb:  releaseProb,
		queue:        queue,
	}
}

// Step applies one mutation pass: seatsPerTick seats sampled uniformly
// with replacement (so fewer may actually change), each transitioned
// probabilistically. Returns the number of seats whose status changed.
// A status change invalidates status-dependent render caches only;
// positions are untouched, so no re-cull is needed
func (e *Engine) Step(w *world.World) int {
	if len(w.Seats) == 0 {
		return 0
	}

	changed := 0
	for i := 0; i < e.seatsPerTick; i++ {
		s := w.Seats[e.rng.Intn(len(w.Seats))]
		switch s.Status {
		case world.StatusAvailable:
			if e.rng.Float64() < e.holdProb {
				s.Status = world.StatusHold
				changed++
			}
		case world.StatusHold:
			if e.rng.Float64() < e.releaseProb {
				s.Status = world.StatusAvailable
				changed++
			}
		case world.StatusSold:
			// absorbing
		}
	}
	return changed
}

// Start launches the tick goroutine with the given period
// Each tick pushes a TypeStatusTick event for the loop to handle
func (e *Engine) Start(interval time.Duration) {
	if e.ticker != nil {
		return
	}
	e.ticker = time.NewTicker(interval)
	e.done = make(chan struct{})

	go func() {
		for {
			select {
			case <-e.ticker.C:
				e.queue.Push(event.Event{Type: event.TypeStatusTick})
			case <-e.done:
				return
			}
		}
	}()
}

// Stop cancels the tick goroutine. Must run before the screen is
// released so no tick lands on torn-down state. Idempotent
func (e *Engine) Stop() {
	if e.ticker == nil {
		return
	}
	e.ticker.Stop()
	close(e.done)
	e.ticker = nil
}
