package parameter

import "time"

// Seat status simulation tuning
// The engine stands in for an external booking feed: each tick it samples
// a bounded number of seats with replacement and applies a memoryless
// AVAILABLE<->HOLD walk. SOLD is absorbing for the simulation
const (
	// StatusTickInterval is the period between status mutation ticks
	StatusTickInterval = 800 * time.Millisecond

	// StatusSeatsPerTick is the nominal number of seats sampled per tick
	StatusSeatsPerTick = 24

	// StatusHoldProbability is P(AVAILABLE -> HOLD) per sampled seat
	StatusHoldProbability = 0.35

	// StatusReleaseProbability is P(HOLD -> AVAILABLE) per sampled seat
	StatusReleaseProbability = 0.50
)
