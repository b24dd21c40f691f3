package parameter

import "time"

// Event Loop & Frame Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	// Seat maps are mostly static between input events; 30 FPS keeps wheel
	// zoom smooth without burning CPU in idle terminals
	FrameUpdateInterval = 33 * time.Millisecond

	// AnimationDuration is the length of camera tweens (ResetView, FocusSeats)
	AnimationDuration = 250 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
