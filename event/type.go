package event

// Type identifies a map event
type Type int

const (
	// === Viewport Events ===

	// TypeViewportScaled signals a scale change (zoom, fit, focus)
	// Trigger: camera.Viewport on any scale mutation
	// Consumer: app loop (LOD recompute + cull) | Payload: *ViewportScaledPayload
	TypeViewportScaled Type = iota

	// TypeViewportMoved signals a position-only change (pan, center)
	// Trigger: camera.Viewport on offset mutation at constant scale
	// Consumer: app loop (re-cull at current tier) | Payload: nil
	TypeViewportMoved

	// === Status Events ===

	// TypeStatusTick requests one status mutation pass
	// Trigger: status.Engine ticker goroutine
	// Consumer: app loop (engine step + selection reconcile + redraw) | Payload: nil
	TypeStatusTick

	// === Selection Events ===

	// TypeSelectionChanged signals seat selection membership change
	// Trigger: app click handler via selection.Store
	// Consumer: app loop (single-seat redraw, count update) | Payload: *SelectionChangedPayload
	TypeSelectionChanged

	// TypeSelectionRejected signals a refused toggle on a sold seat
	// Trigger: app click handler
	// Consumer: app loop (audio cue, status line) | Payload: *SelectionChangedPayload
	TypeSelectionRejected

	// === Booking Events ===

	// TypeSeatSold signals an external booking action on one seat
	// Trigger: debug key / tests
	// Consumer: app loop (mark sold, evict selection, redraw) | Payload: *SeatSoldPayload
	TypeSeatSold
)

// String returns human-readable event name
func (t Type) String() string {
	switch t {
	case TypeViewportScaled:
		return "viewport-scaled"
	case TypeViewportMoved:
		return "viewport-moved"
	case TypeStatusTick:
		return "status-tick"
	case TypeSelectionChanged:
		return "selection-changed"
	case TypeSelectionRejected:
		return "selection-rejected"
	case TypeSeatSold:
		return "seat-sold"
	default:
		return "unknown"
	}
}

// Event is a single queued notification
type Event struct {
	Type    Type
	Payload any
}

// ViewportScaledPayload carries the new scale for LOD recomputation
type ViewportScaledPayload struct {
	Scale float64
}

// SelectionChangedPayload identifies the affected seat
type SelectionChangedPayload struct {
	SeatID   string
	Selected bool
}

// SeatSoldPayload identifies the booked seat
type SeatSoldPayload struct {
	SeatID string
}
