// Package lod maps the continuous viewport scale to a discrete
// visibility tier. The mapping is a pure step function: no hysteresis,
// no internal state, identical inputs yield identical tiers.
package lod

// Tier is the active visibility level
type Tier uint8

const (
	ZoneView Tier = iota // zone outlines only
	RowView              // zones plus row segments
	SeatView             // rows plus individual culled seats
)

// String returns human-readable tier name
func (t Tier) String() string {
	switch t {
	case ZoneView:
		return "ZONE"
	case RowView:
		return "ROW"
	case SeatView:
		return "SEAT"
	default:
		return "UNKNOWN"
	}
}

// Controller holds the two scale thresholds
// Boundaries belong to the higher tier: scale == ZoneThreshold is
// RowView, scale == RowThreshold is SeatView
type Controller struct {
	ZoneThreshold float64
	RowThreshold  float64
}

// NewController validates threshold ordering; swapped thresholds are a
// construction bug, not a runtime condition, so it normalizes silently
func NewController(zoneThreshold, rowThreshold float64) *Controller {
	if rowThreshold < zoneThreshold {
		zoneThreshold, rowThreshold = rowThreshold, zoneThreshold
	}
	return &Controller{
		ZoneThreshold: zoneThreshold,
		RowThreshold:  rowThreshold,
	}
}

// TierFor returns the tier for a scale value
func (c *Controller) TierFor(scale float64) Tier {
	switch {
	case scale < c.ZoneThreshold:
		return ZoneView
	case scale < c.RowThreshold:
		return RowView
	default:
		return SeatView
	}
}
