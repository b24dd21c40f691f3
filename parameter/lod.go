package parameter

// Level-of-detail tier thresholds over the viewport scale
// Crossing a threshold switches tier immediately in either direction;
// there is no hysteresis band (see DESIGN.md for the flicker trade-off)
const (
	// LODZoneThreshold is the scale below which only zone outlines draw
	LODZoneThreshold = 0.20

	// LODRowThreshold is the scale at or above which individual seats draw
	LODRowThreshold = 0.40
)
