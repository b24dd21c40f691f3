package parameter

// Camera zoom configuration
const (
	// ZoomMin is the smallest allowed world-to-screen scale
	ZoomMin = 0.01

	// ZoomMax is the largest allowed world-to-screen scale
	ZoomMax = 8.0

	// ZoomStepKey is the multiplicative zoom factor per key press
	ZoomStepKey = 1.25

	// ZoomStepWheel is the multiplicative zoom factor per wheel notch
	ZoomStepWheel = 1.1

	// PanStepCells is the pan distance in screen cells per key press
	PanStepCells = 4.0
)
