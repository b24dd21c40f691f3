package parameter

// Spatial index tuning
const (
	// GridCellSize is the uniform bucket edge length in world units
	// Sized near a typical seat-tier view extent so a query touches a
	// handful of buckets instead of the full seat list
	GridCellSize = 64.0
)
