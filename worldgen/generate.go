// Package worldgen is the data-generation collaborator: it produces a
// deterministic demo venue satisfying the world invariants. The core
// never depends on how the dataset was produced, only that it
// validates.
package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"seatmap/world"
)

// Shape describes the generated venue layout
type Shape struct {
	Zones       int
	RowsPerZone int
	SeatsPerRow int

	// Initial status mix; the remainder starts AVAILABLE
	HoldFraction float64
	SoldFraction float64
}

// DefaultShape is the demo venue: 3 zones, 14 rows each, 28 seats per
// row, 1176 seats total
func DefaultShape() Shape {
	return Shape{
		Zones:        3,
		RowsPerZone:  14,
		SeatsPerRow:  28,
		HoldFraction: 0.10,
		SoldFraction: 0.15,
	}
}

// Layout spacing in world units
const (
	seatSpacing = 16.0
	rowSpacing  = 24.0
	zoneMargin  = 16.0
	zoneGap     = 40.0
	worldMargin = 20.0
	seatRadius  = 3.0
)

// Generate builds a venue with zones laid out left to right
// The same seed always yields the same dataset, statuses included
func Generate(shape Shape, seed int64) (*world.World, error) {
	if shape.Zones <= 0 || shape.RowsPerZone <= 0 || shape.SeatsPerRow <= 0 {
		return nil, fmt.Errorf("invalid venue shape %dx%dx%d", shape.Zones, shape.RowsPerZone, shape.SeatsPerRow)
	}

	rng := rand.New(rand.NewSource(seed))

	zoneW := 2*zoneMargin + float64(shape.SeatsPerRow-1)*seatSpacing
	zoneH := 2*zoneMargin + float64(shape.RowsPerZone-1)*rowSpacing

	zones := make([]*world.Zone, 0, shape.Zones)
	rows := make([]*world.Row, 0, shape.Zones*shape.RowsPerZone)
	seats := make([]*world.Seat, 0, shape.Zones*shape.RowsPerZone*shape.SeatsPerRow)

	for zi := 0; zi < shape.Zones; zi++ {
		zx := worldMargin + float64(zi)*(zoneW+zoneGap)
		zy := worldMargin

		bounds := world.BBox{MinX: zx, MinY: zy, MaxX: zx + zoneW, MaxY: zy + zoneH}
		hue := 360.0 * float64(zi) / float64(shape.Zones)
		z := &world.Zone{
			ID: fmt.Sprintf("Z%d", zi+1),
			Polygon: []world.Point{
				{X: bounds.MinX, Y: bounds.MinY},
				{X: bounds.MaxX, Y: bounds.MinY},
				{X: bounds.MaxX, Y: bounds.MaxY},
				{X: bounds.MinX, Y: bounds.MaxY},
			},
			Bounds:    bounds,
			Color:     colorful.Hsv(hue, 0.55, 0.80).Hex(),
			PriceTier: fmt.Sprintf("P%d", zi+1),
		}
		zones = append(zones, z)

		for ri := 0; ri < shape.RowsPerZone; ri++ {
			y := zy + zoneMargin + float64(ri)*rowSpacing
			r := &world.Row{
				ID:     fmt.Sprintf("R%02d", ri+1),
				ZoneID: z.ID,
				Y:      y,
				XStart: zx + zoneMargin,
				XEnd:   zx + zoneMargin + float64(shape.SeatsPerRow-1)*seatSpacing,
			}
			rows = append(rows, r)

			for si := 0; si < shape.SeatsPerRow; si++ {
				seats = append(seats, &world.Seat{
					ID:        fmt.Sprintf("%s-%s-S%02d", z.ID, r.ID, si+1),
					ZoneID:    z.ID,
					RowID:     r.ID,
					X:         r.XStart + float64(si)*seatSpacing,
					Y:         y,
					Radius:    seatRadius,
					PriceTier: z.PriceTier,
					Status:    rollStatus(rng, shape),
				})
			}
		}
	}

	return world.New(zones, rows, seats)
}

func rollStatus(rng *rand.Rand, shape Shape) world.Status {
	v := rng.Float64()
	switch {
	case v < shape.SoldFraction:
		return world.StatusSold
	case v < shape.SoldFraction+shape.HoldFraction:
		return world.StatusHold
	default:
		return world.StatusAvailable
	}
}
