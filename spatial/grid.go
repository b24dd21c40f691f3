package spatial

import (
	"math"

	"seatmap/world"
)

// Grid is a uniform bucket index over seat positions
// Seat positions never change after generation, so the grid is built
// once and never rebuilt. A query visits only the buckets intersecting
// the bbox, making culling sublinear in total seat count
type Grid struct {
	cellSize float64
	origin   world.Point // world position of bucket (0, 0)
	cols     int
	rows     int
	buckets  [][]*world.Seat // 1D array: index = row*cols + col
}

// NewGrid buckets the seats by position using the given cell size
// An empty seat list yields a valid zero-bucket grid
func NewGrid(seats []*world.Seat, cellSize float64) *Grid {
	g := &Grid{cellSize: cellSize}
	if len(seats) == 0 || cellSize <= 0 {
		return g
	}

	bounds := world.BBox{MinX: seats[0].X, MinY: seats[0].Y, MaxX: seats[0].X, MaxY: seats[0].Y}
	for _, s := range seats[1:] {
		bounds = bounds.Union(world.BBox{MinX: s.X, MinY: s.Y, MaxX: s.X, MaxY: s.Y})
	}

	g.origin = world.Point{X: bounds.MinX, Y: bounds.MinY}
	g.cols = int(math.Floor(bounds.Width()/cellSize)) + 1
	g.rows = int(math.Floor(bounds.Height()/cellSize)) + 1
	g.buckets = make([][]*world.Seat, g.cols*g.rows)

	for _, s := range seats {
		idx := g.bucketIndex(s.X, s.Y)
		g.buckets[idx] = append(g.buckets[idx], s)
	}
	return g
}

// Query returns the seats inside bbox, boundary inclusive
// Result membership is identical to Cull over the same seat set
func (g *Grid) Query(bbox world.BBox) []*world.Seat {
	out := make([]*world.Seat, 0, 64)
	if len(g.buckets) == 0 {
		return out
	}

	minCol, minRow := g.cellOf(bbox.MinX, bbox.MinY)
	maxCol, maxRow := g.cellOf(bbox.MaxX, bbox.MaxY)

	minCol = clampInt(minCol, 0, g.cols-1)
	maxCol = clampInt(maxCol, 0, g.cols-1)
	minRow = clampInt(minRow, 0, g.rows-1)
	maxRow = clampInt(maxRow, 0, g.rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, s := range g.buckets[row*g.cols+col] {
				if bbox.Contains(s.X, s.Y) {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// Len returns the number of indexed seats
func (g *Grid) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}

func (g *Grid) cellOf(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.origin.X) / g.cellSize))
	row = int(math.Floor((y - g.origin.Y) / g.cellSize))
	return col, row
}

func (g *Grid) bucketIndex(x, y float64) int {
	col, row := g.cellOf(x, y)
	col = clampInt(col, 0, g.cols-1)
	row = clampInt(row, 0, g.rows-1)
	return row*g.cols + col
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
