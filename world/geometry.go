package world

// Point represents a 2D world-space coordinate
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned rectangle in world coordinates
// Bounds are closed on all four sides
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether (x, y) lies inside the box, boundary inclusive
func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether two boxes overlap, touching edges included
func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.MaxY - b.MinY
}

// CenterX returns the horizontal midpoint
func (b BBox) CenterX() float64 {
	return (b.MinX + b.MaxX) / 2
}

// CenterY returns the vertical midpoint
func (b BBox) CenterY() float64 {
	return (b.MinY + b.MaxY) / 2
}

// Union returns the smallest box covering both b and o
func (b BBox) Union(o BBox) BBox {
	out := b
	if o.MinX < out.MinX {
		out.MinX = o.MinX
	}
	if o.MinY < out.MinY {
		out.MinY = o.MinY
	}
	if o.MaxX > out.MaxX {
		out.MaxX = o.MaxX
	}
	if o.MaxY > out.MaxY {
		out.MaxY = o.MaxY
	}
	return out
}

// PolygonBounds computes the bounding box of a point sequence
// Returns a zero box for an empty polygon
func PolygonBounds(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	b := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
