// Package spatial filters the seat set down to the part of the world
// the viewport can see. Cull is the straightforward linear scan; Grid
// is a uniform bucket index over the immutable seat positions that
// answers the same query by visiting only intersecting buckets.
package spatial

import "seatmap/world"

// Cull returns the seats whose position lies inside bbox
// Bounds are closed on all four sides; a seat exactly on an edge is
// included. O(n) in the seat count
func Cull(seats []*world.Seat, bbox world.BBox) []*world.Seat {
	out := make([]*world.Seat, 0, 64)
	for _, s := range seats {
		if bbox.Contains(s.X, s.Y) {
			out = append(out, s)
		}
	}
	return out
}
