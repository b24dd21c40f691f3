// Package render turns the world, viewport, tier and selection into a
// per-frame display list, and draws that list onto a tcell screen. The
// drawing side knows nothing about world semantics beyond the list.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"seatmap/camera"
	"seatmap/lod"
	"seatmap/selection"
	"seatmap/world"
)

// ZoneQuad is a zone footprint in screen cells
type ZoneQuad struct {
	ZoneID string
	Label  string
	X0, Y0 int
	X1, Y1 int
	Color  tcell.Color
}

// RowSegment is a horizontal row line in screen cells
type RowSegment struct {
	RowID  string
	ZoneID string
	X0, X1 int
	Y      int
	Color  tcell.Color
}

// SeatGlyph is one drawable seat with its resolved color
type SeatGlyph struct {
	SeatID   string
	X, Y     int
	Status   world.Status
	Selected bool
	Color    tcell.Color
}

// Frame is the render set for one pass: the active tier plus the
// geometry eligible at that tier
type Frame struct {
	Tier        lod.Tier
	Zones       []ZoneQuad
	Rows        []RowSegment
	Seats       []SeatGlyph
	SeatsInView int
	StatusLine  string
}

// BuildFrame assembles the render set
// Zones draw at every tier for context; rows join at RowView; seats
// join at SeatView. visible is the culler's output for the current view
// rectangle and is used as-is: no further filtering happens here
func BuildFrame(w *world.World, vp *camera.Viewport, tier lod.Tier, sel *selection.Store, visible []*world.Seat) *Frame {
	f := &Frame{Tier: tier}
	view := vp.WorldBBox()

	for _, z := range w.Zones {
		if !z.Bounds.Intersects(view) {
			continue
		}
		x0, y0 := vp.ToScreen(z.Bounds.MinX, z.Bounds.MinY)
		x1, y1 := vp.ToScreen(z.Bounds.MaxX, z.Bounds.MaxY)
		f.Zones = append(f.Zones, ZoneQuad{
			ZoneID: z.ID,
			Label:  z.ID + " " + z.PriceTier,
			X0:     int(x0),
			Y0:     int(y0),
			X1:     int(x1),
			Y1:     int(y1),
			Color:  zoneColor(z),
		})
	}

	if tier >= lod.RowView {
		for _, r := range w.Rows {
			if r.Y < view.MinY || r.Y > view.MaxY || r.XEnd < view.MinX || r.XStart > view.MaxX {
				continue
			}
			x0, y := vp.ToScreen(r.XStart, r.Y)
			x1, _ := vp.ToScreen(r.XEnd, r.Y)
			f.Rows = append(f.Rows, RowSegment{
				RowID:  r.ID,
				ZoneID: r.ZoneID,
				X0:     int(x0),
				X1:     int(x1),
				Y:      int(y),
				Color:  toTcell(colorRowLine),
			})
		}
	}

	if tier == lod.SeatView {
		f.SeatsInView = len(visible)
		f.Seats = make([]SeatGlyph, 0, len(visible))
		for _, s := range visible {
			selected := sel.Has(s.ID)
			sx, sy := vp.ToScreen(s.X, s.Y)
			f.Seats = append(f.Seats, SeatGlyph{
				SeatID:   s.ID,
				X:        int(sx),
				Y:        int(sy),
				Status:   s.Status,
				Selected: selected,
				Color:    seatColor(s, selected),
			})
		}
	}

	f.StatusLine = StatusLine(sel.Size(), f.SeatsInView, vp.Scale(), tier)
	return f
}

// StatusLine formats the human-readable footer for the UI chrome
func StatusLine(selected, inView int, scale float64, tier lod.Tier) string {
	return fmt.Sprintf("%d selected • %d seats in view • zoom %.2f • %s", selected, inView, scale, tier)
}
