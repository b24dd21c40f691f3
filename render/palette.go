package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"seatmap/world"
)

// Status display colors
var (
	colorAvailable = mustHex("#2ecc71")
	colorHold      = mustHex("#f1c40f")
	colorSold      = mustHex("#5c6370")
	colorHighlight = mustHex("#ffffff")
	colorRowLine   = mustHex("#8a919e")
)

// statusColor returns the base color for a seat status
func statusColor(s world.Status) colorful.Color {
	switch s {
	case world.StatusAvailable:
		return colorAvailable
	case world.StatusHold:
		return colorHold
	default:
		return colorSold
	}
}

// seatColor resolves the draw color for a seat; selection overrides
// status by blending the status color strongly toward the highlight
func seatColor(s *world.Seat, selected bool) tcell.Color {
	c := statusColor(s.Status)
	if selected {
		c = c.BlendLab(colorHighlight, 0.65)
	}
	return toTcell(c)
}

// zoneColor parses the zone's configured hex color
// Malformed colors degrade to the row-line gray rather than erroring
func zoneColor(z *world.Zone) tcell.Color {
	c, err := colorful.Hex(z.Color)
	if err != nil {
		c = colorRowLine
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
