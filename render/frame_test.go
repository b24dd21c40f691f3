package render

import (
	"strings"
	"testing"

	"seatmap/camera"
	"seatmap/lod"
	"seatmap/selection"
	"seatmap/world"
	"seatmap/worldgen"
)

func frameWorld(t *testing.T) (*world.World, *camera.Viewport) {
	t.Helper()
	w, err := worldgen.Generate(worldgen.Shape{
		Zones: 2, RowsPerZone: 4, SeatsPerRow: 6,
	}, 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	vp := camera.New(w.Bounds, nil)
	vp.Resize(120, 40)
	vp.Fit()
	return w, vp
}

func TestZoneTierRendersNoSeats(t *testing.T) {
	w, vp := frameWorld(t)
	sel := selection.NewStore()

	f := BuildFrame(w, vp, lod.ZoneView, sel, nil)
	if len(f.Seats) != 0 || f.SeatsInView != 0 {
		t.Errorf("Zone tier must carry no seats, got %d", len(f.Seats))
	}
	if len(f.Rows) != 0 {
		t.Errorf("Zone tier must carry no rows, got %d", len(f.Rows))
	}
	if len(f.Zones) == 0 {
		t.Error("Expected zone quads in view")
	}
}

func TestRowTierRendersRowsNotSeats(t *testing.T) {
	w, vp := frameWorld(t)
	sel := selection.NewStore()

	f := BuildFrame(w, vp, lod.RowView, sel, nil)
	if len(f.Rows) == 0 {
		t.Error("Expected row segments at row tier")
	}
	if len(f.Seats) != 0 {
		t.Errorf("Row tier must carry no seats, got %d", len(f.Seats))
	}
}

func TestSeatTierUsesVisibleSetVerbatim(t *testing.T) {
	w, vp := frameWorld(t)
	sel := selection.NewStore()

	visible := []*world.Seat{w.Seats[0], w.Seats[3]}
	f := BuildFrame(w, vp, lod.SeatView, sel, visible)

	if len(f.Seats) != 2 || f.SeatsInView != 2 {
		t.Fatalf("Expected exactly the 2 visible seats, got %d", len(f.Seats))
	}
	if f.Seats[0].SeatID != w.Seats[0].ID || f.Seats[1].SeatID != w.Seats[3].ID {
		t.Error("Render set order must match the cull result")
	}
}

// Selection overrides status color with the highlight blend
func TestSelectedSeatColorOverridesStatus(t *testing.T) {
	w, vp := frameWorld(t)
	sel := selection.NewStore()

	seat := w.Seats[0]
	seat.Status = world.StatusAvailable
	sel.Toggle(seat.ID, seat.Status)

	plain := BuildFrame(w, vp, lod.SeatView, selection.NewStore(), []*world.Seat{seat})
	highlighted := BuildFrame(w, vp, lod.SeatView, sel, []*world.Seat{seat})

	if !highlighted.Seats[0].Selected {
		t.Fatal("Expected seat marked selected")
	}
	if plain.Seats[0].Color == highlighted.Seats[0].Color {
		t.Error("Selected seat must draw in a distinct highlight color")
	}
}

func TestStatusLineFormat(t *testing.T) {
	line := StatusLine(3, 214, 0.75, lod.SeatView)

	for _, want := range []string{"3 selected", "214 seats in view", "0.75", "SEAT", "•"} {
		if !strings.Contains(line, want) {
			t.Errorf("Status line %q missing %q", line, want)
		}
	}
}

func TestFrameEmptyWorld(t *testing.T) {
	w, err := world.New(nil, nil, nil)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	vp := camera.New(w.Bounds, nil)
	vp.Resize(80, 24)

	f := BuildFrame(w, vp, lod.SeatView, selection.NewStore(), nil)
	if len(f.Zones) != 0 || len(f.Rows) != 0 || len(f.Seats) != 0 {
		t.Error("Empty dataset must produce an empty render set")
	}
}
