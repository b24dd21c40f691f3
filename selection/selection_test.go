package selection

import (
	"testing"

	"seatmap/world"
)

func TestToggleRejectsSoldSeat(t *testing.T) {
	s := NewStore()

	selected, rejected := s.Toggle("A1", world.StatusSold)
	if !rejected {
		t.Error("Expected toggle on sold seat to be rejected")
	}
	if selected || s.Has("A1") {
		t.Error("Sold seat must never enter the selection set")
	}
	if s.Size() != 0 {
		t.Errorf("Expected size 0, got %d", s.Size())
	}
}

// Two consecutive toggles on a non-sold seat restore original membership
func TestToggleInvolutory(t *testing.T) {
	s := NewStore()

	selected, rejected := s.Toggle("A1", world.StatusAvailable)
	if rejected || !selected || !s.Has("A1") {
		t.Fatal("First toggle should select")
	}

	selected, rejected = s.Toggle("A1", world.StatusAvailable)
	if rejected || selected || s.Has("A1") {
		t.Fatal("Second toggle should deselect")
	}
	if s.Size() != 0 {
		t.Errorf("Expected size 0 after double toggle, got %d", s.Size())
	}
}

func TestToggleHoldSeatAllowed(t *testing.T) {
	s := NewStore()
	if _, rejected := s.Toggle("B2", world.StatusHold); rejected {
		t.Error("HOLD seats are selectable")
	}
	if !s.Has("B2") {
		t.Error("Expected B2 selected")
	}
}

func TestEvictSoldRemovesTransitionedSeats(t *testing.T) {
	zones := []*world.Zone{{
		ID: "Z1",
		Polygon: []world.Point{
			{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
		},
		Bounds: world.BBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
	}}
	rows := []*world.Row{{ID: "R1", ZoneID: "Z1", Y: 50, XStart: 10, XEnd: 90}}
	seats := []*world.Seat{
		{ID: "S1", ZoneID: "Z1", RowID: "R1", X: 10, Y: 50},
		{ID: "S2", ZoneID: "Z1", RowID: "R1", X: 20, Y: 50},
	}
	w, err := world.New(zones, rows, seats)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}

	s := NewStore()
	s.Toggle("S1", world.StatusAvailable)
	s.Toggle("S2", world.StatusAvailable)

	// S1 sells after selection; S2 stays available
	w.MarkSold("S1")
	evicted := s.EvictSold(w)

	if len(evicted) != 1 || evicted[0] != "S1" {
		t.Errorf("Expected [S1] evicted, got %v", evicted)
	}
	if s.Has("S1") {
		t.Error("S1 must be evicted after selling")
	}
	if !s.Has("S2") {
		t.Error("S2 must survive eviction")
	}
}

func TestEvictSoldDropsStaleIDs(t *testing.T) {
	w, err := world.New(nil, nil, nil)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}

	s := NewStore()
	s.Toggle("ghost", world.StatusAvailable)

	evicted := s.EvictSold(w)
	if len(evicted) != 1 || s.Size() != 0 {
		t.Errorf("Expected stale id evicted, got %v with size %d", evicted, s.Size())
	}
}
