package status

import (
	"testing"
	"time"

	"seatmap/event"
	"seatmap/world"
)

func testWorld(t *testing.T, statuses []world.Status) *world.World {
	t.Helper()

	zone := &world.Zone{
		ID: "Z1",
		Polygon: []world.Point{
			{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 100}, {X: 0, Y: 100},
		},
		Bounds: world.BBox{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 100},
	}
	row := &world.Row{ID: "R1", ZoneID: "Z1", Y: 50, XStart: 0, XEnd: 1000}

	seats := make([]*world.Seat, len(statuses))
	for i, st := range statuses {
		seats[i] = &world.Seat{
			ID:     "S" + string(rune('A'+i)),
			ZoneID: "Z1",
			RowID:  "R1",
			X:      float64(i * 10),
			Y:      50,
			Status: st,
		}
	}

	w, err := world.New([]*world.Zone{zone}, []*world.Row{row}, seats)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	return w
}

// Every seat stays inside the three-state space across many ticks
func TestStepKeepsStatusSpaceValid(t *testing.T) {
	w := testWorld(t, []world.Status{
		world.StatusAvailable, world.StatusHold, world.StatusSold,
		world.StatusAvailable, world.StatusHold, world.StatusAvailable,
	})
	e := NewEngine(7, 10, 0.5, 0.5, nil)

	for i := 0; i < 200; i++ {
		e.Step(w)
		for _, s := range w.Seats {
			if !s.Status.Valid() {
				t.Fatalf("Seat %q left the status space: %d", s.ID, s.Status)
			}
		}
	}
}

// SOLD is absorbing: the random walk never leaves or produces it
func TestSoldIsAbsorbing(t *testing.T) {
	w := testWorld(t, []world.Status{
		world.StatusSold, world.StatusSold, world.StatusAvailable, world.StatusHold,
	})
	e := NewEngine(11, 8, 1.0, 1.0, nil)

	for i := 0; i < 500; i++ {
		e.Step(w)
	}

	if w.Seats[0].Status != world.StatusSold || w.Seats[1].Status != world.StatusSold {
		t.Error("Sold seats must stay sold under the random walk")
	}
	for _, s := range w.Seats[2:] {
		if s.Status == world.StatusSold {
			t.Errorf("Random walk produced SOLD on seat %q", s.ID)
		}
	}
}

func TestZeroProbabilityChangesNothing(t *testing.T) {
	w := testWorld(t, []world.Status{world.StatusAvailable, world.StatusHold})
	e := NewEngine(3, 50, 0, 0, nil)

	if changed := e.Step(w); changed != 0 {
		t.Errorf("Expected 0 changes with zero probabilities, got %d", changed)
	}
	if w.Seats[0].Status != world.StatusAvailable || w.Seats[1].Status != world.StatusHold {
		t.Error("Statuses mutated despite zero probabilities")
	}
}

func TestStepEmptyWorld(t *testing.T) {
	w := testWorld(t, nil)
	e := NewEngine(1, 10, 0.5, 0.5, nil)
	if changed := e.Step(w); changed != 0 {
		t.Errorf("Expected 0 changes on empty world, got %d", changed)
	}
}

// Same seed, same transition sequence
func TestStepDeterministicForSeed(t *testing.T) {
	mk := func() *world.World {
		return testWorld(t, []world.Status{
			world.StatusAvailable, world.StatusAvailable, world.StatusHold,
			world.StatusAvailable, world.StatusHold, world.StatusAvailable,
		})
	}

	w1, w2 := mk(), mk()
	e1 := NewEngine(99, 12, 0.4, 0.6, nil)
	e2 := NewEngine(99, 12, 0.4, 0.6, nil)

	for i := 0; i < 50; i++ {
		e1.Step(w1)
		e2.Step(w2)
	}
	for i := range w1.Seats {
		if w1.Seats[i].Status != w2.Seats[i].Status {
			t.Fatalf("Seat %d diverged: %s vs %s", i, w1.Seats[i].Status, w2.Seats[i].Status)
		}
	}
}

// The ticker pushes tick events until stopped; Stop is idempotent and
// prevents further events
func TestTickerLifecycle(t *testing.T) {
	q := event.NewQueue()
	e := NewEngine(1, 1, 0.5, 0.5, q)

	e.Start(5 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	e.Stop()
	e.Stop() // idempotent

	// Let any in-flight push land before draining
	time.Sleep(10 * time.Millisecond)

	ticks := 0
	for _, ev := range q.Consume() {
		if ev.Type == event.TypeStatusTick {
			ticks++
		}
	}
	if ticks == 0 {
		t.Fatal("Expected at least one status tick event")
	}

	time.Sleep(20 * time.Millisecond)
	if extra := q.Len(); extra != 0 {
		t.Errorf("Expected no ticks after Stop, got %d", extra)
	}
}
