package world

import "fmt"

// Zone is a venue area holding rows of seats
// Immutable after construction
type Zone struct {
	ID        string
	Polygon   []Point // ordered, assumed convex
	Bounds    BBox
	Color     string // hex display color, parsed by the render layer
	PriceTier string
}

// Row is a horizontal run of seats inside a zone
// Immutable after construction
type Row struct {
	ID     string // unique within the owning zone
	ZoneID string
	Y      float64
	XStart float64
	XEnd   float64
}

// Seat is a leaf entity: fixed identity and position, mutable status
type Seat struct {
	ID        string
	ZoneID    string
	RowID     string
	X, Y      float64
	Radius    float64
	PriceTier string
	Status    Status
}

// World is the session dataset: static shapes, live seat statuses
// Handlers receive it by pointer and never capture private copies of
// the seat list, so a status tick is visible to the next render pass
type World struct {
	Zones []*Zone
	Rows  []*Row
	Seats []*Seat

	Bounds BBox

	zones map[string]*Zone
	rows  map[string]*Row // key: zoneID + "/" + rowID
	seats map[string]*Seat
}

// New assembles a world and verifies the dataset invariants
func New(zones []*Zone, rows []*Row, seats []*Seat) (*World, error) {
	w := &World{
		Zones: zones,
		Rows:  rows,
		Seats: seats,
		zones: make(map[string]*Zone, len(zones)),
		rows:  make(map[string]*Row, len(rows)),
		seats: make(map[string]*Seat, len(seats)),
	}

	for _, z := range zones {
		if _, dup := w.zones[z.ID]; dup {
			return nil, fmt.Errorf("duplicate zone id %q", z.ID)
		}
		w.zones[z.ID] = z
	}
	for _, r := range rows {
		key := r.ZoneID + "/" + r.ID
		if _, dup := w.rows[key]; dup {
			return nil, fmt.Errorf("duplicate row id %q in zone %q", r.ID, r.ZoneID)
		}
		w.rows[key] = r
	}
	for _, s := range seats {
		if _, dup := w.seats[s.ID]; dup {
			return nil, fmt.Errorf("duplicate seat id %q", s.ID)
		}
		w.seats[s.ID] = s
	}

	if err := w.validate(); err != nil {
		return nil, err
	}

	for i, z := range zones {
		if i == 0 {
			w.Bounds = z.Bounds
		} else {
			w.Bounds = w.Bounds.Union(z.Bounds)
		}
	}
	return w, nil
}

// validate enforces the referential and geometric invariants:
// rows reference existing zones, seats reference existing zone/row pairs,
// seat positions lie within their row span and zone bounds
func (w *World) validate() error {
	for _, z := range w.Zones {
		if len(z.Polygon) < 3 {
			return fmt.Errorf("zone %q: polygon needs at least 3 points, got %d", z.ID, len(z.Polygon))
		}
	}
	for _, r := range w.Rows {
		if _, ok := w.zones[r.ZoneID]; !ok {
			return fmt.Errorf("row %q references unknown zone %q", r.ID, r.ZoneID)
		}
		if r.XEnd < r.XStart {
			return fmt.Errorf("row %q in zone %q: XEnd %.2f < XStart %.2f", r.ID, r.ZoneID, r.XEnd, r.XStart)
		}
	}
	for _, s := range w.Seats {
		z, ok := w.zones[s.ZoneID]
		if !ok {
			return fmt.Errorf("seat %q references unknown zone %q", s.ID, s.ZoneID)
		}
		r, ok := w.rows[s.ZoneID+"/"+s.RowID]
		if !ok {
			return fmt.Errorf("seat %q references unknown row %q in zone %q", s.ID, s.RowID, s.ZoneID)
		}
		if s.X < r.XStart || s.X > r.XEnd {
			return fmt.Errorf("seat %q at x=%.2f outside row span [%.2f, %.2f]", s.ID, s.X, r.XStart, r.XEnd)
		}
		if !z.Bounds.Contains(s.X, s.Y) {
			return fmt.Errorf("seat %q at (%.2f, %.2f) outside zone %q bounds", s.ID, s.X, s.Y, z.ID)
		}
		if !s.Status.Valid() {
			return fmt.Errorf("seat %q has invalid status %d", s.ID, s.Status)
		}
	}
	return nil
}

// SeatByID returns the seat for id, or nil if unknown
// A stale id from an old render set is expected and benign
func (w *World) SeatByID(id string) *Seat {
	return w.seats[id]
}

// ZoneByID returns the zone for id, or nil if unknown
func (w *World) ZoneByID(id string) *Zone {
	return w.zones[id]
}

// RowsOfZone returns all rows owned by zoneID, in dataset order
func (w *World) RowsOfZone(zoneID string) []*Row {
	out := make([]*Row, 0, 16)
	for _, r := range w.Rows {
		if r.ZoneID == zoneID {
			out = append(out, r)
		}
	}
	return out
}

// MarkSold transitions a seat to SOLD regardless of its current state,
// modeling the external booking action the status simulator never takes.
// Returns false for unknown ids
func (w *World) MarkSold(id string) bool {
	s := w.seats[id]
	if s == nil {
		return false
	}
	s.Status = StatusSold
	return true
}

// CountByStatus returns seat counts keyed by status
func (w *World) CountByStatus() map[Status]int {
	out := make(map[Status]int, 3)
	for _, s := range w.Seats {
		out[s.Status]++
	}
	return out
}
