// Package selection holds the set of user-selected seat ids with the
// invariant that sold seats are never members: a toggle on a sold seat
// is rejected, and seats that become sold while selected are evicted on
// the next status tick.
package selection

import "seatmap/world"

// Store is the selection set. Mutated only from loop handlers, so no
// locking under the single-threaded model
type Store struct {
	ids map[string]struct{}
}

// NewStore returns an empty selection set
func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Toggle flips membership of seatID given the seat's current status
// Returns (selected, rejected): rejected is true and membership is
// untouched when the seat is sold. Two consecutive toggles on a
// non-sold seat restore original membership
func (s *Store) Toggle(seatID string, status world.Status) (selected, rejected bool) {
	if status == world.StatusSold {
		return false, true
	}
	if _, ok := s.ids[seatID]; ok {
		delete(s.ids, seatID)
		return false, false
	}
	s.ids[seatID] = struct{}{}
	return true, false
}

// Has reports membership
func (s *Store) Has(seatID string) bool {
	_, ok := s.ids[seatID]
	return ok
}

// Size returns the member count
func (s *Store) Size() int {
	return len(s.ids)
}

// IDs returns the members in arbitrary order
func (s *Store) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// EvictSold removes members whose seat has transitioned to SOLD since
// selection, restoring the invariant after each status tick
// Returns the evicted ids. Unknown ids are evicted as stale
func (s *Store) EvictSold(w *world.World) []string {
	var evicted []string
	for id := range s.ids {
		seat := w.SeatByID(id)
		if seat == nil || seat.Status == world.StatusSold {
			delete(s.ids, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}
