package world

// Status is the live availability state of a seat
// It is the only mutable seat field; all mutation happens inside loop
// handlers (single-writer rule, see app package)
type Status uint8

const (
	StatusAvailable Status = iota
	StatusHold
	StatusSold
)

// String returns human-readable status name
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusHold:
		return "HOLD"
	case StatusSold:
		return "SOLD"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the three known states
func (s Status) Valid() bool {
	return s <= StatusSold
}
