package core

import "fmt"

// MarkersPerPlayer is how many markers each seat drops before the Move phase.
const MarkersPerPlayer = 4

// Phase is derived from the markers on the board, never stored.
type Phase int

const (
	PhaseDrop Phase = iota
	PhaseMove
)

func (p Phase) String() string {
	switch p {
	case PhaseDrop:
		return "drop"
	case PhaseMove:
		return "move"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Board is a 5x5 grid stored row-major. It is a value type: assigning or
// passing a Board copies every cell.
type Board [Cells]Player

// At returns the occupant of c. Off-board coordinates read as Empty.
func (b Board) At(c Coordinate) Player {
	if !c.IsValid() {
		return Empty
	}
	return b[c.ToIndex()]
}

// IsEmpty reports whether c is on the board and unoccupied.
func (b Board) IsEmpty(c Coordinate) bool {
	return c.IsValid() && b[c.ToIndex()] == Empty
}

// Count returns the number of markers p has on the board.
func (b Board) Count(p Player) int {
	n := 0
	for _, cell := range b {
		if cell == p {
			n++
		}
	}
	return n
}

// Markers returns the coordinates of p's markers in row-major order.
func (b Board) Markers(p Player) []Coordinate {
	out := make([]Coordinate, 0, MarkersPerPlayer)
	for i, cell := range b {
		if cell == p {
			out = append(out, FromIndex(i))
		}
	}
	return out
}

// Phase is Drop while either seat still has markers to place.
func (b Board) Phase() Phase {
	if min(b.Count(Black), b.Count(Red)) < MarkersPerPlayer {
		return PhaseDrop
	}
	return PhaseMove
}

// Validate checks the marker-count invariant and that every cell holds a
// known value.
func (b Board) Validate() error {
	for i, cell := range b {
		if cell != Empty && !cell.IsValid() {
			return fmt.Errorf("cell %s: %w", FromIndex(i), ErrInvalidPlayer)
		}
	}
	for _, p := range Players {
		if n := b.Count(p); n > MarkersPerPlayer {
			return fmt.Errorf("%s has %d markers: %w", p, n, ErrInvalidPhaseAction)
		}
	}
	return nil
}
