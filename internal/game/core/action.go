package core

// MoveKind distinguishes Drop-phase placements from Move-phase relocations.
type MoveKind int

const (
	MoveDrop MoveKind = iota
	MoveRelocate
)

func (k MoveKind) String() string {
	if k == MoveRelocate {
		return "relocate"
	}
	return "drop"
}

// Move is a single turn. From is only meaningful for relocations.
type Move struct {
	Kind MoveKind
	From Coordinate
	To   Coordinate
}

// Drop builds a Drop-phase placement on to.
func Drop(to Coordinate) Move {
	return Move{Kind: MoveDrop, To: to}
}

// Relocate builds a Move-phase step from one cell to an adjacent one.
func Relocate(from, to Coordinate) Move {
	return Move{Kind: MoveRelocate, From: from, To: to}
}

// Phase returns the phase in which this kind of move is legal.
func (m Move) Phase() Phase {
	if m.Kind == MoveRelocate {
		return PhaseMove
	}
	return PhaseDrop
}

func (m Move) String() string {
	if m.Kind == MoveRelocate {
		return m.From.String() + "-" + m.To.String()
	}
	return m.To.String()
}

// Validate checks m against board b for player p without applying it.
func (m Move) Validate(b Board, p Player) error {
	_, err := b.Apply(m, p)
	return err
}
