package core

// Place drops a marker for p on c and returns the resulting board. The
// receiver is a copy, so a failed placement leaves the caller's board as is.
func (b Board) Place(c Coordinate, p Player) (Board, error) {
	if !p.IsValid() {
		return b, ErrInvalidPlayer
	}
	if !c.IsValid() {
		return b, ErrOutOfBounds
	}
	if b[c.ToIndex()] != Empty {
		return b, ErrOccupiedCell
	}
	if b.Count(p) >= MarkersPerPlayer {
		return b, ErrInvalidPhaseAction
	}
	b[c.ToIndex()] = p
	return b, nil
}

// Move steps p's marker from src to the adjacent empty cell dst.
func (b Board) Move(src, dst Coordinate, p Player) (Board, error) {
	if !p.IsValid() {
		return b, ErrInvalidPlayer
	}
	if !src.IsValid() || !dst.IsValid() {
		return b, ErrOutOfBounds
	}
	if b[src.ToIndex()] != p {
		return b, ErrNotOwned
	}
	if b[dst.ToIndex()] != Empty {
		return b, ErrOccupiedCell
	}
	if !src.IsAdjacentTo(dst) {
		return b, ErrNotAdjacent
	}
	b[src.ToIndex()] = Empty
	b[dst.ToIndex()] = p
	return b, nil
}

// Apply dispatches m to Place or Move. It does not check whose turn it is or
// which phase the board is in; GameState does that.
func (b Board) Apply(m Move, p Player) (Board, error) {
	switch m.Kind {
	case MoveDrop:
		return b.Place(m.To, p)
	case MoveRelocate:
		return b.Move(m.From, m.To, p)
	default:
		return b, ErrInvalidPhaseAction
	}
}
