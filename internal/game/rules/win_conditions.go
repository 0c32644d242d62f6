package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// WinShape names the marker configurations that end the game.
type WinShape int

const (
	NoShape WinShape = iota
	Row4
	Column4
	Diagonal4
	Square2x2
)

func (s WinShape) String() string {
	switch s {
	case NoShape:
		return "none"
	case Row4:
		return "row"
	case Column4:
		return "column"
	case Diagonal4:
		return "diagonal"
	case Square2x2:
		return "square"
	default:
		return fmt.Sprintf("WinShape(%d)", int(s))
	}
}

// WinningShape reports whether player's markers form a winning shape.
// All markers must lie together: in one row, one column, one diagonal
// (constant row-col or row+col) or on the corners of one 2x2 square.
// Gaps along a line are allowed.
func WinningShape(board core.Board, player core.Player) (WinShape, bool) {
	markers := board.Markers(player)
	if len(markers) != core.MarkersPerPlayer {
		return NoShape, false
	}

	switch {
	case allSame(markers, func(c core.Coordinate) int { return c.Row }):
		return Row4, true
	case allSame(markers, func(c core.Coordinate) int { return c.Col }):
		return Column4, true
	case allSame(markers, func(c core.Coordinate) int { return c.Row - c.Col }),
		allSame(markers, func(c core.Coordinate) int { return c.Row + c.Col }):
		return Diagonal4, true
	case isSquare(markers):
		return Square2x2, true
	}
	return NoShape, false
}

// Winner checks both players. On a malformed board where both qualify,
// Black is reported.
func Winner(board core.Board) (core.Player, bool) {
	for _, p := range core.Players {
		if _, ok := WinningShape(board, p); ok {
			return p, true
		}
	}
	return core.Empty, false
}

func allSame(coords []core.Coordinate, key func(core.Coordinate) int) bool {
	first := key(coords[0])
	for _, c := range coords[1:] {
		if key(c) != first {
			return false
		}
	}
	return true
}

// isSquare relies on markers being row-major: the top-left corner comes first.
func isSquare(markers []core.Coordinate) bool {
	tl := markers[0]
	want := [4]core.Coordinate{
		tl,
		{Row: tl.Row, Col: tl.Col + 1},
		{Row: tl.Row + 1, Col: tl.Col},
		{Row: tl.Row + 1, Col: tl.Col + 1},
	}
	for i, c := range markers {
		if c != want[i] {
			return false
		}
	}
	return true
}
