package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// BoardFromRows builds a board from five five-character rows using
// 'b' for Black, 'r' for Red and '.' for empty. It panics on bad input,
// which is fine for fixtures.
//
//	testutil.BoardFromRows(
//		"bb...",
//		".....",
//		"..r..",
//		".....",
//		".....",
//	)
func BoardFromRows(rows ...string) core.Board {
	if len(rows) != core.Size {
		panic(fmt.Sprintf("need %d rows, got %d", core.Size, len(rows)))
	}
	var b core.Board
	for r, row := range rows {
		if len(row) != core.Size {
			panic(fmt.Sprintf("row %d: need %d cells, got %q", r, core.Size, row))
		}
		for c, ch := range row {
			var p core.Player
			switch ch {
			case 'b':
				p = core.Black
			case 'r':
				p = core.Red
			case '.':
				p = core.Empty
			default:
				panic(fmt.Sprintf("row %d col %d: unknown cell %q", r, c, ch))
			}
			b[core.NewCoordinate(r, c).ToIndex()] = p
		}
	}
	return b
}

// BoardWith places markers at the given coordinates on an empty board.
func BoardWith(black, red []core.Coordinate) core.Board {
	var b core.Board
	for _, c := range black {
		b[c.ToIndex()] = core.Black
	}
	for _, c := range red {
		b[c.ToIndex()] = core.Red
	}
	return b
}

// Coords is shorthand for a list of (row, col) pairs.
func Coords(pairs ...[2]int) []core.Coordinate {
	out := make([]core.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = core.NewCoordinate(p[0], p[1])
	}
	return out
}
