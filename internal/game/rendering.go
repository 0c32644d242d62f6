package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// ANSI color codes used by RenderColored
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorGray  = "\033[90m"
)

const (
	columnHeader = "    A   B   C   D   E\n"
	rowSeparator = "  +---+---+---+---+---+\n"
)

// Render draws the board as an ASCII grid with column letters across the top
// and row numbers down the side, e.g.
//
//	    A   B   C   D   E
//	  +---+---+---+---+---+
//	0 | b | . | . | . | . |
func Render(board core.Board) string {
	return render(board, func(p core.Player) string { return p.Symbol() })
}

// RenderColored is Render with ANSI colors for terminals.
func RenderColored(board core.Board) string {
	return render(board, func(p core.Player) string {
		switch p {
		case core.Black:
			return ColorBlue + p.Symbol() + ColorReset
		case core.Red:
			return ColorRed + p.Symbol() + ColorReset
		default:
			return ColorGray + p.Symbol() + ColorReset
		}
	})
}

func render(board core.Board, cell func(core.Player) string) string {
	var sb strings.Builder
	sb.Grow((core.Size + 2) * 64)

	sb.WriteString(columnHeader)
	sb.WriteString(rowSeparator)

	for row := 0; row < core.Size; row++ {
		sb.WriteString(strconv.Itoa(row))
		sb.WriteString(" |")
		for col := 0; col < core.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(cell(board.At(core.NewCoordinate(row, col))))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
		sb.WriteString(rowSeparator)
	}
	return sb.String()
}

// RulesText is the help shown to console players.
const RulesText = `Welcome to Teeko!

RULES:
1. The game is played on a 5x5 board.
2. Each player has four markers ('b' for black, 'r' for red). Black moves first.
3. The game has two phases: Drop Phase and Move Phase.

DROP PHASE:
- Players take turns placing one of their markers on any empty square.
- This continues until all 8 markers are on the board.

MOVE PHASE:
- Players take turns moving one of their markers to an adjacent empty
  square (horizontally, vertically, or diagonally).

HOW TO WIN:
- Get all four of your markers in the same row, column or diagonal.
- Or get all four of your markers into a 2x2 square.

HOW TO ENTER MOVES:
- Use column-row format (e.g. 'A0', 'C4'). Input is not case-sensitive.
- During the Move Phase you are prompted for a 'from' and a 'to' square.
`
