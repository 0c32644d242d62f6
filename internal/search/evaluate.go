package search

import (
	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// WinScore is the magnitude given to decided positions. It dominates any
// heuristic value, which stays inside [-1, 1].
const WinScore = 1e6

// Evaluator scores a position from perspective's point of view. Higher is
// better for perspective.
type Evaluator func(state game.GameState, perspective core.Player) float64

// windows lists every group of cells that can hold a winning shape: each row,
// each column, the six diagonals of length four or more and the sixteen 2x2
// squares.
var windows = buildWindows()

func buildWindows() [][]int {
	var ws [][]int
	cells := func(keep func(r, c int) bool) []int {
		var w []int
		for i := 0; i < core.Cells; i++ {
			c := core.FromIndex(i)
			if keep(c.Row, c.Col) {
				w = append(w, i)
			}
		}
		return w
	}

	for n := 0; n < core.Size; n++ {
		ws = append(ws, cells(func(r, _ int) bool { return r == n }))
		ws = append(ws, cells(func(_, c int) bool { return c == n }))
	}
	for d := -1; d <= 1; d++ {
		ws = append(ws, cells(func(r, c int) bool { return r-c == d }))
	}
	for s := core.Size - 2; s <= core.Size; s++ {
		ws = append(ws, cells(func(r, c int) bool { return r+c == s }))
	}
	for r := 0; r < core.Size-1; r++ {
		for c := 0; c < core.Size-1; c++ {
			top := core.NewCoordinate(r, c).ToIndex()
			ws = append(ws, []int{top, top + 1, top + core.Size, top + core.Size + 1})
		}
	}
	return ws
}

// liveCount returns how many of p's markers sit in w, and whether the
// opponent still leaves room for all four of p's markers there.
func liveCount(board core.Board, w []int, p core.Player) (int, bool) {
	mine, blocked := 0, 0
	for _, i := range w {
		switch board[i] {
		case p:
			mine++
		case core.Empty:
		default:
			blocked++
		}
	}
	return mine, len(w)-blocked >= core.MarkersPerPlayer
}

// Evaluate is the default heuristic. A decided position scores 1 or -1.
// Otherwise the score is the gap between each side's fullest live window,
// divided by four, plus a small term for the total over all live windows so
// that positions with the same best window can still be told apart.
func Evaluate(state game.GameState, perspective core.Player) float64 {
	if !perspective.IsValid() {
		return 0
	}
	if winner, ok := state.Winner(); ok {
		if winner == perspective {
			return 1
		}
		return -1
	}

	opp := perspective.Opponent()
	bestMine, bestOpp, spread := 0, 0, 0
	for _, w := range windows {
		if n, live := liveCount(state.Board, w, perspective); live {
			bestMine = max(bestMine, n)
			spread += n
		}
		if n, live := liveCount(state.Board, w, opp); live {
			bestOpp = max(bestOpp, n)
			spread -= n
		}
	}

	score := float64(bestMine-bestOpp)/float64(core.MarkersPerPlayer) + float64(spread)/1000
	return min(1, max(-1, score))
}
