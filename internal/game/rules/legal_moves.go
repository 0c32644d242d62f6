package rules

import "github.com/mitchelldurbincs/teeko/internal/game/core"

// LegalMoves lists every legal move for player on board in a stable order.
//
// Drop phase: one drop per empty cell, row-major. A player who already holds
// all markers gets nothing, which only happens on malformed boards.
// Move phase: for each of the player's markers (row-major), one relocation per
// empty neighbour (row-major around the marker).
func LegalMoves(board core.Board, player core.Player) []core.Move {
	if !player.IsValid() {
		return nil
	}
	if board.Phase() == core.PhaseDrop {
		return dropMoves(board, player)
	}
	return relocateMoves(board, player)
}

func dropMoves(board core.Board, player core.Player) []core.Move {
	if board.Count(player) >= core.MarkersPerPlayer {
		return nil
	}
	moves := make([]core.Move, 0, core.Cells)
	for i, cell := range board {
		if cell == core.Empty {
			moves = append(moves, core.Drop(core.FromIndex(i)))
		}
	}
	return moves
}

func relocateMoves(board core.Board, player core.Player) []core.Move {
	moves := make([]core.Move, 0, core.MarkersPerPlayer*8)
	for _, from := range board.Markers(player) {
		for _, to := range from.Neighbors() {
			if board.IsEmpty(to) {
				moves = append(moves, core.Relocate(from, to))
			}
		}
	}
	return moves
}

// IsLegal reports whether move appears in LegalMoves(board, player).
func IsLegal(board core.Board, player core.Player, move core.Move) bool {
	for _, m := range LegalMoves(board, player) {
		if m == move {
			return true
		}
	}
	return false
}
