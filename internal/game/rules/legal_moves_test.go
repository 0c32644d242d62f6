package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/testutil"
)

func TestLegalMoves_DropPhase(t *testing.T) {
	t.Run("empty board offers every cell in row-major order", func(t *testing.T) {
		moves := LegalMoves(core.Board{}, core.Black)
		require.Len(t, moves, core.Cells)
		for i, m := range moves {
			assert.Equal(t, core.Drop(core.FromIndex(i)), m)
		}
	})

	t.Run("occupied cells are skipped", func(t *testing.T) {
		board := testutil.BoardFromRows(
			"b....",
			".r...",
			".....",
			".....",
			"....b",
		)
		moves := LegalMoves(board, core.Red)
		assert.Len(t, moves, core.Cells-3)
		for _, m := range moves {
			assert.Equal(t, core.MoveDrop, m.Kind)
			assert.True(t, board.IsEmpty(m.To))
		}
	})

	t.Run("player with all markers placed gets nothing", func(t *testing.T) {
		board := testutil.BoardFromRows(
			"bb...",
			"bb...",
			".....",
			"..r..",
			".....",
		)
		assert.Empty(t, LegalMoves(board, core.Black))
		assert.NotEmpty(t, LegalMoves(board, core.Red))
	})
}

func TestLegalMoves_MovePhase(t *testing.T) {
	board := testutil.BoardFromRows(
		"b.r.b",
		".....",
		"r.b.r",
		".....",
		"b.r..",
	)
	require.Equal(t, core.PhaseMove, board.Phase())

	moves := LegalMoves(board, core.Black)

	// A0: 3 neighbours, E0: 3, C2: 8, A4: 3 -> all empty
	assert.Len(t, moves, 3+3+8+3)
	assert.Equal(t, core.Relocate(core.NewCoordinate(0, 0), core.NewCoordinate(0, 1)), moves[0])
	assert.Equal(t, core.Relocate(core.NewCoordinate(4, 0), core.NewCoordinate(4, 1)), moves[len(moves)-1])

	seen := make(map[core.Move]bool)
	for _, m := range moves {
		assert.Equal(t, core.MoveRelocate, m.Kind)
		assert.Equal(t, core.Black, board.At(m.From))
		assert.True(t, board.IsEmpty(m.To))
		assert.True(t, m.From.IsAdjacentTo(m.To))
		assert.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
	}
}

func TestLegalMoves_BlockedMarkers(t *testing.T) {
	board := testutil.BoardFromRows(
		"brb..",
		"rrr..",
		"....b",
		".....",
		"....b",
	)
	require.Equal(t, core.PhaseMove, board.Phase())

	moves := LegalMoves(board, core.Black)
	for _, m := range moves {
		assert.NotEqual(t, core.NewCoordinate(0, 0), m.From, "A0 is boxed in")
	}
	// C0 can still reach D0 and D1.
	assert.Contains(t, moves, core.Relocate(core.NewCoordinate(0, 2), core.NewCoordinate(0, 3)))
	assert.Contains(t, moves, core.Relocate(core.NewCoordinate(0, 2), core.NewCoordinate(1, 3)))
}

func TestLegalMoves_InvalidPlayer(t *testing.T) {
	assert.Nil(t, LegalMoves(core.Board{}, core.Empty))
}

func TestLegalMoves_Deterministic(t *testing.T) {
	board := testutil.BoardFromRows(
		"b.r..",
		".b.r.",
		"..b..",
		"r....",
		"....b",
	)
	assert.Equal(t, LegalMoves(board, core.Red), LegalMoves(board, core.Red))
}

func TestIsLegal(t *testing.T) {
	board := testutil.BoardFromRows(
		"b....",
		".....",
		".....",
		".....",
		".....",
	)
	assert.True(t, IsLegal(board, core.Red, core.Drop(core.NewCoordinate(2, 2))))
	assert.False(t, IsLegal(board, core.Red, core.Drop(core.NewCoordinate(0, 0))))
	assert.False(t, IsLegal(board, core.Black, core.Relocate(core.NewCoordinate(0, 0), core.NewCoordinate(0, 1))))
}
