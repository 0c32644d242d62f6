package search

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/testutil"
)

// randomState plays up to plies random moves from the opening, stopping early
// at a decided position.
func randomState(rng *rand.Rand, plies int) game.GameState {
	s := game.NewGameState()
	for i := 0; i < plies && !s.IsTerminal(); i++ {
		moves := s.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next, err := s.Apply(moves[rng.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		s = next
	}
	return s
}

func TestNewSearcher_Defaults(t *testing.T) {
	s := NewSearcher()
	assert.Equal(t, DefaultDepth, s.Depth())
	assert.True(t, s.Pruning())

	s = NewSearcher(WithDepth(5), WithPruning(false), WithEvaluator(nil))
	assert.Equal(t, 5, s.Depth())
	assert.False(t, s.Pruning())
	assert.NotNil(t, s.evaluate, "nil evaluator keeps the default")
}

func TestSearch_TakesImmediateWin(t *testing.T) {
	board := testutil.BoardFromRows(
		"bbb..",
		".....",
		"..r..",
		".r...",
		"....r",
	)
	state := game.FromBoard(board, core.Black)

	for depth := 1; depth <= 3; depth++ {
		res, err := NewSearcher(WithDepth(depth)).Search(state)
		require.NoError(t, err)

		next, err := state.Apply(res.Move)
		require.NoError(t, err)
		winner, ok := next.Winner()
		assert.True(t, ok, "depth %d should win at once, played %s", depth, res.Move)
		assert.Equal(t, core.Black, winner)
		assert.Equal(t, WinScore+float64(depth-1), res.Score, "quicker wins carry the remaining depth")
	}
}

func TestSearch_BlocksOpponentWin(t *testing.T) {
	board := testutil.BoardFromRows(
		"...b.",
		".....",
		"rrr.b",
		".....",
		"b....",
	)
	state := game.FromBoard(board, core.Black)

	for _, depth := range []int{2, 3} {
		move, err := NewSearcher(WithDepth(depth)).ChooseMove(state)
		require.NoError(t, err)
		assert.Equal(t, core.Drop(core.NewCoordinate(2, 3)), move, "depth %d", depth)
	}
}

func TestSearch_PruningMatchesPlainMinimax(t *testing.T) {
	rng := testutil.NewTestRNG(42)

	checked := 0
	for i := 0; i < 30; i++ {
		state := randomState(rng, rng.Intn(14))
		if state.IsTerminal() || len(state.LegalMoves()) == 0 {
			continue
		}
		for _, depth := range []int{2, 3} {
			pruned, err := NewSearcher(WithDepth(depth), WithPruning(true)).Search(state)
			require.NoError(t, err)
			plain, err := NewSearcher(WithDepth(depth), WithPruning(false)).Search(state)
			require.NoError(t, err)

			assert.Equal(t, plain.Move, pruned.Move, "position %d depth %d", i, depth)
			assert.Equal(t, plain.Score, pruned.Score, "position %d depth %d", i, depth)
			assert.LessOrEqual(t, pruned.Nodes, plain.Nodes)
			assert.Zero(t, plain.Cutoffs)
		}
		checked++
	}
	assert.Greater(t, checked, 20)
}

func TestSearch_NodeCount(t *testing.T) {
	res, err := NewSearcher(WithDepth(1)).Search(game.NewGameState())
	require.NoError(t, err)

	assert.Equal(t, core.Cells+1, res.Nodes, "root plus one leaf per drop")
	assert.Zero(t, res.Cutoffs)
}

func TestSearch_Errors(t *testing.T) {
	won := game.FromBoard(testutil.BoardFromRows(
		"rrrr.",
		"bbb..",
		".....",
		".....",
		".....",
	), core.Black)
	stuck := game.FromBoard(testutil.BoardFromRows(
		"b.b..",
		".r.r.",
		"b...b",
		"..r..",
		".....",
	), core.Black)

	_, err := NewSearcher(WithDepth(0)).Search(game.NewGameState())
	assert.ErrorIs(t, err, ErrInvalidDepth)

	_, err = ChooseMove(game.NewGameState(), -1)
	assert.ErrorIs(t, err, ErrInvalidDepth)

	_, err = ChooseMove(won, 3)
	assert.ErrorIs(t, err, core.ErrGameOver)

	_, err = ChooseMove(stuck, 3)
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestSearch_CustomEvaluator(t *testing.T) {
	calls := 0
	// favour the highest-index drop
	eval := func(s game.GameState, p core.Player) float64 {
		calls++
		for i := core.Cells - 1; i >= 0; i-- {
			if s.Board[i] == p {
				return float64(i) / core.Cells
			}
		}
		return 0
	}

	move, err := NewSearcher(WithDepth(1), WithEvaluator(eval)).ChooseMove(game.NewGameState())
	require.NoError(t, err)

	assert.Equal(t, core.Drop(core.NewCoordinate(4, 4)), move)
	assert.Equal(t, core.Cells, calls)
}

func TestSearch_TiesGoToFirstMove(t *testing.T) {
	flat := func(game.GameState, core.Player) float64 { return 0 }

	move, err := NewSearcher(WithDepth(2), WithEvaluator(flat)).ChooseMove(game.NewGameState())
	require.NoError(t, err)
	assert.Equal(t, core.Drop(core.NewCoordinate(0, 0)), move)
}

func TestSearch_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewSearcher(WithDepth(1), WithLogger(logger)).Search(game.NewGameState())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Search complete")
	assert.Contains(t, out, `"component":"searcher"`)
	assert.Contains(t, out, `"nodes":26`)
}

func TestSearch_DoesNotMutateState(t *testing.T) {
	state := randomState(testutil.NewTestRNG(3), 6)
	before := state

	_, err := ChooseMove(state, 3)
	require.NoError(t, err)
	assert.Equal(t, before, state)
}
