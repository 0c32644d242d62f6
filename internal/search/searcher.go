package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// DefaultDepth is the number of plies searched when no depth is given.
const DefaultDepth = 3

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
)

type Option func(s *Searcher)

// WithDepth sets the number of plies to look ahead. Depths below 1 are
// rejected when searching.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

// WithPruning toggles alpha-beta pruning. The chosen move is the same either
// way; pruning only visits fewer nodes.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) {
		s.pruning = enabled
	}
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// Searcher runs depth-limited minimax. It holds no per-search state and is
// safe for concurrent use.
type Searcher struct {
	depth    int
	pruning  bool
	evaluate Evaluator
	logger   zerolog.Logger
}

// Result describes one completed search.
type Result struct {
	Move     core.Move
	Score    float64
	Nodes    int
	Cutoffs  int
	Duration time.Duration
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    DefaultDepth,
		pruning:  true,
		evaluate: Evaluate,
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Str("component", "searcher").Logger()
	return s
}

func (s *Searcher) Depth() int    { return s.depth }
func (s *Searcher) Pruning() bool { return s.pruning }

// ChooseMove searches state to the given depth with pruning and the default
// heuristic, and returns the best move for the seat to move.
func ChooseMove(state game.GameState, depth int) (core.Move, error) {
	return NewSearcher(WithDepth(depth)).ChooseMove(state)
}

func (s *Searcher) ChooseMove(state game.GameState) (core.Move, error) {
	res, err := s.Search(state)
	if err != nil {
		return core.Move{}, err
	}
	return res.Move, nil
}

// Search picks the move that maximises the minimax value for the seat to
// move. Ties go to the earliest move in generation order.
func (s *Searcher) Search(state game.GameState) (Result, error) {
	if s.depth < 1 {
		return Result{}, fmt.Errorf("depth %d: %w", s.depth, ErrInvalidDepth)
	}
	if _, over := state.Winner(); over {
		return Result{}, core.ErrGameOver
	}
	successors := state.Successors()
	if len(successors) == 0 {
		return Result{}, fmt.Errorf("%s to move: %w", state.Turn, ErrNoLegalMoves)
	}

	start := time.Now()
	r := run{searcher: s, root: state.Turn}
	best := Result{Move: successors[0].Move, Score: math.Inf(-1)}
	for _, succ := range successors {
		score := r.value(succ.State, s.depth-1, best.Score, math.Inf(1))
		if score > best.Score {
			best.Move = succ.Move
			best.Score = score
		}
	}
	best.Nodes = r.nodes + 1
	best.Cutoffs = r.cutoffs
	best.Duration = time.Since(start)

	s.logger.Debug().
		Stringer("player", state.Turn).
		Stringer("phase", state.Phase()).
		Int("depth", s.depth).
		Bool("pruning", s.pruning).
		Stringer("move", best.Move).
		Float64("score", best.Score).
		Int("nodes", best.Nodes).
		Int("cutoffs", best.Cutoffs).
		Dur("duration", best.Duration).
		Msg("Search complete")

	return best, nil
}

// run carries the counters of a single search.
type run struct {
	searcher *Searcher
	root     core.Player
	nodes    int
	cutoffs  int
}

// value returns the minimax value of state for the root player. With pruning
// enabled the result is exact inside (alpha, beta) and a bound outside it.
func (r *run) value(state game.GameState, depth int, alpha, beta float64) float64 {
	r.nodes++

	if winner, ok := state.Winner(); ok {
		// depth is what remains, so quicker wins score higher
		if winner == r.root {
			return WinScore + float64(depth)
		}
		return -(WinScore + float64(depth))
	}
	if depth == 0 {
		return r.searcher.evaluate(state, r.root)
	}
	successors := state.Successors()
	if len(successors) == 0 {
		return r.searcher.evaluate(state, r.root)
	}

	maximizing := state.Turn == r.root
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, succ := range successors {
		v := r.value(succ.State, depth-1, alpha, beta)
		if maximizing {
			best = math.Max(best, v)
			if r.searcher.pruning {
				alpha = math.Max(alpha, best)
			}
		} else {
			best = math.Min(best, v)
			if r.searcher.pruning {
				beta = math.Min(beta, best)
			}
		}
		if r.searcher.pruning && alpha >= beta {
			r.cutoffs++
			break
		}
	}
	return best
}
