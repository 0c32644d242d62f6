package agent

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/search"
)

// AI plays the minimax move. Its depth may be changed while a match runs;
// the new depth applies from the next move.
type AI struct {
	depth  atomic.Int64
	opts   []search.Option
	last   atomic.Pointer[search.Result]
	logger zerolog.Logger
}

// NewAI builds a minimax agent. opts are passed to every Searcher it creates;
// depth overrides any WithDepth among them.
func NewAI(depth int, logger zerolog.Logger, opts ...search.Option) (*AI, error) {
	a := &AI{
		opts:   append([]search.Option{search.WithLogger(logger)}, opts...),
		logger: logger.With().Str("component", "ai").Logger(),
	}
	if err := a.SetDepth(depth); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AI) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", a.Depth())
}

func (a *AI) Depth() int { return int(a.depth.Load()) }

// SetDepth is safe to call from another goroutine, e.g. a config watcher.
func (a *AI) SetDepth(depth int) error {
	if depth < 1 {
		return fmt.Errorf("depth %d: %w", depth, search.ErrInvalidDepth)
	}
	if old := a.depth.Swap(int64(depth)); old != int64(depth) && old != 0 {
		a.logger.Info().Int("old_depth", int(old)).Int("new_depth", depth).Msg("Search depth changed")
	}
	return nil
}

// LastResult returns the statistics of the most recent search.
func (a *AI) LastResult() (search.Result, bool) {
	r := a.last.Load()
	if r == nil {
		return search.Result{}, false
	}
	return *r, true
}

func (a *AI) ChooseMove(ctx context.Context, state game.GameState) (core.Move, error) {
	if err := ctx.Err(); err != nil {
		return core.Move{}, err
	}
	opts := append(append([]search.Option(nil), a.opts...), search.WithDepth(a.Depth()))
	res, err := search.NewSearcher(opts...).Search(state)
	if err != nil {
		return core.Move{}, err
	}
	a.last.Store(&res)
	return res.Move, nil
}
