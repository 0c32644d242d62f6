package agent

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/search"
)

// Random picks uniformly among the legal moves.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ChooseMove(ctx context.Context, state game.GameState) (core.Move, error) {
	if err := ctx.Err(); err != nil {
		return core.Move{}, err
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return core.Move{}, search.ErrNoLegalMoves
	}
	r.mu.Lock()
	i := r.rng.Intn(len(moves))
	r.mu.Unlock()
	return moves[i], nil
}

// Opening lets Random place the first Plies drops of the game, then hands
// over to Next. Used to vary self-play games that would otherwise repeat.
type Opening struct {
	Random *Random
	Plies  int
	Next   game.Agent
}

func (o *Opening) Name() string {
	return fmt.Sprintf("%s+opening(%d)", o.Next.Name(), o.Plies)
}

func (o *Opening) ChooseMove(ctx context.Context, state game.GameState) (core.Move, error) {
	// in the drop phase the number of markers is the number of plies played
	played := state.Board.Count(core.Black) + state.Board.Count(core.Red)
	if state.Phase() == core.PhaseDrop && played < o.Plies {
		return o.Random.ChooseMove(ctx, state)
	}
	return o.Next.ChooseMove(ctx, state)
}
