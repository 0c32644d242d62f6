package game

import (
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/game/rules"
)

// GameState is an immutable snapshot: a board and the seat to move. Every
// transition returns a new value, so search branches never share state.
type GameState struct {
	Board core.Board
	Turn  core.Player
}

// Successor pairs a legal move with the state it produces.
type Successor struct {
	Move  core.Move
	State GameState
}

// NewGameState returns the opening position: empty board, Black to move.
func NewGameState() GameState {
	return GameState{Turn: core.Black}
}

// FromBoard builds a state from an arbitrary board, e.g. a test fixture.
func FromBoard(board core.Board, turn core.Player) GameState {
	return GameState{Board: board, Turn: turn}
}

// Phase is derived from the board.
func (s GameState) Phase() core.Phase { return s.Board.Phase() }

// LegalMoves lists the moves available to the seat to move. A finished game
// has none.
func (s GameState) LegalMoves() []core.Move {
	if _, over := s.Winner(); over {
		return nil
	}
	return rules.LegalMoves(s.Board, s.Turn)
}

// Successors applies every legal move. The order matches LegalMoves.
func (s GameState) Successors() []Successor {
	moves := s.LegalMoves()
	out := make([]Successor, 0, len(moves))
	for _, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			// generated moves are legal by construction
			panic(core.WrapMoveError(s.Turn, m, err))
		}
		out = append(out, Successor{Move: m, State: next})
	}
	return out
}

// Apply plays move for the seat to move. On failure the receiver is
// returned unchanged along with the error.
func (s GameState) Apply(move core.Move) (GameState, error) {
	if !s.Turn.IsValid() {
		return s, core.ErrInvalidPlayer
	}
	if _, over := s.Winner(); over {
		return s, core.ErrGameOver
	}
	if move.Phase() != s.Phase() {
		return s, core.WrapMoveError(s.Turn, move, core.ErrInvalidPhaseAction)
	}
	board, err := s.Board.Apply(move, s.Turn)
	if err != nil {
		return s, core.WrapMoveError(s.Turn, move, err)
	}
	return GameState{Board: board, Turn: s.Turn.Opponent()}, nil
}

// Winner returns the seat whose markers form a winning shape, if any.
func (s GameState) Winner() (core.Player, bool) {
	return rules.Winner(s.Board)
}

// WinningShape returns the shape formed by the winner, or NoShape.
func (s GameState) WinningShape() rules.WinShape {
	winner, ok := s.Winner()
	if !ok {
		return rules.NoShape
	}
	shape, _ := rules.WinningShape(s.Board, winner)
	return shape
}

// IsTerminal is true when someone has won.
func (s GameState) IsTerminal() bool {
	_, over := s.Winner()
	return over
}

// Validate checks the board invariants and the seat to move.
func (s GameState) Validate() error {
	if !s.Turn.IsValid() {
		return core.ErrInvalidPlayer
	}
	return s.Board.Validate()
}
