package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds         = errors.New("coordinate outside the board")
	ErrOccupiedCell        = errors.New("cell is occupied")
	ErrNotOwned            = errors.New("marker not owned by player")
	ErrNotAdjacent         = errors.New("cells are not adjacent")
	ErrInvalidPhaseAction  = errors.New("action not allowed in this phase")
	ErrInvalidPlayer       = errors.New("invalid player")
	ErrGameOver            = errors.New("game is over")
	ErrMalformedCoordinate = errors.New("malformed coordinate")
)

// WrapMoveError adds player and move context to an error while preserving
// the sentinel for errors.Is.
func WrapMoveError(player Player, move Move, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %s %s: %w", player, move.Kind, move, err)
}

// WrapStateError adds turn and phase context to an error.
func WrapStateError(turn int, phase Phase, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("turn %d [%s]: %w", turn, phase, err)
}
