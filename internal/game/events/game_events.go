package events

import (
	"time"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted = "game.started"
	TypeMovePlayed  = "move.played"
	TypeGameEnded   = "game.ended"
)

// GameStartedEvent is published when a match begins
type GameStartedEvent struct {
	BaseEvent
	Black string      `json:"black"`
	Red   string      `json:"red"`
	Board core.Board  `json:"-"`
	Turn  core.Player `json:"turn"`
}

// NewGameStartedEvent creates a new GameStartedEvent. black and red are the
// agent names in each seat.
func NewGameStartedEvent(gameID, black, red string, board core.Board, turn core.Player) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Black:     black,
		Red:       red,
		Board:     board,
		Turn:      turn,
	}
}

// MovePlayedEvent is published after a move has been applied
type MovePlayedEvent struct {
	BaseEvent
	Player  core.Player   `json:"player"`
	Move    core.Move     `json:"-"`
	Board   core.Board    `json:"-"`
	Ply     int           `json:"ply"`
	Elapsed time.Duration `json:"elapsed"`
}

// NewMovePlayedEvent creates a new MovePlayedEvent. board is the position
// after the move.
func NewMovePlayedEvent(gameID string, player core.Player, move core.Move, board core.Board, ply int, elapsed time.Duration) *MovePlayedEvent {
	return &MovePlayedEvent{
		BaseEvent: newBase(TypeMovePlayed, gameID),
		Player:    player,
		Move:      move,
		Board:     board,
		Ply:       ply,
		Elapsed:   elapsed,
	}
}

// GameEndedEvent is published when a match ends. Winner is core.Empty when
// the match ended without a winner.
type GameEndedEvent struct {
	BaseEvent
	Winner   core.Player   `json:"winner"`
	Shape    string        `json:"shape"`
	Reason   string        `json:"reason"`
	Plies    int           `json:"plies"`
	Duration time.Duration `json:"duration"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner core.Player, shape, reason string, plies int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Shape:     shape,
		Reason:    reason,
		Plies:     plies,
		Duration:  duration,
	}
}
