package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/game/events"
	"github.com/mitchelldurbincs/teeko/internal/game/rules"
)

// DefaultMaxTurns caps a match so two shuffling agents cannot loop forever.
const DefaultMaxTurns = 200

var (
	ErrMatchFinished = errors.New("match already finished")
	ErrNilAgent      = errors.New("agent is nil")
)

// Agent decides the move for whichever seat it occupies.
type Agent interface {
	ChooseMove(ctx context.Context, state GameState) (core.Move, error)
	Name() string
}

// EndReason says why a match stopped.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWin
	ReasonStalemate
	ReasonTurnLimit
)

func (r EndReason) String() string {
	switch r {
	case ReasonWin:
		return "win"
	case ReasonStalemate:
		return "stalemate"
	case ReasonTurnLimit:
		return "turn_limit"
	default:
		return "none"
	}
}

// Outcome summarises a finished match. Winner is core.Empty unless Reason is
// ReasonWin.
type Outcome struct {
	Winner core.Player
	Shape  rules.WinShape
	Reason EndReason
	Turns  int
	Final  GameState
}

// IsDraw is true for any ending without a winner.
func (o Outcome) IsDraw() bool { return o.Reason != ReasonWin }

// MatchStatus is the lifecycle of a Match.
type MatchStatus int

const (
	StatusPending MatchStatus = iota
	StatusRunning
	StatusEnded
	StatusAborted
)

func (s MatchStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("MatchStatus(%d)", int(s))
	}
}

// IsTerminal returns true once the match can no longer run.
func (s MatchStatus) IsTerminal() bool {
	return s == StatusEnded || s == StatusAborted
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithMaxTurns caps the number of plies; n <= 0 keeps the default.
func WithMaxTurns(n int) MatchOption {
	return func(m *Match) {
		if n > 0 {
			m.maxTurns = n
		}
	}
}

// WithEventBus publishes match events on bus.
func WithEventBus(bus events.Publisher) MatchOption {
	return func(m *Match) { m.bus = bus }
}

func WithLogger(logger zerolog.Logger) MatchOption {
	return func(m *Match) { m.logger = logger }
}

func WithGameID(id string) MatchOption {
	return func(m *Match) {
		if id != "" {
			m.gameID = id
		}
	}
}

// WithInitialState starts the match from s instead of the empty board.
func WithInitialState(s GameState) MatchOption {
	return func(m *Match) { m.state = s }
}

// Match drives two agents through one game.
type Match struct {
	gameID   string
	agents   map[core.Player]Agent
	state    GameState
	maxTurns int
	status   MatchStatus
	bus      events.Publisher
	logger   zerolog.Logger
}

// NewMatch seats black and red. The game id defaults to a fresh UUID.
func NewMatch(black, red Agent, opts ...MatchOption) (*Match, error) {
	if black == nil || red == nil {
		return nil, ErrNilAgent
	}
	m := &Match{
		gameID:   uuid.NewString(),
		agents:   map[core.Player]Agent{core.Black: black, core.Red: red},
		state:    NewGameState(),
		maxTurns: DefaultMaxTurns,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.state.Validate(); err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	m.logger = m.logger.With().
		Str("component", "match").
		Str("game_id", m.gameID).
		Logger()
	return m, nil
}

func (m *Match) GameID() string      { return m.gameID }
func (m *Match) State() GameState    { return m.state }
func (m *Match) Status() MatchStatus { return m.status }

// Run plays until a win, a stalemate or the turn cap. The context is checked
// before every ply. Agent failures and illegal moves abort the match; the
// partial outcome is returned alongside the error.
func (m *Match) Run(ctx context.Context) (Outcome, error) {
	if m.status != StatusPending {
		return Outcome{}, ErrMatchFinished
	}
	m.status = StatusRunning
	start := time.Now()

	m.publish(events.NewGameStartedEvent(m.gameID,
		m.agents[core.Black].Name(), m.agents[core.Red].Name(), m.state.Board, m.state.Turn))
	m.logger.Info().
		Str("black", m.agents[core.Black].Name()).
		Str("red", m.agents[core.Red].Name()).
		Int("max_turns", m.maxTurns).
		Msg("Match started")

	turns := 0
	for {
		if out, done := m.checkFinished(turns); done {
			m.finish(out, start)
			return out, nil
		}

		if err := ctx.Err(); err != nil {
			return m.abort(turns, err)
		}

		mover := m.state.Turn
		agent := m.agents[mover]
		moveStart := time.Now()
		move, err := agent.ChooseMove(ctx, m.state)
		if err != nil {
			return m.abort(turns, fmt.Errorf("%s (%s) failed to choose a move: %w", agent.Name(), mover, err))
		}
		next, err := m.state.Apply(move)
		if err != nil {
			return m.abort(turns, fmt.Errorf("%s (%s) played an illegal move: %w", agent.Name(), mover, err))
		}
		elapsed := time.Since(moveStart)

		m.state = next
		turns++

		m.logger.Debug().
			Stringer("player", mover).
			Stringer("move", move).
			Int("ply", turns).
			Dur("elapsed", elapsed).
			Msg("Move played")
		m.publish(events.NewMovePlayedEvent(m.gameID, mover, move, next.Board, turns, elapsed))
	}
}

func (m *Match) checkFinished(turns int) (Outcome, bool) {
	out := Outcome{Turns: turns, Final: m.state}
	if winner, ok := m.state.Winner(); ok {
		out.Winner = winner
		out.Shape = m.state.WinningShape()
		out.Reason = ReasonWin
		return out, true
	}
	if len(m.state.LegalMoves()) == 0 {
		out.Reason = ReasonStalemate
		return out, true
	}
	if turns >= m.maxTurns {
		out.Reason = ReasonTurnLimit
		return out, true
	}
	return out, false
}

func (m *Match) finish(out Outcome, start time.Time) {
	m.status = StatusEnded
	duration := time.Since(start)
	m.publish(events.NewGameEndedEvent(m.gameID, out.Winner, out.Shape.String(), out.Reason.String(), out.Turns, duration))
	m.logger.Info().
		Stringer("winner", out.Winner).
		Stringer("shape", out.Shape).
		Stringer("reason", out.Reason).
		Int("turns", out.Turns).
		Dur("duration", duration).
		Msg("Match ended")
}

func (m *Match) abort(turns int, err error) (Outcome, error) {
	m.status = StatusAborted
	err = core.WrapStateError(turns, m.state.Phase(), err)
	m.logger.Error().Err(err).Int("turns", turns).Msg("Match aborted")
	return Outcome{Turns: turns, Final: m.state}, err
}

func (m *Match) publish(e events.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
