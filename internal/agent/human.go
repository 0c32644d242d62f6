package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrQuit        = errors.New("player quit")
)

// errRetry marks input that was rejected and should be asked for again.
var errRetry = errors.New("retry")

// Human reads moves typed on a console. Bad input is reported and asked for
// again; typing "help" prints the rules and "quit" resigns the match.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{name: name, in: bufio.NewScanner(in), out: out}
}

func (h *Human) Name() string { return h.name }

func (h *Human) ChooseMove(ctx context.Context, state game.GameState) (core.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return core.Move{}, err
		}
		move, err := h.readMove(state)
		if errors.Is(err, errRetry) {
			continue
		}
		if err != nil {
			return core.Move{}, err
		}
		if _, err := state.Apply(move); err != nil {
			fmt.Fprintf(h.out, "Error: %v. Please try again.\n", err)
			continue
		}
		return move, nil
	}
}

func (h *Human) readMove(state game.GameState) (core.Move, error) {
	if state.Phase() == core.PhaseDrop {
		to, err := h.readCoordinate("Enter your move (e.g., B3): ")
		if err != nil {
			return core.Move{}, err
		}
		return core.Drop(to), nil
	}

	from, err := h.readCoordinate("Move marker from (e.g., B3): ")
	if err != nil {
		return core.Move{}, err
	}
	to, err := h.readCoordinate("Move marker to (e.g., C4): ")
	if err != nil {
		return core.Move{}, err
	}
	return core.Relocate(from, to), nil
}

func (h *Human) readCoordinate(prompt string) (core.Coordinate, error) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return core.Coordinate{}, fmt.Errorf("reading move: %w", err)
		}
		return core.Coordinate{}, ErrInputClosed
	}

	line := strings.TrimSpace(h.in.Text())
	switch strings.ToLower(line) {
	case "help", "?":
		fmt.Fprint(h.out, game.RulesText)
		return core.Coordinate{}, errRetry
	case "quit", "exit":
		return core.Coordinate{}, ErrQuit
	}

	c, err := core.ParseCoordinate(line)
	if err != nil {
		fmt.Fprintf(h.out, "Invalid input: %v. Use column-row format (e.g. 'B3').\n", err)
		return core.Coordinate{}, errRetry
	}
	return c, nil
}
