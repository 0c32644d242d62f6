package core

import "fmt"

// Player identifies the occupant of a cell. Empty doubles as "no player".
type Player uint8

const (
	Empty Player = iota
	Black
	Red
)

// Players lists the two seats in turn order.
var Players = [2]Player{Black, Red}

// IsValid reports whether p is one of the two seats.
func (p Player) IsValid() bool { return p == Black || p == Red }

// Opponent returns the other seat. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

// Symbol is the single-character board marker.
func (p Player) Symbol() string {
	switch p {
	case Black:
		return "b"
	case Red:
		return "r"
	default:
		return "."
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case Red:
		return "red"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// ParsePlayer converts a seat name or symbol into a Player.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "black", "b", "B":
		return Black, nil
	case "red", "r", "R":
		return Red, nil
	default:
		return Empty, fmt.Errorf("%q: %w", s, ErrInvalidPlayer)
	}
}
