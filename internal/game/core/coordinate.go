package core

import (
	"fmt"
	"strings"
)

const (
	// Size is the number of rows and columns on a Teeko board.
	Size = 5
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

// Coordinate represents a cell on the board.
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a coordinate from a row and a column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a row-major board index
func FromIndex(idx int) Coordinate {
	return Coordinate{Row: idx / Size, Col: idx % Size}
}

// IsValid checks if the coordinate lies on the board
func (c Coordinate) IsValid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// ToIndex converts the coordinate to a row-major board index
func (c Coordinate) ToIndex() int {
	return c.Row*Size + c.Col
}

// IsAdjacentTo reports whether other is one of the 8 king-move neighbours.
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	return max(dr, dc) == 1
}

// offsets in row-major order so generated moves come out row-major too
var neighborOffsets = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the on-board king-move neighbours in row-major order.
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := c.Add(off)
		if n.IsValid() {
			out = append(out, n)
		}
	}
	return out
}

// Add returns the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// String renders the coordinate in column-letter, row-digit notation (e.g. B3).
// Off-board coordinates fall back to (row,col).
func (c Coordinate) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row)
}

// ParseCoordinate reads column-letter, row-digit notation. It is case-insensitive
// and ignores surrounding whitespace.
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%q: %w", s, ErrMalformedCoordinate)
	}
	letter, digit := s[0], s[1]
	if letter < 'A' || letter > 'Z' || digit < '0' || digit > '9' {
		return Coordinate{}, fmt.Errorf("%q: %w", s, ErrMalformedCoordinate)
	}
	c := Coordinate{Row: int(digit - '0'), Col: int(letter - 'A')}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("%q: %w", s, ErrOutOfBounds)
	}
	return c, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
