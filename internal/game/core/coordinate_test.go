package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 1)
	assert.Equal(t, 3, c.Row)
	assert.Equal(t, 1, c.Col)
}

func TestCoordinate_IndexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		index int
	}{
		{"TopLeft", Coordinate{0, 0}, 0},
		{"TopRight", Coordinate{0, 4}, 4},
		{"SecondRow", Coordinate{1, 0}, 5},
		{"Center", Coordinate{2, 2}, 12},
		{"BottomRight", Coordinate{4, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.index, tt.coord.ToIndex())
			assert.Equal(t, tt.coord, FromIndex(tt.index))
		})
	}
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{0, 0}.IsValid())
	assert.True(t, Coordinate{4, 4}.IsValid())
	assert.False(t, Coordinate{-1, 0}.IsValid())
	assert.False(t, Coordinate{0, 5}.IsValid())
	assert.False(t, Coordinate{5, 2}.IsValid())
}

func TestCoordinate_IsAdjacentTo(t *testing.T) {
	center := Coordinate{2, 2}
	tests := []struct {
		name     string
		other    Coordinate
		expected bool
	}{
		{"north", Coordinate{1, 2}, true},
		{"north-east", Coordinate{1, 3}, true},
		{"east", Coordinate{2, 3}, true},
		{"south-west", Coordinate{3, 1}, true},
		{"self", Coordinate{2, 2}, false},
		{"two away", Coordinate{0, 2}, false},
		{"knight jump", Coordinate{0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, center.IsAdjacentTo(tt.other))
			assert.Equal(t, tt.expected, tt.other.IsAdjacentTo(center))
		})
	}
}

func TestCoordinate_Neighbors(t *testing.T) {
	t.Run("center has all eight in row-major order", func(t *testing.T) {
		got := Coordinate{2, 2}.Neighbors()
		expected := []Coordinate{
			{1, 1}, {1, 2}, {1, 3},
			{2, 1}, {2, 3},
			{3, 1}, {3, 2}, {3, 3},
		}
		assert.Equal(t, expected, got)
	})

	t.Run("corner is clipped to three", func(t *testing.T) {
		got := Coordinate{0, 0}.Neighbors()
		assert.Equal(t, []Coordinate{{0, 1}, {1, 0}, {1, 1}}, got)
	})

	t.Run("edge is clipped to five", func(t *testing.T) {
		got := Coordinate{4, 2}.Neighbors()
		assert.Len(t, got, 5)
		for _, n := range got {
			assert.True(t, n.IsValid())
			assert.True(t, n.IsAdjacentTo(Coordinate{4, 2}))
		}
	})
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "A0", Coordinate{0, 0}.String())
	assert.Equal(t, "B3", Coordinate{3, 1}.String())
	assert.Equal(t, "E4", Coordinate{4, 4}.String())
	assert.Equal(t, "(7,-1)", Coordinate{7, -1}.String())
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Coordinate
		err      error
	}{
		{"upper case", "B3", Coordinate{3, 1}, nil},
		{"lower case", "c4", Coordinate{4, 2}, nil},
		{"surrounding space", "  a0\n", Coordinate{0, 0}, nil},
		{"column past E", "F1", Coordinate{}, ErrOutOfBounds},
		{"row past 4", "A5", Coordinate{}, ErrOutOfBounds},
		{"too long", "A10", Coordinate{}, ErrMalformedCoordinate},
		{"digit first", "3B", Coordinate{}, ErrMalformedCoordinate},
		{"empty", "", Coordinate{}, ErrMalformedCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCoordinate_RoundTrip(t *testing.T) {
	for i := 0; i < Cells; i++ {
		c := FromIndex(i)
		parsed, err := ParseCoordinate(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}
