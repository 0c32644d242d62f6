package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_String(t *testing.T) {
	assert.Equal(t, "B3", Drop(Coordinate{3, 1}).String())
	assert.Equal(t, "B3-C4", Relocate(Coordinate{3, 1}, Coordinate{4, 2}).String())
	assert.Equal(t, "drop", MoveDrop.String())
	assert.Equal(t, "relocate", MoveRelocate.String())
}

func TestMove_Phase(t *testing.T) {
	assert.Equal(t, PhaseDrop, Drop(Coordinate{}).Phase())
	assert.Equal(t, PhaseMove, Relocate(Coordinate{}, Coordinate{0, 1}).Phase())
}

func TestMove_Validate(t *testing.T) {
	b := place(Board{}, Black, Coordinate{0, 0})

	require.NoError(t, Drop(Coordinate{4, 4}).Validate(b, Red))
	require.ErrorIs(t, Drop(Coordinate{0, 0}).Validate(b, Red), ErrOccupiedCell)
	require.ErrorIs(t, Relocate(Coordinate{0, 0}, Coordinate{2, 2}).Validate(b, Black), ErrNotAdjacent)
	assert.Equal(t, Black, b.At(Coordinate{0, 0}), "validation never applies the move")
}
