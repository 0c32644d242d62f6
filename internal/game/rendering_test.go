package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/teeko/internal/testutil"
)

func TestRender(t *testing.T) {
	board := testutil.BoardFromRows(
		"b....",
		".r...",
		".....",
		".....",
		"....b",
	)

	expected := strings.Join([]string{
		"    A   B   C   D   E",
		"  +---+---+---+---+---+",
		"0 | b | . | . | . | . |",
		"  +---+---+---+---+---+",
		"1 | . | r | . | . | . |",
		"  +---+---+---+---+---+",
		"2 | . | . | . | . | . |",
		"  +---+---+---+---+---+",
		"3 | . | . | . | . | . |",
		"  +---+---+---+---+---+",
		"4 | . | . | . | . | b |",
		"  +---+---+---+---+---+",
		"",
	}, "\n")

	assert.Equal(t, expected, Render(board))
}

func TestRenderColored(t *testing.T) {
	board := testutil.BoardFromRows(
		"b....",
		".r...",
		".....",
		".....",
		".....",
	)
	out := RenderColored(board)

	assert.Contains(t, out, ColorBlue+"b"+ColorReset)
	assert.Contains(t, out, ColorRed+"r"+ColorReset)
	assert.Equal(t, strings.Count(Render(board), "\n"), strings.Count(out, "\n"))
}

func TestRulesText(t *testing.T) {
	assert.Contains(t, RulesText, "DROP PHASE")
	assert.Contains(t, RulesText, "MOVE PHASE")
	assert.Contains(t, RulesText, "2x2 square")
}
