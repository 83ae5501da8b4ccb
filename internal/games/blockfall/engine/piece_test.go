package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceAdvanceFrameWraps(t *testing.T) {
	shape, err := ClassicCatalog().Shape(2) // T, four frames
	require.NoError(t, err)

	p := newPiece(shape, Position{Row: 5, Col: 3})
	seen := []int{p.FrameIndex()}
	for range 4 {
		next := p.AdvanceFrame()
		assert.Equal(t, seen[len(seen)-1], p.FrameIndex(), "AdvanceFrame must not mutate")
		p.commit(p.Position(), next)
		seen = append(seen, p.FrameIndex())
	}

	assert.Equal(t, []int{0, 1, 2, 3, 0}, seen)
}

func TestPieceSingleFrameAdvanceStaysAtZero(t *testing.T) {
	shape, err := ClassicCatalog().Shape(1) // O
	require.NoError(t, err)

	p := newPiece(shape, Position{})
	assert.Equal(t, 0, p.AdvanceFrame())
}

func TestPieceTranslatedByIsPure(t *testing.T) {
	shape, err := ClassicCatalog().Shape(0)
	require.NoError(t, err)

	p := newPiece(shape, Position{Row: 2, Col: 4})
	assert.Equal(t, Position{Row: 3, Col: 4}, p.TranslatedBy(1, 0))
	assert.Equal(t, Position{Row: 2, Col: 3}, p.TranslatedBy(0, -1))
	assert.Equal(t, Position{Row: 2, Col: 4}, p.Position())
	assert.Equal(t, shape.Color(), p.Color())
	assert.Equal(t, shape.frames[0], p.CurrentFrame())
}
