package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRemainder_BottomStripKeepsFullWidth(t *testing.T) {
	strips := splitRemainder(freeRegion{0, 0, 100, 100}, 60, 60)
	require.Len(t, strips, 2)
	assert.Equal(t, freeRegion{60, 0, 40, 60}, strips[0])
	assert.Equal(t, freeRegion{0, 60, 100, 40}, strips[1])
}

func TestSplitRemainder_RightStripKeepsFullHeight(t *testing.T) {
	// A tall narrow piece leaves a dominant right strip; it is extended to
	// the full region height and the bottom strip shrinks under the piece.
	strips := splitRemainder(freeRegion{0, 0, 100, 100}, 20, 90)
	require.Len(t, strips, 2)
	assert.Equal(t, freeRegion{20, 0, 80, 100}, strips[0])
	assert.Equal(t, freeRegion{0, 90, 20, 10}, strips[1])
}

func TestSplitRemainder_DegenerateStripsDiscarded(t *testing.T) {
	// Full-width piece: only the bottom strip survives.
	strips := splitRemainder(freeRegion{0, 0, 100, 100}, 100, 30)
	require.Len(t, strips, 1)
	assert.Equal(t, freeRegion{0, 30, 100, 70}, strips[0])

	// Exact fit: nothing survives.
	assert.Empty(t, splitRemainder(freeRegion{10, 20, 50, 40}, 50, 40))
}

func TestSplitRemainder_OffsetRegionKeepsAbsoluteCoordinates(t *testing.T) {
	strips := splitRemainder(freeRegion{10, 20, 100, 100}, 60, 60)
	require.Len(t, strips, 2)
	assert.Equal(t, freeRegion{70, 20, 40, 60}, strips[0])
	assert.Equal(t, freeRegion{10, 80, 100, 40}, strips[1])
}

func TestShapeScore_ExactFitIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(shapeScore(freeRegion{0, 0, 50, 40}, 50, 40), 1))
}

func TestShapeScore_ReportsSmallestStripDimension(t *testing.T) {
	// 60x60 in 100x100 leaves a 40x60 and a 100x40 strip; smallest min
	// dimension is 40.
	assert.InDelta(t, 40.0, shapeScore(freeRegion{0, 0, 100, 100}, 60, 60), eps)

	// 95x50 in 100x60 leaves a 5mm sliver.
	assert.InDelta(t, 5.0, shapeScore(freeRegion{0, 0, 100, 60}, 95, 50), eps)
}

func TestRegionTracker_PlacePreservesCreationOrder(t *testing.T) {
	tr := newRegionTracker(100, 100)
	tr.place(0, 60, 60)
	require.Len(t, tr.regions, 2)

	// Consuming the first region appends its strips after the survivors.
	tr.place(0, 40, 60)
	require.Len(t, tr.regions, 1)
	assert.Equal(t, freeRegion{0, 60, 100, 40}, tr.regions[0])
}
