package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/shape"
)

// Expected free-polyiamond counts, OEIS A000577.
var knownFreeCounts = map[int]int{
	1: 1, 2: 1, 3: 1, 4: 4, 5: 6, 6: 12, 7: 24, 8: 66,
}

func TestFixedPolyiamondsEdgeCases(t *testing.T) {
	assert.Nil(t, FixedPolyiamonds(0))
	assert.Nil(t, FixedPolyiamonds(-3))

	ones := FixedPolyiamonds(1)
	require.Len(t, ones, 1)
	assert.True(t, ones[0].Contains(grid.Cell{X: 0, Y: 0}))
}

func TestFreePolyiamondCountsMatchOEIS(t *testing.T) {
	for n, want := range knownFreeCounts {
		got := FreePolyiamonds(n)
		assert.Equalf(t, want, len(got), "n=%d", n)
	}
}

func TestEveryFixedPolyiamondIsConnectedAndRightSize(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, cells := range FixedPolyiamonds(n) {
			s, err := shape.New(cells)
			require.NoErrorf(t, err, "n=%d cells=%v", n, cells)
			assert.Equal(t, n, s.Size())
		}
	}
}

func TestFreePolyiamondsHaveDistinctOrbitCanonicals(t *testing.T) {
	shapes := FreePolyiamonds(6)
	seen := make(map[string]bool)
	for _, s := range shapes {
		key := s.OrbitCanonical()
		assert.Falsef(t, seen[key], "duplicate orbit canonical for shape %v", s.Cells())
		seen[key] = true
	}
}

func TestFreePolyiamondsAreTranslationCanonical(t *testing.T) {
	for _, s := range FreePolyiamonds(5) {
		recanon, err := shape.New(s.Cells())
		require.NoError(t, err)
		assert.Equal(t, s.Cells(), recanon.Cells())
	}
}
