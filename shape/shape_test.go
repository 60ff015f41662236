package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilattice/heesch/grid"
)

func mono() grid.CellSet {
	return grid.NewCellSet(grid.Cell{X: 0, Y: 0})
}

func domino() grid.CellSet {
	return grid.NewCellSet(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0})
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(grid.NewCellSet())
	assert.ErrorIs(t, err, ErrEmptyShape)
}

func TestNewRejectsDisconnected(t *testing.T) {
	cells := grid.NewCellSet(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 10, Y: 10})
	_, err := New(cells)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestNewCanonicalizesMinToZero(t *testing.T) {
	cells := grid.NewCellSet(grid.Cell{X: 5, Y: 3}, grid.Cell{X: 6, Y: 3})
	s, err := New(cells)
	require.NoError(t, err)
	minX, minY := minCoords(s.Cells())
	assert.Equal(t, 0, minX)
	assert.GreaterOrEqual(t, minY, 0)
}

func TestSizeMatchesInputCardinality(t *testing.T) {
	s, err := New(domino())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Size())
}

func TestAllTransformationsCountAndConnectivity(t *testing.T) {
	s, err := New(domino())
	require.NoError(t, err)
	all := s.AllTransformations()
	assert.Len(t, all, 12)
	for i, t2 := range all {
		assert.Equalf(t, s.Size(), t2.Size(), "transform %d changed size", i)
	}
}

func TestRotate60SixTimesReturnsOriginalOrbit(t *testing.T) {
	s, err := New(domino())
	require.NoError(t, err)
	cur := s
	for i := 0; i < 6; i++ {
		cur = cur.Rotate60()
	}
	assert.Equal(t, s.OrbitCanonical(), cur.OrbitCanonical())
}

func TestReflectTwiceSameOrbit(t *testing.T) {
	s, err := New(domino())
	require.NoError(t, err)
	assert.Equal(t, s.OrbitCanonical(), s.ReflectX().ReflectX().OrbitCanonical())
}

func TestOrbitCanonicalInvariantUnderRotationAndReflection(t *testing.T) {
	triamondCells := grid.NewCellSet(
		grid.Cell{X: 0, Y: 0},
		grid.Cell{X: 1, Y: 0},
		grid.Cell{X: -1, Y: 0},
	)
	s, err := New(triamondCells)
	require.NoError(t, err)

	for _, t2 := range s.AllTransformations() {
		assert.Equal(t, s.OrbitCanonical(), t2.OrbitCanonical())
	}
}

func TestOrbitCanonicalDistinguishesDifferentShapes(t *testing.T) {
	s1, err := New(mono())
	require.NoError(t, err)
	s2, err := New(domino())
	require.NoError(t, err)
	assert.NotEqual(t, s1.OrbitCanonical(), s2.OrbitCanonical())
}

func TestStringRendersOneLinePerRow(t *testing.T) {
	s, err := New(mono())
	require.NoError(t, err)
	assert.NotEmpty(t, s.String())
	assert.NotContains(t, s.String(), "\n", "a one-row shape renders as one line")
}
