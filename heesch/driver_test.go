package heesch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilattice/heesch/corona"
	"github.com/trilattice/heesch/enumerate"
	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/shape"
)

func TestComputeMonotriangleReachesCap(t *testing.T) {
	s, err := shape.New(grid.NewCellSet(grid.Cell{X: 0, Y: 0}))
	require.NoError(t, err)

	var solver corona.Solver
	res := Compute(s, 3, &solver)

	assert.True(t, res.CapReached)
	assert.Equal(t, 3, res.Hc)
	require.Len(t, res.Coronas, 3)
	for _, c := range res.Coronas {
		assert.NotEmpty(t, c)
	}
}

func TestComputeDominoReachesCap(t *testing.T) {
	s, err := shape.New(grid.NewCellSet(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0}))
	require.NoError(t, err)

	var solver corona.Solver
	res := Compute(s, 3, &solver)

	assert.True(t, res.CapReached)
	assert.Equal(t, 3, res.Hc)

	prevSize := 0
	for _, c := range res.Coronas {
		size := 0
		for _, p := range c {
			size += len(p.Cells)
		}
		assert.Greater(t, size, 0)
		assert.GreaterOrEqual(t, size, prevSize)
		prevSize = size
	}
}

// TestComputeHeptiamondHasFiniteHeeschNumber drives Compute over every
// free 7-iamond, the smallest size where some shapes stop tiling their
// own neighborhood outward. Unlike the monotriangle and domino cases
// above (and the triamond and tetriamond runs in package search's
// tests), which all reach their cap trivially, at
// least one heptiamond must genuinely exhaust its valid placements and
// terminate with 0 < Hc < cap, exercising the corona solver's UNSAT path
// rather than only its SAT path.
func TestComputeHeptiamondHasFiniteHeeschNumber(t *testing.T) {
	const cap = 3
	shapes := enumerate.FreePolyiamonds(7)
	require.NotEmpty(t, shapes)

	var solver corona.Solver
	found := false
	for _, s := range shapes {
		res := Compute(s, cap, &solver)
		if res.Hc > 0 && res.Hc < cap && !res.CapReached {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one free 7-iamond to have a finite Heesch number below the cap")
}

func TestComputeZeroCapReturnsZero(t *testing.T) {
	s, err := shape.New(grid.NewCellSet(grid.Cell{X: 0, Y: 0}))
	require.NoError(t, err)

	var solver corona.Solver
	res := Compute(s, 0, &solver)
	assert.Equal(t, 0, res.Hc)
	assert.True(t, res.CapReached)
	assert.Empty(t, res.Coronas)
}
