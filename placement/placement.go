package placement

import (
	"sort"
	"strconv"
	"strings"

	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/shape"
)

// Placement is the image of a shape under one lattice isometry: transform
// index (0..11, see shape.Shape.AllTransformations) composed with a
// translation (dx, dy). It is identified extensionally by Cells; Transform
// and DX/DY are retained for debugging and reproducibility only.
type Placement struct {
	Cells     grid.CellSet
	Transform int
	DX, DY    int
}

// key returns the exact cell-set identity used for de-duplication:
// placements compare equal iff their cell sets are equal.
func key(cells grid.CellSet) string {
	pairs := make([][2]int, 0, len(cells))
	for c := range cells {
		pairs = append(pairs, [2]int{c.X, c.Y})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(strconv.Itoa(p[0]))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p[1]))
		sb.WriteByte(';')
	}
	return sb.String()
}

// Candidates returns every placement of s that is disjoint from occupied
// and covers at least one boundary cell, de-duplicated by cell set.
func Candidates(s shape.Shape, occupied, boundary grid.CellSet) []Placement {
	transforms := s.AllTransformations()

	var out []Placement
	seen := make(map[string]struct{})

	for t, img := range transforms {
		baseCells := img.Cells()
		for b := range boundary {
			for a := range baseCells {
				dx := b.X - a.X
				dy := b.Y - a.Y
				if (dx+dy)%2 != 0 {
					continue
				}

				placed := grid.Translate(baseCells, dx, dy)
				if !placed.Disjoint(occupied) {
					continue
				}

				k := key(placed)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}

				out = append(out, Placement{
					Cells:     placed,
					Transform: t,
					DX:        dx,
					DY:        dy,
				})
			}
		}
	}
	return out
}
