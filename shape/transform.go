package shape

import "github.com/trilattice/heesch/grid"

// Rotate60 returns s rotated 60 degrees clockwise, re-canonicalized.
func (s Shape) Rotate60() Shape {
	out := make(grid.CellSet, len(s.cells))
	for c := range s.cells {
		out[grid.Rotate60(c)] = struct{}{}
	}
	return newUnchecked(out)
}

// ReflectX returns s reflected across a lattice axis, re-canonicalized.
func (s Shape) ReflectX() Shape {
	out := make(grid.CellSet, len(s.cells))
	for c := range s.cells {
		out[grid.ReflectX(c)] = struct{}{}
	}
	return newUnchecked(out)
}

// AllTransformations returns the 12 images of s under D6 (six rotations
// times two reflections). Index order is stable: rotation r at index
// 2*r, its reflection at 2*r+1, for r in 0..5. Duplicate images (for
// shapes with nontrivial symmetry) are preserved so transform indices
// stay meaningful for placement identities.
func (s Shape) AllTransformations() [12]Shape {
	var out [12]Shape
	cur := s
	for r := 0; r < 6; r++ {
		out[2*r] = cur
		out[2*r+1] = cur.ReflectX()
		if r < 5 {
			cur = cur.Rotate60()
		}
	}
	return out
}
