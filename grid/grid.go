package grid

import "math"

const triHeight = 0.8660254037844386 // sqrt(3)/2

// Boundary returns every cell not in occupied that has at least one
// neighbor in occupied. This is the full neighbor boundary: no
// distinction is made between an outer boundary and cells enclosed by a
// hole in occupied (see DESIGN.md).
func Boundary(occupied CellSet) CellSet {
	out := make(CellSet)
	for c := range occupied {
		for _, n := range c.Neighbors() {
			if !occupied.Contains(n) {
				out[n] = struct{}{}
			}
		}
	}
	return out
}

// mustEvenParity panics if dx+dy is odd. A translation with odd parity
// is not a lattice isometry; reaching this path indicates a bug upstream,
// not a condition callers can recover from.
func mustEvenParity(dx, dy int) {
	if (dx+dy)%2 != 0 {
		panic(ErrOddParity)
	}
}

// Translate returns cells shifted by (dx, dy). Precondition: dx+dy even;
// violating it panics.
func Translate(cells CellSet, dx, dy int) CellSet {
	mustEvenParity(dx, dy)
	out := make(CellSet, len(cells))
	for c := range cells {
		out[Cell{c.X + dx, c.Y + dy}] = struct{}{}
	}
	return out
}

// cartesian returns the Cartesian coordinates of the center of c.
func cartesian(c Cell) (float64, float64) {
	cx := float64(c.X) * 0.5
	var cy float64
	if c.Up() {
		cy = float64(c.Y)*triHeight + triHeight/3
	} else {
		cy = float64(c.Y)*triHeight + 2*triHeight/3
	}
	return cx, cy
}

// fromCartesian finds the cell whose center is nearest (x, y). The
// rotation and reflection primitives below always land exactly on a
// lattice cell center (up to floating-point error), so the narrow
// search radius is exact, never approximate, for any of the 12 images.
func fromCartesian(x, y float64) Cell {
	rowEst := int(math.Floor(y / triHeight))
	colEst := int(math.Round(x * 2))

	best := Cell{colEst, rowEst}
	bestDist := math.MaxFloat64
	for dr := -3; dr <= 3; dr++ {
		for dc := -3; dc <= 3; dc++ {
			cand := Cell{colEst + dc, rowEst + dr}
			cx, cy := cartesian(cand)
			dist := (cx-x)*(cx-x) + (cy-y)*(cy-y)
			if dist < bestDist {
				bestDist = dist
				best = cand
			}
		}
	}
	return best
}

// Rotate60 rotates c by 60 degrees clockwise around the Cartesian point
// (0.5, 0), the right base corner of Cell{0,0} and a lattice vertex where
// six triangles meet. The image of any lattice cell under this rotation
// is again a lattice cell, so the Cartesian round trip snaps back exactly.
func Rotate60(c Cell) Cell {
	cx, cy := cartesian(c)
	const pivotX = 0.5
	const cos60, sin60 = 0.5, triHeight
	rx := cx - pivotX
	nx := pivotX + rx*cos60 + cy*sin60
	ny := -rx*sin60 + cy*cos60
	return fromCartesian(nx, ny)
}

// ReflectX reflects c across the Cartesian x-axis through the origin
// vertex.
func ReflectX(c Cell) Cell {
	cx, cy := cartesian(c)
	return fromCartesian(cx, -cy)
}
