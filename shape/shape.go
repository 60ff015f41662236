package shape

import (
	"sort"
	"strconv"
	"strings"

	"github.com/trilattice/heesch/grid"
)

// Shape is a finite, non-empty, connected polyiamond stored in
// translation-canonical position.
type Shape struct {
	cells grid.CellSet
}

// New constructs a Shape from cells, rejecting empty or disconnected
// input.
func New(cells grid.CellSet) (Shape, error) {
	if len(cells) == 0 {
		return Shape{}, ErrEmptyShape
	}
	if !isConnected(cells) {
		return Shape{}, ErrNotConnected
	}
	return Shape{cells: canonicalPosition(cells)}, nil
}

// newUnchecked builds a Shape without re-validating connectivity, for
// internal use where the caller already knows cells form a single
// component (e.g. a rigid transformation of an existing Shape).
func newUnchecked(cells grid.CellSet) Shape {
	return Shape{cells: canonicalPosition(cells)}
}

// Cells returns the canonical cell set of s.
func (s Shape) Cells() grid.CellSet {
	return s.cells
}

// Size returns the number of triangles in s.
func (s Shape) Size() int {
	return len(s.cells)
}

// isConnected reports whether cells form a single connected component
// under the edge-neighbor relation.
func isConnected(cells grid.CellSet) bool {
	if len(cells) <= 1 {
		return true
	}
	var start grid.Cell
	for c := range cells {
		start = c
		break
	}

	visited := make(grid.CellSet, len(cells))
	stack := []grid.Cell{start}
	visited[start] = struct{}{}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range c.Neighbors() {
			if cells.Contains(n) && !visited.Contains(n) {
				visited[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return len(visited) == len(cells)
}

// canonicalPosition translates cells so min y is 0 and min x is 0,
// shifting x by an extra -1 (so min x is -1) when min_x+min_y is odd so
// the overall translation has even parity and therefore cannot itself
// break connectivity.
func canonicalPosition(cells grid.CellSet) grid.CellSet {
	minX, minY := minCoords(cells)
	if (minX+minY)%2 != 0 {
		minX++
	}
	return grid.Translate(cells, -minX, -minY)
}

func minCoords(cells grid.CellSet) (int, int) {
	first := true
	var minX, minY int
	for c := range cells {
		if first {
			minX, minY = c.X, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	return minX, minY
}

// sortedTuple returns the exact (not hashed) sorted-pair serialization of
// cells, used both as a dedup key (enumerate) and to compare candidate
// orbit representatives lexicographically.
func sortedTuple(cells grid.CellSet) [][2]int {
	out := make([][2]int, 0, len(cells))
	for c := range cells {
		out = append(out, [2]int{c.X, c.Y})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func tupleLess(a, b [][2]int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i][0] != b[i][0] {
			return a[i][0] < b[i][0]
		}
		if a[i][1] != b[i][1] {
			return a[i][1] < b[i][1]
		}
	}
	return len(a) < len(b)
}

func tupleKey(t [][2]int) string {
	var sb strings.Builder
	for _, p := range t {
		sb.WriteString(strconv.Itoa(p[0]))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p[1]))
		sb.WriteByte(';')
	}
	return sb.String()
}

// OrbitCanonical returns the lexicographically least sorted-tuple key
// among the 12 symmetric images of s, each re-translated to canonical
// position before comparison. Two shapes are the same free polyiamond
// iff their OrbitCanonical keys are equal.
func (s Shape) OrbitCanonical() string {
	best := sortedTuple(s.cells)
	for _, t := range s.AllTransformations() {
		cand := sortedTuple(t.cells)
		if tupleLess(cand, best) {
			best = cand
		}
	}
	return tupleKey(best)
}

// String renders s as ASCII triangles, up-pointing cells as '▲' and
// down-pointing as '▼', one grid row per line.
func (s Shape) String() string {
	if len(s.cells) == 0 {
		return ""
	}
	minX, minY := minCoords(s.cells)
	maxX, maxY := minX, minY
	for c := range s.cells {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case !s.cells.Contains(c):
				sb.WriteByte(' ')
			case c.Up():
				sb.WriteRune('▲')
			default:
				sb.WriteRune('▼')
			}
		}
		if y > minY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
