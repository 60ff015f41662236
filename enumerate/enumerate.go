package enumerate

import (
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/shape"
)

// FixedPolyiamonds returns all fixed n-iamonds: shapes distinguished by
// rotation and reflection, every one containing Cell{0,0} and grown only
// by adjoining neighbors of existing cells.
//
// n<=0 returns nil. n==1 returns the single monotriangle.
func FixedPolyiamonds(n int) []grid.CellSet {
	if n <= 0 {
		return nil
	}

	start := grid.NewCellSet(grid.Cell{X: 0, Y: 0})
	if n == 1 {
		return []grid.CellSet{start}
	}

	current := []grid.CellSet{start}
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	for size := 2; size <= n; size++ {
		current = growLevel(current, workers)
	}
	return current
}

// growLevel builds the next level from shapes at the current level,
// fanning candidate expansion across workers goroutines and merging
// their local dedup maps under a single mutex.
func growLevel(shapes []grid.CellSet, workers int) []grid.CellSet {
	if len(shapes) == 0 {
		return nil
	}
	if workers > len(shapes) {
		workers = len(shapes)
	}

	var mu sync.Mutex
	seen := make(map[string]grid.CellSet)

	var wg sync.WaitGroup
	chunkSize := (len(shapes) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= len(shapes) {
			break
		}
		if end > len(shapes) {
			end = len(shapes)
		}

		wg.Add(1)
		go func(chunk []grid.CellSet) {
			defer wg.Done()
			local := make(map[string]grid.CellSet)

			for _, cells := range chunk {
				for _, candidate := range boundaryCells(cells) {
					grown := make(grid.CellSet, len(cells)+1)
					for c := range cells {
						grown[c] = struct{}{}
					}
					grown[candidate] = struct{}{}

					key := cellsKey(grown)
					if _, ok := local[key]; !ok {
						local[key] = grown
					}
				}
			}

			mu.Lock()
			for k, v := range local {
				if _, ok := seen[k]; !ok {
					seen[k] = v
				}
			}
			mu.Unlock()
		}(shapes[start:end])
	}
	wg.Wait()

	out := make([]grid.CellSet, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	return out
}

// boundaryCells returns the distinct neighbor cells of cells not already
// members, the candidates for the next growth step.
func boundaryCells(cells grid.CellSet) []grid.Cell {
	seen := make(grid.CellSet)
	for c := range cells {
		for _, n := range c.Neighbors() {
			if !cells.Contains(n) {
				seen[n] = struct{}{}
			}
		}
	}
	return seen.Slice()
}

// cellsKey is the exact (not hashed) sorted-tuple dedup key for a level,
// applied to raw cell coordinates with no translation: every shape in
// this phase already contains Cell{0,0} by construction, and
// translating here would let growth paths through different positions
// collide spuriously.
func cellsKey(cells grid.CellSet) string {
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

// FreePolyiamonds returns one Shape per free-equivalence class of
// n-iamonds: the fixed enumeration grouped by OrbitCanonical, keeping the
// first representative found in each orbit.
func FreePolyiamonds(n int) []shape.Shape {
	fixed := FixedPolyiamonds(n)
	if len(fixed) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fixed))
	out := make([]shape.Shape, 0, len(fixed))
	for _, cells := range fixed {
		s, err := shape.New(cells)
		if err != nil {
			continue
		}
		key := s.OrbitCanonical()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
