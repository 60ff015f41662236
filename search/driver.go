package search

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/trilattice/heesch/corona"
	"github.com/trilattice/heesch/enumerate"
	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/heesch"
	"github.com/trilattice/heesch/shape"
)

// Filter selects which Heesch numbers are reported, via target_hc /
// min_hc configuration options. A nil field means
// "unconstrained" for that axis; TargetHc takes precedence over MinHc
// when both are set.
type Filter struct {
	TargetHc *int
	MinHc    *int
}

// Match reports whether hc satisfies the filter.
func (f Filter) Match(hc int) bool {
	if f.TargetHc != nil {
		return hc == *f.TargetHc
	}
	if f.MinHc != nil {
		return hc >= *f.MinHc
	}
	return true
}

// Entry is one matching shape and its computed Heesch result.
type Entry struct {
	Shape  shape.Shape
	Result heesch.Result
}

// Bucket groups entries sharing a Heesch number.
type Bucket struct {
	Hc      int
	Entries []Entry
}

// Config gathers the run's configuration options.
type Config struct {
	N       int
	Cap     int
	Filter  Filter
	Backend string
	Workers int
}

// Run generates every free n-iamond, computes its Heesch number, and
// returns the buckets matching cfg.Filter, sorted by Hc ascending.
// Progress is written to os.Stderr.
//
// Dedup by orbit-canonical key happens as fixed shapes stream in; unique
// shapes are fanned out across cfg.Workers worker goroutines, each with
// its own *corona.Solver; results merge into a shared bucket map under
// one mutex.
func Run(cfg Config) []Bucket {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Cap <= 0 {
		cfg.Cap = 5
	}

	fixed := enumerate.FixedPolyiamonds(cfg.N)
	fmt.Fprintf(os.Stderr, "Generated %d fixed %d-iamonds\n", len(fixed), cfg.N)

	unique := dedupByOrbit(fixed)
	fmt.Fprintf(os.Stderr, "%d unique %d-iamonds after orbit dedup\n", len(unique), cfg.N)

	jobs := make(chan shape.Shape, len(unique))
	for _, s := range unique {
		jobs <- s
	}
	close(jobs)

	var mu sync.Mutex
	buckets := make(map[int]*Bucket)
	var processed int64

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			solver := &corona.Solver{Backend: cfg.Backend}
			for s := range jobs {
				res := heesch.Compute(s, cfg.Cap, solver)

				mu.Lock()
				processed++
				if processed%10 == 0 || int(processed) == len(unique) {
					fmt.Fprintf(os.Stderr, "  Processed %d/%d\n", processed, len(unique))
				}
				if cfg.Filter.Match(res.Hc) {
					b, ok := buckets[res.Hc]
					if !ok {
						b = &Bucket{Hc: res.Hc}
						buckets[res.Hc] = b
					}
					b.Entries = append(b.Entries, Entry{Shape: s, Result: res})
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hc < out[j].Hc })
	return out
}

// dedupByOrbit converts fixed cell sets to Shapes, skipping any that fail
// construction (a NotConnected/EmptyShape shape is skipped, not fatal to
// the run), and keeps one representative per orbit-canonical key.
func dedupByOrbit(fixed []grid.CellSet) []shape.Shape {
	seen := make(map[string]struct{}, len(fixed))
	out := make([]shape.Shape, 0, len(fixed))
	for _, cells := range fixed {
		s, err := shape.New(cells)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping invalid shape: %v\n", err)
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
