// Command search enumerates free polyiamonds of a given size and reports
// their Heesch numbers.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/trilattice/heesch/search"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <n> [--cap K] [--target-hc H | --min-hc H] [--sat-backend NAME] [--workers W]\n", os.Args[0])
}

func main() {
	cap := flag.Int("cap", 5, "maximum coronas to certify")
	targetHc := flag.Int("target-hc", -1, "only report shapes with exactly this Heesch number")
	minHc := flag.Int("min-hc", -1, "only report shapes with Heesch number >= this value")
	backend := flag.String("sat-backend", "gophersat", "name of the SAT backend")
	workers := flag.Int("workers", 0, "number of worker goroutines (0 = NumCPU)")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	var n int
	if _, err := fmt.Sscanf(flag.Arg(0), "%d", &n); err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "error: n must be a positive integer, got %q\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}

	var filter search.Filter
	if *targetHc >= 0 {
		filter.TargetHc = targetHc
	} else if *minHc >= 0 {
		filter.MinHc = minHc
	}

	buckets := search.Run(search.Config{
		N:       n,
		Cap:     *cap,
		Filter:  filter,
		Backend: *backend,
		Workers: *workers,
	})

	matched := false
	for _, b := range buckets {
		for _, e := range b.Entries {
			matched = true
			printMatch(n, e)
		}
	}

	if !matched {
		os.Exit(1)
	}
}

func printMatch(n int, e search.Entry) {
	cells := e.Shape.Cells().Slice()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})

	pairs := make([][2]int, len(cells))
	for i, c := range cells {
		pairs[i] = [2]int{c.X, c.Y}
	}

	sizes := make([]int, len(e.Result.Coronas))
	for i, c := range e.Result.Coronas {
		size := 0
		for _, p := range c {
			size += len(p.Cells)
		}
		sizes[i] = size
	}

	fmt.Printf("n=%d cells=%v hc=%d cap_reached=%v corona_sizes=%v\n",
		n, pairs, e.Result.Hc, e.Result.CapReached, sizes)
}

