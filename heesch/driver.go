package heesch

import (
	"errors"

	"github.com/trilattice/heesch/corona"
	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/shape"
)

// Result reports the outcome of a Heesch-number computation.
type Result struct {
	// Hc is the number of complete coronas found. If PartialFailure is
	// true, Hc is only a lower bound (the backend failed before a
	// verdict could be reached for corona Hc+1).
	Hc int
	// Coronas holds the successfully completed coronas, in the order
	// they were found. len(Coronas) == Hc.
	Coronas []corona.Corona
	// CapReached is true when every corona up to cap succeeded: Hc>=cap
	// is a lower bound on the true (possibly infinite) Heesch number,
	// never to be conflated with "tiles the plane".
	CapReached bool
	// PartialFailure is true if the backend failed (ErrSatBackendFailure
	// or ErrSolveTimeout) rather than definitively proving no corona
	// exists. Hc is then a conservative lower bound, not an exact value.
	PartialFailure bool
}

// Compute finds the Heesch number of s, trying up to cap coronas. solver
// is used sequentially, one corona at a time; Compute performs no
// concurrency of its own.
func Compute(s shape.Shape, cap int, solver *corona.Solver) Result {
	occupied := s.Cells()
	var coronas []corona.Corona

	for k := 1; k <= cap; k++ {
		boundary := grid.Boundary(occupied)

		c, err := solver.Solve(s, occupied, boundary)
		if err != nil {
			if errors.Is(err, corona.ErrNoCorona) {
				return Result{Hc: len(coronas), Coronas: coronas}
			}
			// ErrSatBackendFailure or ErrSolveTimeout: a conservative
			// lower bound, flagged distinctly.
			return Result{Hc: len(coronas), Coronas: coronas, PartialFailure: true}
		}

		coronas = append(coronas, c)
		for _, p := range c {
			occupied = occupied.Union(p.Cells)
		}
	}

	return Result{Hc: cap, Coronas: coronas, CapReached: true}
}
