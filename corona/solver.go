package corona

import (
	"context"
	"fmt"
	"time"

	gophersolver "github.com/crillab/gophersat/solver"

	"github.com/trilattice/heesch/grid"
	"github.com/trilattice/heesch/placement"
	"github.com/trilattice/heesch/shape"
)

// Corona is a set of placements that are pairwise disjoint, disjoint from
// the occupied region they surround, and together cover every boundary
// cell.
type Corona []placement.Placement

// Solver builds and solves the corona-completion SAT instance. The zero
// value is ready to use: Backend defaults to gophersat's CDCL engine,
// the only sat_backend this module implements, and a zero Timeout means
// no wall-clock budget.
type Solver struct {
	// Backend names the configured SAT backend. Only "gophersat" is
	// implemented; any other non-empty value is rejected by Solve.
	Backend string
	// Timeout, if positive, bounds a single Solve call. Expiry is
	// reported as ErrSolveTimeout, distinct from a true ErrNoCorona.
	Timeout time.Duration
}

// Solve finds a complete corona of sh around occupied, covering boundary,
// or reports why none could be found.
func (s *Solver) Solve(sh shape.Shape, occupied, boundary grid.CellSet) (Corona, error) {
	if s.Backend != "" && s.Backend != "gophersat" {
		return nil, fmt.Errorf("%w: unknown sat backend %q", ErrSatBackendFailure, s.Backend)
	}

	candidates := placement.Candidates(sh, occupied, boundary)
	if len(candidates) == 0 {
		return nil, ErrNoCorona
	}

	// Pre-check: short-circuit if candidates can't jointly cover the
	// boundary, before ever building the SAT formula.
	covered := make(grid.CellSet)
	for _, p := range candidates {
		for c := range p.Cells.Intersect(boundary) {
			covered[c] = struct{}{}
		}
	}
	for b := range boundary {
		if !covered.Contains(b) {
			return nil, ErrNoCorona
		}
	}

	clauses, varToPlacement := buildFormula(candidates, boundary)

	ctx := context.Background()
	var cancel context.CancelFunc
	if s.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	type solveResult struct {
		model  []bool
		sat    bool
		status gophersolver.Status
	}
	resCh := make(chan solveResult, 1)

	// The solver handle is acquired inside this goroutine. Without a
	// timeout Solve waits for its result. On timeout Solve returns
	// immediately; the goroutine runs on until the solver finishes and
	// its result is dropped into the buffered channel.
	go func() {
		problem := gophersolver.ParseSlice(clauses)
		solv := gophersolver.New(problem)
		status := solv.Solve()
		if status != gophersolver.Sat {
			resCh <- solveResult{sat: false, status: status}
			return
		}
		resCh <- solveResult{sat: true, model: solv.Model()}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrSolveTimeout
	case res := <-resCh:
		if !res.sat {
			if res.status != gophersolver.Unsat {
				return nil, fmt.Errorf("%w: solver status %v", ErrSatBackendFailure, res.status)
			}
			return nil, ErrNoCorona
		}
		return extractCorona(res.model, varToPlacement), nil
	}
}

// buildFormula constructs the CNF clauses for candidates covering
// boundary: pairwise at-most-one per overlapping cell, one coverage
// clause per boundary cell (or an empty, always-false clause if
// no candidate reaches it — unreachable here since Solve pre-checks
// coverage, but kept for defense if called with a narrower candidate set
// in future).
func buildFormula(candidates []placement.Placement, boundary grid.CellSet) ([][]int, map[int]placement.Placement) {
	varToPlacement := make(map[int]placement.Placement, len(candidates))
	cellToVars := make(map[grid.Cell][]int)

	for i, p := range candidates {
		v := i + 1 // SAT variables are 1-indexed
		varToPlacement[v] = p
		for c := range p.Cells {
			cellToVars[c] = append(cellToVars[c], v)
		}
	}

	var clauses [][]int

	for _, vars := range cellToVars {
		for i := 0; i < len(vars); i++ {
			for j := i + 1; j < len(vars); j++ {
				clauses = append(clauses, []int{-vars[i], -vars[j]})
			}
		}
	}

	for b := range boundary {
		vars, ok := cellToVars[b]
		if !ok {
			clauses = append(clauses, []int{}) // empty clause: immediate UNSAT
			continue
		}
		clause := make([]int, len(vars))
		copy(clause, vars)
		clauses = append(clauses, clause)
	}

	return clauses, varToPlacement
}

// extractCorona reads the true variables of a SAT model back into the
// placements they name.
func extractCorona(model []bool, varToPlacement map[int]placement.Placement) Corona {
	var out Corona
	for v, p := range varToPlacement {
		if v-1 < len(model) && model[v-1] {
			out = append(out, p)
		}
	}
	return out
}
