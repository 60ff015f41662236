package corona

import "errors"

// ErrNoCorona indicates no complete corona exists around the given
// occupied region: either the SAT formula was UNSAT, or candidate
// placements could not cover the boundary even before a solve was
// attempted.
var ErrNoCorona = errors.New("corona: no complete corona exists")

// ErrSatBackendFailure indicates the SAT backend returned neither SAT nor
// UNSAT (crash, resource exhaustion).
var ErrSatBackendFailure = errors.New("corona: sat backend failed to produce a verdict")

// ErrSolveTimeout indicates the Solver's Timeout elapsed before the
// solver produced a verdict. Distinct from ErrNoCorona: a timeout is
// not a true UNSAT and must not be reported as one.
var ErrSolveTimeout = errors.New("corona: sat solve exceeded its deadline")
