// Package corona reduces "does a complete corona exist?" to a Boolean
// satisfiability instance and solves it with an external CDCL backend.
//
// What:
//
//   - One Boolean variable per candidate placement.
//   - Pairwise at-most-one clauses for every cell covered by more than
//     one placement (no overlaps).
//   - One coverage clause per boundary cell, or the empty clause if no
//     candidate covers it (immediate UNSAT).
//   - A pre-check short-circuits to "no corona" before ever building the
//     formula if the candidates' cells can't cover the whole boundary.
//
// Why pairwise, not sequential/commander, at-most-one: what matters here
// is the returned corona's validity, not the encoding's clause count, and
// candidate counts per boundary cell stay small enough that the quadratic
// blowup never matters in practice.
//
// Errors:
//
//   - ErrNoCorona: the formula is UNSAT; not a Go error condition in the
//     traditional sense, but a sentinel returned via errors.Is so callers
//     can distinguish "no corona" from "solver failure" without a type
//     switch.
//   - ErrSatBackendFailure: the solver returned neither SAT nor UNSAT, or
//     Solver.Backend names a backend other than gophersat.
//   - ErrSolveTimeout: the Solver's Timeout elapsed mid-solve.
package corona
