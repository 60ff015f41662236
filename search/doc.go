// Package search runs the Heesch driver over every free n-iamond and
// buckets results by Heesch number.
//
// What:
//
//   - Streams fixed n-iamonds, computing each one's orbit-canonical form
//     and skipping those already seen.
//   - Fans out heesch.Compute across worker goroutines, one *corona.Solver
//     per worker: shapes are independent across workers, which share no
//     mutable state beyond the final bucket merge.
//   - Buckets shapes by Hc, filtered by an optional exact target or
//     minimum threshold.
//
// Ordering across workers is not guaranteed.
package search
