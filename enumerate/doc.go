// Package enumerate generates polyiamonds by Redelmeier-style level-wise
// growth, then reduces the fixed enumeration to one representative per
// free (rotation/reflection) equivalence class.
//
// What:
//
//   - FixedPolyiamonds(n) grows shapes anchored at (0,0) one cell at a
//     time, deduplicating at each level by an exact sorted-tuple key.
//   - FreePolyiamonds(n) groups fixed shapes by shape.Shape.OrbitCanonical
//     and keeps one representative per orbit.
//
// Why exact (not hashed) dedup: a hash collision at any level would
// silently drop a legitimate shape and corrupt every later level built
// from it; only OrbitCanonical's bucketing is permitted to use a hashed
// map key, because a false match there only causes a redundant shape to
// be skipped, not a ghost shape to be counted.
//
// Complexity: O(n) levels; level k takes O(|level k-1| * (k+1))
// candidate growths, since a shape of k-1 cells has at most k+1 boundary
// cells.
package enumerate
