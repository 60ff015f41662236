// Package shape represents a polyiamond as an immutable, canonicalized
// set of grid.Cell values and provides the D6 symmetry operations used
// to detect when two polyiamonds are the same free shape.
//
// What:
//
//   - Shape stores cells in translation-canonical position (min y is 0;
//     min x is 0, or -1 when the original min x + min y is odd, so the
//     translation vector has even parity and connectivity survives).
//   - AllTransformations returns the 12 images under the dihedral group
//     D6 (six rotations times two reflections), transform index stable.
//   - OrbitCanonical returns the lexicographically least of those 12
//     images, re-translated into canonical position: two shapes are the
//     same free polyiamond iff their orbit-canonical keys match.
//
// Errors:
//
//   - ErrEmptyShape: constructed from zero cells.
//   - ErrNotConnected: constructed from a cell set that is not a single
//     connected component under the edge-neighbor relation.
package shape
