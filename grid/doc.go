// Package grid implements the triangular-lattice coordinate system that
// every polyiamond operation in this module is built on.
//
// What:
//
//   - Cell is an (x, y) pair naming one unit triangle; orientation is a
//     pure function of (x+y)%2.
//   - Neighbors, Boundary, Translate implement the edge-adjacency and
//     set operations the corona engine needs.
//   - Rotate60/ReflectX generate the D6 point group by transforming
//     through Cartesian space and snapping back to the nearest cell.
//
// Why:
//
//   - Half of all integer translations flip triangle orientation and are
//     not lattice isometries; every translating operation here gates on
//     (dx+dy)%2==0 so that invariant can never silently leak upward.
//
// Complexity:
//
//   - Neighbors: O(1). Boundary: O(|occupied|). Translate: O(|cells|).
//   - Rotate60/ReflectX: O(1) per cell (one Cartesian round trip).
//
// Errors:
//
//   - ErrOddParity: a translation with odd (dx+dy) was requested. This
//     indicates a bug upstream and is only ever raised through the
//     internal assertion path, never returned from a public constructor.
package grid
