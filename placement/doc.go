// Package placement enumerates candidate placements of a shape around a
// partially-occupied region: the images of a shape, under every lattice
// isometry, that touch the boundary of the occupied region without
// overlapping it.
//
// Algorithm: for each of the 12 symmetric images of the
// shape, for each boundary cell, for each cell of the image, compute the
// translation aligning the image cell with the boundary cell; skip
// odd-parity translations (not isometries); skip translations that
// overlap the occupied region; de-duplicate the rest by cell set.
//
// Anchoring on (image cell, boundary cell) pairs is exhaustive because
// any valid placement must cover at least one boundary cell to belong to
// a ring, so no placement is missed by enumerating only translations
// that align some image cell with some boundary cell.
package placement
