package shape

import "errors"

// ErrEmptyShape indicates shape construction was attempted with no cells.
var ErrEmptyShape = errors.New("shape: cannot construct from an empty cell set")

// ErrNotConnected indicates shape construction was attempted with a cell
// set that is not a single connected component under the edge-neighbor
// relation.
var ErrNotConnected = errors.New("shape: cell set is not connected")
