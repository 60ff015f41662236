package grid

import "errors"

// ErrOddParity indicates a translation (dx, dy) with dx+dy odd was
// requested. Such a translation is not an isometry of the triangular
// lattice: it flips triangle orientation and would corrupt connectivity.
var ErrOddParity = errors.New("grid: translation (dx+dy) must be even")
