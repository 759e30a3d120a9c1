package dp

import "errors"

// Impossible is the sentinel value reported when no combination reaches the
// requested amount. It is distinct from every valid (non-negative) count.
const Impossible = -1

// ErrBadDims indicates that MatrixChain was given fewer than two dimensions,
// which cannot describe even a single matrix.
var ErrBadDims = errors.New("dp: matrix chain needs at least two dimensions")
