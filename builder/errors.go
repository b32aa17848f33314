// Package builder: sentinel errors.

package builder

import "errors"

// ErrTooFewNodes indicates that n is smaller than the minimum the requested
// topology needs (2 for Path and Star, 3 for Cycle, 1 for Complete).
// Usage: if errors.Is(err, builder.ErrTooFewNodes) { … }.
var ErrTooFewNodes = errors.New("builder: too few nodes for topology")
