package driver

import "errors"

// ErrNoNets names the condition of a net registry with no registered nets —
// there would be nothing for RunIteration to do. New does not check for it
// and accepts an empty registry.
var ErrNoNets = errors.New("driver: net registry is empty")
