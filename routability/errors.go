package routability

import "errors"

// ErrUnknownPath is returned when a path id given to Evaluate has no
// matching entry in the net registry.
var ErrUnknownPath = errors.New("routability: path id not present in net registry")
