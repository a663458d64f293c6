package preflight

import "errors"

// ErrStartOutsideMap indicates the start coordinate is out of bounds.
var ErrStartOutsideMap = errors.New("preflight: start coordinate is outside the map")

// ErrEndOutsideMap indicates the end coordinate is out of bounds.
var ErrEndOutsideMap = errors.New("preflight: end coordinate is outside the map")
