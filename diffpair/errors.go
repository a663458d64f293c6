package diffpair

import "errors"

var (
	// ErrEmptyCenterline indicates Synthesize was called with a pseudo-net
	// path carrying no segments.
	ErrEmptyCenterline = errors.New("diffpair: pseudo-net centerline is empty")
)
