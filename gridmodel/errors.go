package gridmodel

import "errors"

// Sentinel errors for gridmodel operations.
var (
	// ErrBadDimensions indicates a grid was constructed with a non-positive
	// width, height, or layer count.
	ErrBadDimensions = errors.New("gridmodel: width, height, and layers must all be positive")

	// ErrOutOfRange indicates a coordinate lies outside the grid bounds.
	ErrOutOfRange = errors.New("gridmodel: coordinate out of range")

	// ErrTooManyTraversingShapes indicates a cell's PathCenters slice would
	// exceed MaxTraversingShapes; this is an algorithmic failure (SPEC_FULL.md
	// §9, error kind 2), never expected in a correctly-bounded layout.
	ErrTooManyTraversingShapes = errors.New("gridmodel: cell exceeds MaxTraversingShapes")
)
