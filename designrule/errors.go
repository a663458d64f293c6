package designrule

import "errors"

// Sentinel errors for designrule operations.
var (
	// ErrNoZones indicates Build was called with an empty zone-rule slice.
	ErrNoZones = errors.New("designrule: at least one zone rule is required")

	// ErrBadSubsetCount indicates a ZoneRule declared zero subsets.
	ErrBadSubsetCount = errors.New("designrule: zone rule must declare at least one subset")

	// ErrZoneOutOfRange indicates a query referenced a zone id the matrix
	// was not built with.
	ErrZoneOutOfRange = errors.New("designrule: zone id out of range")
)
