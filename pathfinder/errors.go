package pathfinder

import "errors"

// Sentinel errors for pathfinder operations. Per SPEC_FULL.md §7 kind 1,
// these represent user-input inconsistencies: the caller should log them
// and treat the net as "not found" for this iteration, not abort.
var (
	// ErrStartOutsideMap indicates the start coordinate is out of bounds.
	ErrStartOutsideMap = errors.New("pathfinder: start coordinate is outside the map")

	// ErrEndOutsideMap indicates the end coordinate is out of bounds.
	ErrEndOutsideMap = errors.New("pathfinder: end coordinate is outside the map")

	// ErrStartIllegal indicates the start cell is inside a barrier, inside
	// disallowed proximity, or has AllowedDirections == DirNone.
	ErrStartIllegal = errors.New("pathfinder: start cell is not a legal terminal")

	// ErrEndIllegal indicates the end cell is inside a barrier, inside
	// disallowed proximity, or has AllowedDirections == DirNone.
	ErrEndIllegal = errors.New("pathfinder: end cell is not a legal terminal")

	// ErrOpenSetExhausted indicates the open set emptied before the target
	// was reached (SPEC_FULL.md §7 kind 3: search exhaustion).
	ErrOpenSetExhausted = errors.New("pathfinder: open set exhausted before reaching target")
)
