package diffpair

import "github.com/katalvlaran/gridroute/gridmodel"

// Options configures one Synthesize call.
type Options struct {
	// PitchCells is the shoulder-to-shoulder spacing; each shoulder sits
	// PitchCells/2 off the centerline along its smoothed normal.
	PitchCells float64

	// MaxBearingDeltaRad bounds how far GenerateShoulders' smoothed normal
	// may rotate from one vertex to the next, preventing a sharp turn from
	// jumping the shoulder pitch discontinuously (SPEC_FULL.md §6.6).
	MaxBearingDeltaRad float64

	// PruneViaRadius, PruneTerminalRadius, PruneZoneBoundaryRadius bound the
	// keep-out distance (in cells) around, respectively, a via stack, a
	// net terminal, and a design-rule zone boundary crossing — shoulder
	// cells within these radii are removed before gap-filling.
	PruneViaRadius          float64
	PruneTerminalRadius     float64
	PruneZoneBoundaryRadius float64

	// MinIslandLen is the shortest surviving pruned run that is kept as-is
	// rather than closed entirely (SPEC_FULL.md §6.6 step 4).
	MinIslandLen int

	// GapFillClosedFormMaxSquared is the largest squared lateral gap the
	// closed-form straight-line heuristic will bridge directly; larger
	// gaps fall through to the restricted path-finder retry.
	GapFillClosedFormMaxSquared float64

	// AllowGlobalPNSwap enables the whole-pair P/N terminal swap search
	// (SPEC_FULL.md §6.6 step 6).
	AllowGlobalPNSwap bool

	// SubMapMargin pads the bounding box a per-subsection connection-
	// optimization swap search restricts itself to, in cells.
	SubMapMargin int
}

// DefaultOptions returns the synthesizer's out-of-the-box tuning.
func DefaultOptions() Options {
	return Options{
		PitchCells:                  2,
		MaxBearingDeltaRad:          DefaultMaxBearingDeltaRad,
		PruneViaRadius:              2,
		PruneTerminalRadius:         1,
		PruneZoneBoundaryRadius:     1,
		MinIslandLen:                2,
		GapFillClosedFormMaxSquared: 25,
		AllowGlobalPNSwap:           true,
		SubMapMargin:                3,
	}
}

// Result holds the two shoulder paths synthesized for one pseudo-net.
type Result struct {
	PathP, PathN *gridmodel.Path
	TermsSwapped bool
}
