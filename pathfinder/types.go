package pathfinder

import (
	"time"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// CongestionMode mirrors a path's recent randomize_congestion assignment
// (SPEC_FULL.md §4.5/§4.4): whether this call should scale the congestion
// penalty up, down, or leave it unscaled.
type CongestionMode int

const (
	CongestionModeNone CongestionMode = iota
	CongestionModeIncrease
	CongestionModeDecrease
)

// Options configures one FindPath call.
type Options struct {
	RecordExplored    bool
	RecordElapsedTime bool
	UseDijkstra       bool
	Restriction       *gridmodel.RoutingRestriction

	// DisableRandomCosts suppresses the Fisher-Yates neighbor reshuffle,
	// forcing deterministic exploration order; used by tests that assert
	// an exact path.
	DisableRandomCosts bool

	// RecognizeSelfCongestion, when true, includes the requesting path's
	// own prior congestion when computing edge cost (encourages reuse of
	// its previous route); when false, excludes it (encourages
	// exploration).
	RecognizeSelfCongestion bool

	// CongestionMode and the two recent-DRC-free fractions scale the
	// congestion penalty per SPEC_FULL.md §4.4.
	CongestionMode CongestionMode
	FMap, FPath    float64

	// PreviousPathCost seeds the per-iteration Fisher-Yates neighbor
	// reshuffle (SPEC_FULL.md §4.4, §9): "the seed is
	// |previous_iteration_cost_for_path|".
	PreviousPathCost int64

	// TraceCostMultiplier scales the distance cost of every step, lateral
	// and via alike (SPEC_FULL.md §6 cell_size_um/trace_cost_multiplier
	// knobs).
	TraceCostMultiplier float64

	// ViaCost is the fixed length assigned to a single layer-change step,
	// in the same units as a unit lateral step.
	ViaCost float64

	// HomeZone/BaseSubset identify the requesting net's design-rule
	// home zone and subset; SubsetFor translates as the path crosses zones.
	HomeZone   int
	BaseSubset int

	// StartSwapZoneID is the pin-swap zone id the path's start terminal
	// belongs to (0 if none), captured once when the path begins
	// (SPEC_FULL.md §4.4: "If C is in a pin-swap zone whose id differs from
	// the path's own starting swap-zone id ... C is rejected").
	StartSwapZoneID int
}

// DefaultOptions returns sensible defaults: A* (not Dijkstra), no
// restriction, random costs enabled, self-congestion excluded, no
// congestion-mode scaling, unit trace-cost multiplier, unit via cost.
func DefaultOptions() Options {
	return Options{
		TraceCostMultiplier: 1.0,
		ViaCost:             1.0,
	}
}

// Result is the outcome of one FindPath call.
type Result struct {
	Found    bool
	Cost     uint64
	Path     gridmodel.Path
	Explored int
	Elapsed  time.Duration
}
