package routability

import (
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
)

const (
	// PlateauWindow is the number of most recent iterations' total cost the
	// plateau detector considers (SPEC_FULL.md §4.5, §8 scenario 5).
	PlateauWindow = 10

	// PlateauSlopeEpsilon bounds, as a fraction of the window's mean
	// magnitude, how close to flat the windowed least-squares slope must be
	// before the driver calls the current routing plateaued.
	PlateauSlopeEpsilon = 0.01

	// RandomizationDenominator is the named constant backing the dice-roll
	// fairness invariant of SPEC_FULL.md §8 scenario 6: each path's
	// iteration-local roll is uniform over [0, RandomizationDenominator).
	RandomizationDenominator = 100

	// DRCHistoryThreshold is the fraction of the last PlateauWindow
	// iterations a path must have carried a DRC in before it is eligible
	// for the randomization trigger (SPEC_FULL.md §4.4: "≥ 40% of the
	// last 10 iterations").
	DRCHistoryThreshold = 0.4

	// PlateauStddevEpsilon bounds, as a fraction of the window's mean
	// magnitude, how small the windowed cost standard deviation must be —
	// alongside PlateauSlopeEpsilon — before Plateaued reports true.
	PlateauStddevEpsilon = 0.02
)

// DRCCategory classifies a design-rule violation by the pair of shapes
// involved.
type DRCCategory int

const (
	DRCViaVia DRCCategory = iota
	DRCTraceTrace
	DRCTraceVia
)

func (c DRCCategory) String() string {
	switch c {
	case DRCViaVia:
		return "VIA_VIA"
	case DRCTraceTrace:
		return "TRACE_TRACE"
	case DRCTraceVia:
		return "TRACE_VIA"
	default:
		return "UNKNOWN"
	}
}

// DRCViolation records one detected design-rule violation between two
// nets' centerlines.
type DRCViolation struct {
	CellA, CellB gridmodel.Coord
	PathA, PathB int
	Category     DRCCategory
}

// RoutingMetrics accumulates one iteration's routability outcome: DRC
// counts keyed every way the driver needs them, the symmetric net-crossing
// matrix, the rolling cost history plateau detection reads from, and each
// path's next-iteration randomize_congestion assignment.
type RoutingMetrics struct {
	DRCCountByPath     map[int]int
	DRCCountByLayer    map[int]int
	DRCCountByCategory map[DRCCategory]int
	Violations         []DRCViolation

	// Crossing[a][b] counts how many DRC cells paths a and b share.
	// Maintained symmetric: Crossing[a][b] == Crossing[b][a] always.
	Crossing map[int]map[int]int

	// RandomizeCongestion holds each path's dice-roll assignment for the
	// next iteration's congestion-penalty scaling.
	RandomizeCongestion map[int]pathfinder.CongestionMode

	// maxRecorded bounds how many DRCViolation entries Violations retains
	// per iteration; 0 means unlimited. Counts in DRCCountByPath/
	// DRCCountByLayer/DRCCountByCategory are never bounded by this — only
	// the retained detail records are, per SPEC_FULL.md §6's
	// max_recorded_DRCs knob.
	maxRecorded int

	recentCost []float64

	// pathDRCHistory[pathID] is a ring of the last PlateauWindow iterations'
	// "did this path carry a DRC" bits — SPEC_FULL.md §4.4's
	// recent_path_DRC_cells, read by DRCHistoryFraction.
	pathDRCHistory map[int][]bool

	// iterationsSinceChange counts iterations since RollRandomization last
	// actually reassigned a path's CongestionMode, gating ShouldRandomize's
	// "1.5*N_REEQ iterations since the most recent algorithm change" clause.
	iterationsSinceChange int
}

// SetMaxRecorded bounds how many DRCViolation detail records Evaluate
// retains per iteration. n <= 0 means unlimited.
func (m *RoutingMetrics) SetMaxRecorded(n int) {
	m.maxRecorded = n
}

// NewRoutingMetrics returns a zeroed RoutingMetrics ready for Evaluate.
func NewRoutingMetrics() *RoutingMetrics {
	return &RoutingMetrics{
		DRCCountByPath:      make(map[int]int),
		DRCCountByLayer:     make(map[int]int),
		DRCCountByCategory:  make(map[DRCCategory]int),
		Crossing:            make(map[int]map[int]int),
		RandomizeCongestion: make(map[int]pathfinder.CongestionMode),
		pathDRCHistory:      make(map[int][]bool),
	}
}

// ResetCounts clears everything Evaluate writes except the rolling cost
// history and randomization assignments, which persist across iterations.
func (m *RoutingMetrics) ResetCounts() {
	m.DRCCountByPath = make(map[int]int)
	m.DRCCountByLayer = make(map[int]int)
	m.DRCCountByCategory = make(map[DRCCategory]int)
	m.Violations = nil
	m.Crossing = make(map[int]map[int]int)
}

func (m *RoutingMetrics) recordCrossing(a, b int) {
	if a == b {
		return
	}
	if m.Crossing[a] == nil {
		m.Crossing[a] = make(map[int]int)
	}
	m.Crossing[a][b]++
	if m.Crossing[b] == nil {
		m.Crossing[b] = make(map[int]int)
	}
	m.Crossing[b][a]++
}
