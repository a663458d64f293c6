package pathfinder

import (
	"math"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/gridrouteerr"
)

// CostScale converts the floating-point cell-size/multiplier arithmetic of
// SPEC_FULL.md §4.4 into the fixed-point uint64 units the overflow-checked
// accumulator operates on.
const CostScale = 1000

// distanceCost is the lateral-cell-size- and trace-cost-multiplier-scaled
// geometric length of one step, in CostScale-fixed-point units.
func distanceCost(d gridmodel.Delta, opts Options) uint64 {
	var length float64
	if d.DZ != 0 {
		length = opts.ViaCost
	} else {
		length = lateralLength(d)
	}
	return uint64(math.Round(length * opts.TraceCostMultiplier * CostScale))
}

// congestionPenalty reads the congestion accumulated at c (all subsets and
// shapes) and scales it by the path's randomize_congestion mode, per
// SPEC_FULL.md §4.4's two scaling formulas.
func congestionPenalty(grid *gridmodel.Grid, c gridmodel.Coord, pathID int, opts Options) uint64 {
	raw := congestion.ReadCongestion(grid, c, pathID, opts.RecognizeSelfCongestion)
	switch opts.CongestionMode {
	case CongestionModeDecrease:
		factor := 1 - 0.98*(1-0.2*opts.FMap)*(1-opts.FPath)
		return uint64(math.Round(float64(raw) * factor))
	case CongestionModeIncrease:
		factor := 1 + 4.0*(1-0.2*opts.FMap)*(1-opts.FPath)
		return uint64(math.Round(float64(raw) * factor))
	default:
		return raw
	}
}

// addChecked adds b to a, raising a Fatal via gridrouteerr if the 64-bit
// sum would overflow (SPEC_FULL.md §4.4, §7 kind 2).
func addChecked(a, b uint64, pathID int, detail interface{}) uint64 {
	sum := a + b
	if sum < a {
		gridrouteerr.Raise("cost accumulation overflow", pathID, detail)
	}
	return sum
}

// edgeCost computes g(C) - g(P): distanceCost plus the congestion penalty
// at C, with overflow checking, per SPEC_FULL.md §4.4.
func edgeCost(grid *gridmodel.Grid, drm *designrule.Matrix, from, to gridmodel.Coord, pathID int, opts Options) uint64 {
	d := gridmodel.Delta{DX: to.X - from.X, DY: to.Y - from.Y, DZ: to.Z - from.Z}
	dist := distanceCost(d, opts)
	pen := congestionPenalty(grid, to, pathID, opts)
	return addChecked(dist, pen, pathID, map[string]interface{}{"from": from, "to": to, "dist": dist, "penalty": pen})
}

// PathCost sums edgeCost across every consecutive pair of coords, giving
// the same cost a FindPath call over that exact sequence would have
// accumulated — used to compare two already-routed candidate assignments
// without re-searching.
func PathCost(grid *gridmodel.Grid, drm *designrule.Matrix, coords []gridmodel.Coord, pathID int, opts Options) uint64 {
	var total uint64
	for i := 1; i < len(coords); i++ {
		total = addChecked(total, edgeCost(grid, drm, coords[i-1], coords[i], pathID, opts), pathID, map[string]interface{}{"at": coords[i]})
	}
	return total
}
