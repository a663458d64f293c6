package diffpair

import (
	"math"

	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/gridrouteerr"
	"github.com/katalvlaran/gridroute/pathfinder"
)

// FillGap closes a pruned-open gap between from and to on a single
// shoulder. A short gap (squared lateral distance within closedFormMaxSq)
// is bridged directly by a straight interpolated line — the
// FindShortPathHeuristically closed form of SPEC_FULL.md §6.6 step 5.
// A longer gap is retried through a restricted path-finder search centered
// on the gap's midpoint, starting at the gap's length and doubling each
// attempt while the radius stays within the map's diagonal; if no such
// radius succeeds, the gap is
// unreconcilable and this is a fatal algorithmic condition rather than a
// routing failure a caller could usefully retry (SPEC_FULL.md §7 kind 2).
func FillGap(grid *gridmodel.Grid, drm *designrule.Matrix, scratch *pathfinder.Scratch, from, to gridmodel.Coord, pathID int, closedFormMaxSq float64, opts pathfinder.Options) ([]gridmodel.Coord, error) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	distSq := dx*dx + dy*dy

	if distSq <= closedFormMaxSq {
		return closedFormLine(from, to), nil
	}

	diag := math.Hypot(float64(grid.Width), float64(grid.Height))
	for radius := math.Sqrt(distSq); radius <= diag; radius *= 2 {
		restricted := opts
		restricted.Restriction = &gridmodel.RoutingRestriction{
			Enabled:            true,
			CenterX:            (from.X + to.X) / 2,
			CenterY:            (from.Y + to.Y) / 2,
			AllowedLayers:      allLayers(grid.Layers),
			AllowedRadiusCells: uniformRadius(grid.Layers, radius),
		}
		res, err := pathfinder.FindPath(grid, drm, scratch, from, to, pathID, restricted)
		if err == nil && res.Found {
			return res.Path.Coords(), nil
		}
	}

	gridrouteerr.Raise("diff-pair gap could not be closed within the map diagonal", pathID, map[string]interface{}{"from": from, "to": to})
	return nil, nil
}

func closedFormLine(from, to gridmodel.Coord) []gridmodel.Coord {
	steps := maxAbsInt(to.X-from.X, to.Y-from.Y)
	if steps == 0 {
		return []gridmodel.Coord{from}
	}
	out := make([]gridmodel.Coord, 0, steps+1)
	for s := 0; s <= steps; s++ {
		x := from.X + roundDiv((to.X-from.X)*s, steps)
		y := from.Y + roundDiv((to.Y-from.Y)*s, steps)
		out = append(out, gridmodel.Coord{X: x, Y: y, Z: from.Z})
	}
	return out
}

func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	neg := (num < 0) != (den < 0)
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	q := (2*num + den) / (2 * den)
	if neg {
		return -q
	}
	return q
}

func allLayers(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

func uniformRadius(n int, radius float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = radius
	}
	return out
}
