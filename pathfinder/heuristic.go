package pathfinder

import (
	"math"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// heuristic returns h(c): zero in Dijkstra mode, otherwise an admissible
// lower bound on the remaining cost to end. Because every member of the
// 18-neighborhood's lateral moves has cost exactly proportional to its own
// Euclidean displacement (cardinal=1, diagonal=sqrt(2), knight=sqrt(5); see
// lateralLength), the straight-line lateral distance scaled the same way
// the real edges are scaled is a valid (indeed tight) lower bound; the
// vertical component is bounded the same way by via cost per layer
// crossed.
func heuristic(c, end gridmodel.Coord, opts Options) uint64 {
	if opts.UseDijkstra {
		return 0
	}
	lateral := math.Hypot(float64(end.X-c.X), float64(end.Y-c.Y))
	vertical := math.Abs(float64(end.Z - c.Z))
	h := lateral*opts.TraceCostMultiplier + vertical*opts.ViaCost*opts.TraceCostMultiplier
	return uint64(math.Round(h * CostScale))
}
