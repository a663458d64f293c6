package congestion

import (
	"math"

	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
)

const (
	// OneTraversal is the ×100-scaled congestion delta representing one
	// full traversal of a cell by a net's centerline.
	OneTraversal uint32 = 100

	// RadiusSlackCells is the "+1 cell" anti-rounding margin SPEC_FULL.md
	// §9 calls out as an arbitrary safety margin the original router
	// applies when turning a continuous congestion radius into a discrete
	// cell scan. Kept as a named, tunable constant rather than inlined.
	RadiusSlackCells = 1.0

	// DRCBonusFraction is the fraction of OneTraversal deposited, at the
	// DRC cell itself, every time a design-rule violation is found there
	// (SPEC_FULL.md §4.5 step 7) — a small nudge to steer the next
	// iteration's search away from cells that are already in conflict.
	DRCBonusFraction = 0.1
)

// DRCBonus is round(OneTraversal * DRCBonusFraction), the fixed congestion
// dose considerPair deposits on each cell of a detected DRC.
var DRCBonus = uint32(math.Round(float64(OneTraversal) * DRCBonusFraction))

// ForeignShape identifies one (zone, subset, shape) a foreign net might
// occupy, used to enumerate which interaction radii to deposit under.
type ForeignShape struct {
	Zone   int
	Subset int
	Shape  gridmodel.ShapeType
}

// AddCongestion increments the (pathID, subset, shape) accumulator at c by
// delta, saturating per gridmodel.Cell.AddCongestion. This is the
// spec-named add_congestion primitive.
func AddCongestion(grid *gridmodel.Grid, c gridmodel.Coord, pathID, subset int, shape gridmodel.ShapeType, delta uint32) {
	grid.At(c).AddCongestion(pathID, subset, shape, delta)
}

// DepositAroundSegment deposits congestion around one centerline cell,
// for every foreign (zone,subset,shape) combination actually in use on this
// layer, per SPEC_FULL.md §4.2: the radius is
// cong_radius[own][foreign] + RadiusSlackCells, and the deposited amount
// decays linearly from delta at the center to delta/2 at the radius.
//
// Complexity: O(len(activeForeign) * radius^2) per segment — bounded by the
// largest congestion radius on the layer, which is itself bounded by
// design-rule spacing values (small relative to the grid).
func DepositAroundSegment(grid *gridmodel.Grid, drm *designrule.Matrix, pathID int, homeZone, ownSubset int, shape gridmodel.ShapeType, center gridmodel.Coord, activeForeign []ForeignShape, delta uint32) {
	for _, f := range activeForeign {
		radius := drm.CongRadius(homeZone, ownSubset, shape, f.Zone, f.Subset, f.Shape) + RadiusSlackCells
		depositDisk(grid, pathID, ownSubset, shape, center, radius, delta)
	}
}

// DepositAroundTerminal deposits a fixed one-traversal congestion dose
// around a net's terminal cell, using the same interaction radii as
// DepositAroundSegment, to repel other nets from crowding pad locations
// (SPEC_FULL.md §4.2 "Around a terminal").
func DepositAroundTerminal(grid *gridmodel.Grid, drm *designrule.Matrix, pathID int, homeZone, ownSubset int, shape gridmodel.ShapeType, terminal gridmodel.Coord, activeForeign []ForeignShape) {
	DepositAroundSegment(grid, drm, pathID, homeZone, ownSubset, shape, terminal, activeForeign, OneTraversal)
}

// depositDisk deposits delta (at center, decaying to delta/2 at radius)
// into every in-bounds, same-layer cell within radius of center.
func depositDisk(grid *gridmodel.Grid, pathID, subset int, shape gridmodel.ShapeType, center gridmodel.Coord, radius float64, delta uint32) {
	if radius <= 0 {
		grid.At(center).AddCongestion(pathID, subset, shape, delta)
		return
	}
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			if d > radius {
				continue
			}
			c := gridmodel.Coord{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if !grid.InBounds(c) {
				continue
			}
			frac := 1.0 - 0.5*(d/radius)
			amount := uint32(math.Round(float64(delta) * frac))
			if amount == 0 {
				continue
			}
			grid.At(c).AddCongestion(pathID, subset, shape, amount)
		}
	}
}

// ReadCongestion sums every congestion entry at c, whatever its subset and
// shape, honoring the self-vs-others policy: if
// includeSelf is false, the requesting path's own prior congestion at c is
// excluded (encouraging exploration); if true, it is included (encouraging
// reuse of the path's previous route).
func ReadCongestion(grid *gridmodel.Grid, c gridmodel.Coord, requestingPathID int, includeSelf bool) uint64 {
	var total uint64
	for _, e := range grid.At(c).Congestion {
		if !includeSelf && e.PathID == requestingPathID {
			continue
		}
		total += uint64(e.Traversals)
	}
	return total
}
