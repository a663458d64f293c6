package routability

import (
	"context"
	"math"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/gridrouteerr"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// EvaluateOptions configures one Evaluate call.
type EvaluateOptions struct {
	// AddCongestion, when true, deposits congestion around every path's
	// contiguous footprint and terminals after the DRC scan (SPEC_FULL.md
	// §6.7 step 4: only the main routing pass does this; a diff-pair dry
	// run does not).
	AddCongestion bool

	// Parallel fans the per-layer scan out across goroutines, one per
	// layer, via golang.org/x/sync/errgroup — SPEC_FULL.md §7's "shared
	// writable state is confined to the single thread that owns the
	// current (y,x,z)" holds because distinct layers never address the
	// same cell.
	Parallel bool

	// Wide2 reports whether a (zone,subset) pair's line width already
	// covers a 2-cell gap; nil disables the optimization (always fill).
	Wide2 LineWidthAtLeast2
}

// Evaluate runs the routability pass over every routed path: build each
// path's contiguous footprint and mark its centerline cells, scan every
// layer for design-rule violations, update the crossing matrix and DRC
// counts, and optionally deposit congestion. paths must be keyed by PathID
// and contain every currently routed net, pseudo-nets included — DRC
// exemptions between a pseudo-net and its own diff-pair members are
// resolved via registry.
func Evaluate(grid *gridmodel.Grid, drm *designrule.Matrix, registry *gridmodel.NetRegistry, paths map[int]*gridmodel.Path, metrics *RoutingMetrics, opts EvaluateOptions) error {
	contiguous := make(map[int][]gridmodel.Coord, len(paths))
	for id, p := range paths {
		n, ok := registry.Get(id)
		if !ok {
			return ErrUnknownPath
		}
		cs := BuildContiguous(p, grid.DesignRuleZone, func(gridmodel.Coord) int { return n.BaseSubset }, opts.Wide2)
		contiguous[id] = cs
		if err := markCenterlines(grid, id, cs); err != nil {
			return err
		}
	}

	if opts.Parallel {
		g, _ := errgroup.WithContext(context.Background())
		for z := 0; z < grid.Layers; z++ {
			z := z
			g.Go(func() error {
				return scanLayer(grid, drm, registry, z, metrics)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for z := 0; z < grid.Layers; z++ {
			if err := scanLayer(grid, drm, registry, z, metrics); err != nil {
				return err
			}
		}
	}

	if opts.AddCongestion {
		depositAll(grid, drm, registry, contiguous)
	}

	return nil
}

func markCenterlines(grid *gridmodel.Grid, pathID int, coords []gridmodel.Coord) error {
	if len(coords) == 0 {
		return nil
	}
	if err := grid.At(coords[0]).AddPathCenter(pathID, gridmodel.Trace); err != nil {
		gridrouteerr.Raise("MaxTraversingShapes exceeded", pathID, coords[0])
	}
	for i := 1; i < len(coords); i++ {
		shape := gridmodel.Trace
		switch dz := coords[i].Z - coords[i-1].Z; {
		case dz > 0:
			shape = gridmodel.ViaUp
		case dz < 0:
			shape = gridmodel.ViaDown
		}
		if err := grid.At(coords[i]).AddPathCenter(pathID, shape); err != nil {
			gridrouteerr.Raise("MaxTraversingShapes exceeded", pathID, coords[i])
		}
		grid.At(coords[i]).NearANet = true
		grid.At(coords[i-1]).NearANet = true
	}
	return nil
}

// scanLayer scans one layer's cells for DRC-cell violations among the path
// centerlines marked on it. Each unordered (cell, PathCenter) pair is
// visited exactly once: same-cell pairs via the inner j>i loop, cross-cell
// pairs by only following neighbors with a strictly greater flat index.
//
// Complexity: O(Width*Height*window^2) where window is the ceiling of the
// largest congestion radius present among the layer's zones — bounded by
// design-rule spacing values, not by grid size.
func scanLayer(grid *gridmodel.Grid, drm *designrule.Matrix, registry *gridmodel.NetRegistry, z int, metrics *RoutingMetrics) error {
	zoneSet := map[int]struct{}{}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			zoneSet[grid.DesignRuleZone(gridmodel.Coord{X: x, Y: y, Z: z})] = struct{}{}
		}
	}
	zones := lo.Keys(zoneSet)
	window := int(math.Ceil(drm.MaxInteractionRadiusOnLayer(zones))) + 1

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := gridmodel.Coord{X: x, Y: y, Z: z}
			cell := grid.At(c)
			if len(cell.PathCenters) == 0 {
				continue
			}
			for i, pcA := range cell.PathCenters {
				for j := i + 1; j < len(cell.PathCenters); j++ {
					considerPair(grid, drm, registry, metrics, z, pcA, c, cell.PathCenters[j], c)
				}
				for dy := -window; dy <= window; dy++ {
					for dx := -window; dx <= window; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nc := gridmodel.Coord{X: x + dx, Y: y + dy, Z: z}
						if !grid.InBounds(nc) || grid.Index(nc.X, nc.Y, nc.Z) <= grid.Index(x, y, z) {
							continue
						}
						other := grid.At(nc)
						for _, pcB := range other.PathCenters {
							considerPair(grid, drm, registry, metrics, z, pcA, c, pcB, nc)
						}
					}
				}
			}
		}
	}
	return nil
}

func considerPair(grid *gridmodel.Grid, drm *designrule.Matrix, registry *gridmodel.NetRegistry, metrics *RoutingMetrics, z int,
	pcA gridmodel.PathCenter, cA gridmodel.Coord, pcB gridmodel.PathCenter, cB gridmodel.Coord) {
	if exempt(registry, pcA.PathID, pcB.PathID) {
		return
	}
	nA, okA := registry.Get(pcA.PathID)
	nB, okB := registry.Get(pcB.PathID)
	if !okA || !okB {
		return
	}

	zoneA := grid.DesignRuleZone(cA)
	zoneB := grid.DesignRuleZone(cB)
	homeA := grid.DesignRuleZone(nA.Start)
	homeB := grid.DesignRuleZone(nB.Start)
	subA := drm.SubsetFor(homeA, nA.BaseSubset, pcA.Shape, zoneA)
	subB := drm.SubsetFor(homeB, nB.BaseSubset, pcB.Shape, zoneB)

	dx := float64(cA.X - cB.X)
	dy := float64(cA.Y - cB.Y)
	distSq := dx*dx + dy*dy

	rSq := drm.DRCRadiusSquared(zoneA, subA, pcA.Shape, zoneB, subB, pcB.Shape)
	if distSq > rSq {
		return
	}

	category := categorize(pcA.Shape, pcB.Shape)
	metrics.DRCCountByPath[pcA.PathID]++
	metrics.DRCCountByPath[pcB.PathID]++
	metrics.DRCCountByLayer[z]++
	metrics.DRCCountByCategory[category]++
	metrics.recordCrossing(pcA.PathID, pcB.PathID)
	if metrics.maxRecorded <= 0 || len(metrics.Violations) < metrics.maxRecorded {
		metrics.Violations = append(metrics.Violations, DRCViolation{CellA: cA, CellB: cB, PathA: pcA.PathID, PathB: pcB.PathID, Category: category})
	}

	grid.At(cA).DRCFlag = true
	grid.At(cB).DRCFlag = true
	if pcA.Shape != gridmodel.Trace {
		grid.At(cA).ViaAboveDRCFlag = true
	}
	if pcB.Shape != gridmodel.Trace {
		grid.At(cB).ViaAboveDRCFlag = true
	}
	congestion.AddCongestion(grid, cA, pcA.PathID, subA, pcA.Shape, congestion.DRCBonus)
	congestion.AddCongestion(grid, cB, pcB.PathID, subB, pcB.Shape, congestion.DRCBonus)
}

func categorize(a, b gridmodel.ShapeType) DRCCategory {
	aVia := a != gridmodel.Trace
	bVia := b != gridmodel.Trace
	switch {
	case aVia && bVia:
		return DRCViaVia
	case !aVia && !bVia:
		return DRCTraceTrace
	default:
		return DRCTraceVia
	}
}

// exempt reports whether a DRC between pathA and pathB must be ignored: a
// net never conflicts with itself, nor with the pseudo-net whose shoulders
// it is (SPEC_FULL.md §4.5 step 2). The two real nets of one diff pair are
// not exempt from each other.
func exempt(registry *gridmodel.NetRegistry, pathA, pathB int) bool {
	if pathA == pathB {
		return true
	}
	if n1, n2, ok := registry.DiffPairOf(pathA); ok && (n1 == pathB || n2 == pathB) {
		return true
	}
	if n1, n2, ok := registry.DiffPairOf(pathB); ok && (n1 == pathA || n2 == pathA) {
		return true
	}
	return false
}

func depositAll(grid *gridmodel.Grid, drm *designrule.Matrix, registry *gridmodel.NetRegistry, contiguous map[int][]gridmodel.Coord) {
	activeByZone := activeForeignByZone(grid, registry)

	for pathID, coords := range contiguous {
		n, ok := registry.Get(pathID)
		if !ok || len(coords) == 0 {
			continue
		}
		homeZone := grid.DesignRuleZone(n.Start)

		for i, c := range coords {
			shape := gridmodel.Trace
			if i > 0 {
				switch dz := c.Z - coords[i-1].Z; {
				case dz > 0:
					shape = gridmodel.ViaUp
				case dz < 0:
					shape = gridmodel.ViaDown
				}
			}
			zone := grid.DesignRuleZone(c)
			subset := drm.SubsetFor(homeZone, n.BaseSubset, shape, zone)
			congestion.DepositAroundSegment(grid, drm, pathID, zone, subset, shape, c, activeByZone[zone], congestion.OneTraversal)
		}

		startZone := grid.DesignRuleZone(n.Start)
		endZone := grid.DesignRuleZone(n.End)
		congestion.DepositAroundTerminal(grid, drm, pathID, startZone, n.BaseSubset, gridmodel.Trace, n.Start, activeByZone[startZone])
		congestion.DepositAroundTerminal(grid, drm, pathID, endZone, n.BaseSubset, gridmodel.Trace, n.End, activeByZone[endZone])
	}
}

// activeForeignByZone enumerates, per zone, every (subset,shape) any
// registered net might present there — the "foreign" set DepositAroundSegment
// sums interaction radii over.
func activeForeignByZone(grid *gridmodel.Grid, registry *gridmodel.NetRegistry) map[int][]congestion.ForeignShape {
	seen := map[int]map[congestion.ForeignShape]bool{}
	for _, n := range registry.All() {
		zone := grid.DesignRuleZone(n.Start)
		if seen[zone] == nil {
			seen[zone] = map[congestion.ForeignShape]bool{}
		}
		for shape := gridmodel.ShapeType(0); int(shape) < gridmodel.NumShapeTypes; shape++ {
			seen[zone][congestion.ForeignShape{Zone: zone, Subset: n.BaseSubset, Shape: shape}] = true
		}
	}
	out := make(map[int][]congestion.ForeignShape, len(seen))
	for zone, set := range seen {
		out[zone] = lo.Keys(set)
	}
	return out
}
