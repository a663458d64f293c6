package diffpair

import (
	"math"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// PairViaStacks matches each via stack on the pseudo centerline to a via
// site on one shoulder (SPEC_FULL.md §6.6 step 3):
//
//  1. the shoulder coordinate already generated at the stack's (x,y);
//  2. failing that, FindNearbyLayerTransition's three-tier layer-matching
//     search across the pseudo-path's own via stacks;
//  3. failing that, the nearest legal site on a radius-1, then radius-2,
//     Chebyshev ring around the naive offset;
//  4. the pseudo centerline's own via site, shared by both shoulders — a
//     "stitched" via: legal (the centerline was routed there) but worse
//     for shoulder-to-shoulder spacing, used only when every search tier
//     comes up empty.
func PairViaStacks(centerStacks []gridmodel.ViaStack, shoulder []gridmodel.Coord, legal func(gridmodel.Coord) bool) []gridmodel.Coord {
	out := make([]gridmodel.Coord, len(centerStacks))
	for i, vs := range centerStacks {
		candidate := shoulderAt(shoulder, vs)
		switch {
		case legal(candidate):
			out[i] = candidate
		default:
			if found, ok := FindNearbyLayerTransition(centerStacks, shoulder, vs.StartCoord.Z, vs.EndCoord.Z, vs.StartCoord, legal); ok {
				out[i] = found
			} else if found, ok := ringSearch(candidate, 1, legal); ok {
				out[i] = found
			} else if found, ok := ringSearch(candidate, 2, legal); ok {
				out[i] = found
			} else {
				out[i] = vs.StartCoord
			}
		}
	}
	return out
}

// FindNearbyLayerTransition searches stacks — the pseudo-path's own via
// stacks — for the shoulder site of the one nearest to near whose layers
// best match (startLayer, endLayer), escalating through three fallback
// tiers when no stack matches exactly. Grounded on
// original_source/processDiffPairs.c's findNearbyLayerTransition_wrapper,
// which this mirrors: a gap's layer-transition is first matched on both
// its start and end layer, then on start layer alone, then on end layer
// alone, since a diff-pair path's own layer changes do not always line up
// one-to-one with the pseudo-path's (pin-swap zones can shift a layer
// change by one segment between the two).
func FindNearbyLayerTransition(stacks []gridmodel.ViaStack, shoulder []gridmodel.Coord, startLayer, endLayer int, near gridmodel.Coord, legal func(gridmodel.Coord) bool) (gridmodel.Coord, bool) {
	tiers := []func(gridmodel.ViaStack) bool{
		func(vs gridmodel.ViaStack) bool { return vs.StartCoord.Z == startLayer && vs.EndCoord.Z == endLayer },
		func(vs gridmodel.ViaStack) bool { return vs.StartCoord.Z == startLayer },
		func(vs gridmodel.ViaStack) bool { return vs.EndCoord.Z == endLayer },
	}
	for _, match := range tiers {
		if c, ok := nearestLegalMatch(stacks, shoulder, near, match, legal); ok {
			return c, true
		}
	}
	return gridmodel.Coord{}, false
}

func nearestLegalMatch(stacks []gridmodel.ViaStack, shoulder []gridmodel.Coord, near gridmodel.Coord, match func(gridmodel.ViaStack) bool, legal func(gridmodel.Coord) bool) (gridmodel.Coord, bool) {
	best := gridmodel.Coord{}
	bestDistSq := math.MaxFloat64
	found := false
	for _, vs := range stacks {
		if !match(vs) {
			continue
		}
		c := shoulderAt(shoulder, vs)
		if !legal(c) {
			continue
		}
		dx := float64(c.X - near.X)
		dy := float64(c.Y - near.Y)
		d := dx*dx + dy*dy
		if d < bestDistSq {
			bestDistSq = d
			best = c
			found = true
		}
	}
	return best, found
}

// shoulderAt returns the shoulder coordinate generated for the stack's
// first vertex (centerline index StartSegment+1), or the stack's own start
// coordinate when the shoulder has no entry at that index.
func shoulderAt(shoulder []gridmodel.Coord, vs gridmodel.ViaStack) gridmodel.Coord {
	i := vs.StartSegment + 1
	if i >= 0 && i < len(shoulder) {
		return shoulder[i]
	}
	return vs.StartCoord
}

// ringSearch scans the square ring of the given Chebyshev radius around
// center for the first legal site.
func ringSearch(center gridmodel.Coord, radius int, legal func(gridmodel.Coord) bool) (gridmodel.Coord, bool) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if maxAbsInt(dx, dy) != radius {
				continue
			}
			c := gridmodel.Coord{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if legal(c) {
				return c, true
			}
		}
	}
	return gridmodel.Coord{}, false
}

func maxAbsInt(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
