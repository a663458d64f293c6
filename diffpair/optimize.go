package diffpair

import (
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
)

// OptimizeConnections searches each shoulder subsection — the run between
// two consecutive via stacks, or between a terminal and the nearest via —
// for a cheaper re-route confined to a bounding box padded by marginCells,
// grounded on original_source/optimizeDiffPairs.h's per-subsection
// bounding-box margin (SPEC_FULL.md §6.6 step 6). Each subsection is tried
// with its two endpoints assigned both as-is and swapped (spec.md §4.6
// step 5: "invoke the Path-Finder twice... once with the two shoulder
// endpoints assigned as-is, once with them swapped"); the cheaper result
// that also carries no already-flagged DRC cell replaces the subsection,
// and a candidate with a DRC cell is discarded even if cheaper.
func OptimizeConnections(grid *gridmodel.Grid, drm *designrule.Matrix, scratch *pathfinder.Scratch, path *gridmodel.Path, marginCells int, opts pathfinder.Options) {
	coords := path.Coords()
	if len(coords) < 2 {
		return
	}
	stacks := gridmodel.FindViaStacks(path)
	for _, b := range subsectionBounds(coords, stacks) {
		if b.endIdx <= b.startIdx {
			continue
		}
		from, to := coords[b.startIdx], coords[b.endIdx]
		restricted := opts
		restricted.Restriction = boundingBoxRestriction(grid, coords[b.startIdx:b.endIdx+1], marginCells)

		forward, fwdOK := tryAssignment(grid, drm, scratch, from, to, path.PathID, restricted, false)
		swapped, swapOK := tryAssignment(grid, drm, scratch, to, from, path.PathID, restricted, true)

		best, ok := cheaperAssignment(forward, fwdOK, swapped, swapOK)
		if !ok {
			continue
		}
		if path.Cost == 0 || best.Cost < path.Cost {
			replaceSubsection(path, b.startIdx, b.endIdx, best.Segments)
			coords = path.Coords()
		}
	}
	path.DedupeAdjacent()
}

// subsectionCandidate is one of the two endpoint-assignment results
// OptimizeConnections compares for a given subsection.
type subsectionCandidate struct {
	Cost     uint64
	Segments []gridmodel.Segment
}

// tryAssignment runs FindPath for one endpoint assignment and rejects it if
// the search failed or any cell along the result already carries a DRC
// flag from the current iteration's routability scan — an intra-pair DRC
// (spec.md §4.6 step 5: "no intra-pair DRCs"). reversed un-reverses the
// result's segment order back to from-then-to's original direction so the
// subsection can be spliced back into the path unchanged.
func tryAssignment(grid *gridmodel.Grid, drm *designrule.Matrix, scratch *pathfinder.Scratch, from, to gridmodel.Coord, pathID int, opts pathfinder.Options, reversed bool) (subsectionCandidate, bool) {
	res, err := pathfinder.FindPath(grid, drm, scratch, from, to, pathID, opts)
	if err != nil || !res.Found {
		return subsectionCandidate{}, false
	}
	segs := res.Path.Segments
	if reversed {
		segs = reverseSegments(segs)
	}
	if hasFlaggedDRC(grid, segs) {
		return subsectionCandidate{}, false
	}
	return subsectionCandidate{Cost: res.Cost, Segments: segs}, true
}

func cheaperAssignment(a subsectionCandidate, aOK bool, b subsectionCandidate, bOK bool) (subsectionCandidate, bool) {
	switch {
	case aOK && bOK:
		if b.Cost < a.Cost {
			return b, true
		}
		return a, true
	case aOK:
		return a, true
	case bOK:
		return b, true
	default:
		return subsectionCandidate{}, false
	}
}

func reverseSegments(segs []gridmodel.Segment) []gridmodel.Segment {
	out := make([]gridmodel.Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = s
	}
	return out
}

func hasFlaggedDRC(grid *gridmodel.Grid, segs []gridmodel.Segment) bool {
	for _, s := range segs {
		if grid.At(s.Coord).DRCFlag {
			return true
		}
	}
	return false
}

type subsection struct {
	startIdx, endIdx int
}

func subsectionBounds(coords []gridmodel.Coord, stacks []gridmodel.ViaStack) []subsection {
	if len(stacks) == 0 {
		return []subsection{{0, len(coords) - 1}}
	}
	out := make([]subsection, 0, len(stacks)+1)
	prev := 0
	for _, vs := range stacks {
		start := vs.StartSegment
		if start < 0 {
			start = 0
		}
		if start > prev {
			out = append(out, subsection{prev, start})
		}
		prev = vs.EndSegment
	}
	if prev < len(coords)-1 {
		out = append(out, subsection{prev, len(coords) - 1})
	}
	return out
}

func boundingBoxRestriction(grid *gridmodel.Grid, seg []gridmodel.Coord, margin int) *gridmodel.RoutingRestriction {
	minX, minY, maxX, maxY := seg[0].X, seg[0].Y, seg[0].X, seg[0].Y
	for _, c := range seg {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	halfSpan := float64(maxAbsInt(maxX-minX, maxY-minY))/2 + float64(margin)
	return &gridmodel.RoutingRestriction{
		Enabled:            true,
		CenterX:            cx,
		CenterY:            cy,
		AllowedLayers:      allLayers(grid.Layers),
		AllowedRadiusCells: uniformRadius(grid.Layers, halfSpan),
	}
}

func replaceSubsection(path *gridmodel.Path, startIdx, endIdx int, newSegs []gridmodel.Segment) {
	merged := append([]gridmodel.Segment(nil), path.Segments[:startIdx]...)
	merged = append(merged, newSegs...)
	merged = append(merged, path.Segments[endIdx+1:]...)
	path.Segments = merged
}

// SwapGlobalPN reports whether the swapped P/N terminal assignment
// (costSwapped, the combined cost of routing P's shoulder to N's terminals
// and vice versa) is strictly cheaper than the original pairing's combined
// cost — SPEC_FULL.md §6.6 step 6's global swap search. A per-subsection
// partial swap is not implemented; see DESIGN.md.
func SwapGlobalPN(costOriginal, costSwapped uint64) bool {
	return costSwapped < costOriginal
}
