package diffpair

import (
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
)

// Synthesize expands a routed pseudo-net centerline into the diff pair's
// two real-net shoulder paths, running the full pipeline of SPEC_FULL.md
// §6.6: shoulder generation, via-stack pairing, pruning near vias/
// terminals/zone boundaries, gap-filling, and per-subsection connection
// optimization. The caller makes the final global P/N swap decision
// (SwapGlobalPN) once both candidate assignments' costs are known — that
// decision spans both pseudo-nets in a connector's full diff-pair set and
// does not belong inside a single pair's synthesis.
func Synthesize(grid *gridmodel.Grid, drm *designrule.Matrix, scratchP, scratchN *pathfinder.Scratch, pseudo *gridmodel.Path, netP, netN gridmodel.NetInfo, opts Options, pfOpts pathfinder.Options) (Result, error) {
	centerline := pseudo.Coords()
	if len(centerline) == 0 {
		return Result{}, ErrEmptyCenterline
	}

	shoulderP, shoulderN := GenerateShoulders(centerline, opts.PitchCells, opts.MaxBearingDeltaRad)
	stacks := gridmodel.FindViaStacks(pseudo)

	legal := func(c gridmodel.Coord) bool {
		return !grid.IsOutsideMap(c) && !grid.IsInsideBarrierForShape(c, gridmodel.Trace)
	}
	viaP := PairViaStacks(stacks, shoulderP, legal)
	viaN := PairViaStacks(stacks, shoulderN, legal)
	for i, vs := range stacks {
		if vs.StartSegment >= 0 && vs.StartSegment < len(shoulderP) {
			shoulderP[vs.StartSegment] = viaP[i]
			shoulderN[vs.StartSegment] = viaN[i]
		}
	}

	keepouts := buildKeepouts(grid, centerline, stacks, netP, netN)
	radii := Radii{Via: opts.PruneViaRadius, Terminal: opts.PruneTerminalRadius, ZoneBoundary: opts.PruneZoneBoundaryRadius}
	exempt := make(map[gridmodel.Coord]bool, len(viaP)+len(viaN))
	for _, c := range viaP {
		exempt[c] = true
	}
	for _, c := range viaN {
		exempt[c] = true
	}

	prunedP := PruneNear(shoulderP, keepouts, radii, opts.MinIslandLen, exempt)
	prunedN := PruneNear(shoulderN, keepouts, radii, opts.MinIslandLen, exempt)

	filledP, err := refill(grid, drm, scratchP, prunedP, netP.PathID, opts, pfOpts)
	if err != nil {
		return Result{}, err
	}
	filledN, err := refill(grid, drm, scratchN, prunedN, netN.PathID, opts, pfOpts)
	if err != nil {
		return Result{}, err
	}

	pathP := &gridmodel.Path{PathID: netP.PathID, Segments: toSegments(filledP)}
	pathN := &gridmodel.Path{PathID: netN.PathID, Segments: toSegments(filledN)}
	pathP.DedupeAdjacent()
	pathN.DedupeAdjacent()

	OptimizeConnections(grid, drm, scratchP, pathP, opts.SubMapMargin, pfOpts)
	OptimizeConnections(grid, drm, scratchN, pathN, opts.SubMapMargin, pfOpts)

	return Result{PathP: pathP, PathN: pathN}, nil
}

// buildKeepouts assembles the full pruning exclusion set for one pseudo-net
// (SPEC_FULL.md §6.6 step 4): each via stack's two ends (KeepoutVia,
// bearing taken from the centerline's local direction at that vertex),
// both nets' terminals (KeepoutTerminal), and every design-rule zone
// boundary crossing along the centerline (KeepoutZoneBoundary, bearing
// taken from the crossing segment's own direction).
func buildKeepouts(grid *gridmodel.Grid, centerline []gridmodel.Coord, stacks []gridmodel.ViaStack, netP, netN gridmodel.NetInfo) []Keepout {
	out := make([]Keepout, 0, len(stacks)*2+4+len(centerline))
	for _, vs := range stacks {
		bx, by := localBearing(centerline, vs.StartSegment)
		out = append(out, Keepout{Coord: vs.StartCoord, Kind: KeepoutVia, BearingX: bx, BearingY: by})
		bx, by = localBearing(centerline, vs.EndSegment)
		out = append(out, Keepout{Coord: vs.EndCoord, Kind: KeepoutVia, BearingX: bx, BearingY: by})
	}
	for _, term := range []gridmodel.Coord{netP.Start, netP.End, netN.Start, netN.End} {
		out = append(out, Keepout{Coord: term, Kind: KeepoutTerminal})
	}
	for i := 1; i < len(centerline); i++ {
		prev, cur := centerline[i-1], centerline[i]
		if grid.DesignRuleZone(prev) == grid.DesignRuleZone(cur) {
			continue
		}
		bx, by := bearing(prev, cur)
		out = append(out, Keepout{Coord: cur, Kind: KeepoutZoneBoundary, BearingX: bx, BearingY: by})
	}
	return out
}

// localBearing returns the unit bearing of the centerline segment arriving
// at index i (the first segment's bearing when i is 0), with i clamped
// into range — the tangent direction a via
// stack sits across, used to scale its keepout radius by approach angle.
func localBearing(centerline []gridmodel.Coord, i int) (float64, float64) {
	if i < 0 {
		i = 0
	}
	if i >= len(centerline) {
		i = len(centerline) - 1
	}
	switch {
	case i > 0:
		return bearing(centerline[i-1], centerline[i])
	case len(centerline) > 1:
		return bearing(centerline[0], centerline[1])
	default:
		return 0, 0
	}
}

// refill closes every gap PruneNear left behind in a shoulder's coordinate
// run, via FillGap.
func refill(grid *gridmodel.Grid, drm *designrule.Matrix, scratch *pathfinder.Scratch, coords []gridmodel.Coord, pathID int, opts Options, pfOpts pathfinder.Options) ([]gridmodel.Coord, error) {
	if len(coords) == 0 {
		return coords, nil
	}
	out := []gridmodel.Coord{coords[0]}
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		if adjacent(prev, cur) {
			out = append(out, cur)
			continue
		}
		gap, err := FillGap(grid, drm, scratch, prev, cur, pathID, opts.GapFillClosedFormMaxSquared, pfOpts)
		if err != nil {
			return nil, err
		}
		out = append(out, gap[1:]...)
	}
	return out, nil
}

func adjacent(a, b gridmodel.Coord) bool {
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	return maxAbsInt(a.X-b.X, a.Y-b.Y) <= 1 && dz <= 1
}

func toSegments(coords []gridmodel.Coord) []gridmodel.Segment {
	out := make([]gridmodel.Segment, len(coords))
	for i, c := range coords {
		out[i] = gridmodel.Segment{Coord: c}
	}
	return out
}
