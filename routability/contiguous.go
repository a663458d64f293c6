package routability

import "github.com/katalvlaran/gridroute/gridmodel"

// LineWidthAtLeast2 reports whether the design-rule policy governing a
// (zone, subset) pair already gives its trace a 2-cell-or-wider footprint,
// in which case gap-filling between consecutive segments is unnecessary —
// the finder's own cells already cover it (SPEC_FULL.md §4.5 step 1).
type LineWidthAtLeast2 func(zone, subset int) bool

// BuildContiguous projects a path's (possibly gapped) segment sequence onto
// the set of cells its copper footprint actually occupies. Consecutive
// segments more than one lateral cell apart — a knight's-move path-finder
// step, or a manually inserted diff-pair anchor — get their intermediate
// lattice cells filled in by linear interpolation, unless wide2 reports the
// local line width already covers the gap. Layer-changing (via) steps are
// never interpolated.
//
// Complexity: O(len(path) * max step length); step length is bounded by a
// knight's move (2) for ordinary path-finder output and by the distance
// between adjacent flagged anchors for diff-pair output.
func BuildContiguous(p *gridmodel.Path, zoneOf func(gridmodel.Coord) int, subsetOf func(gridmodel.Coord) int, wide2 LineWidthAtLeast2) []gridmodel.Coord {
	segs := p.Segments
	if len(segs) == 0 {
		return nil
	}
	out := []gridmodel.Coord{segs[0].Coord}
	for i := 1; i < len(segs); i++ {
		from, to := segs[i-1].Coord, segs[i].Coord
		if from.Z != to.Z {
			out = append(out, to)
			continue
		}
		dx, dy := to.X-from.X, to.Y-from.Y
		steps := maxAbs(dx, dy)
		if steps <= 1 {
			out = append(out, to)
			continue
		}
		if wide2 != nil && wide2(zoneOf(from), subsetOf(from)) {
			out = append(out, to)
			continue
		}
		for s := 1; s <= steps; s++ {
			x := from.X + roundDiv(dx*s, steps)
			y := from.Y + roundDiv(dy*s, steps)
			out = append(out, gridmodel.Coord{X: x, Y: y, Z: from.Z})
		}
	}
	return dedupeCoords(out)
}

func maxAbs(a, b int) int {
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

// roundDiv computes round(num/den) with integer arithmetic; num and den may
// each be negative.
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

func dedupeCoords(coords []gridmodel.Coord) []gridmodel.Coord {
	if len(coords) == 0 {
		return coords
	}
	out := coords[:1]
	for _, c := range coords[1:] {
		if out[len(out)-1] == c {
			continue
		}
		out = append(out, c)
	}
	return out
}
