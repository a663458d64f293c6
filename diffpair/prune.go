package diffpair

import (
	"math"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// KeepoutKind classifies a pruning exclusion center — each kind carries its
// own radius (SPEC_FULL.md §6.6 step 4: "pseudo-via/terminal/zone-boundary/
// partial-via-stack radii").
type KeepoutKind int

const (
	KeepoutVia KeepoutKind = iota
	KeepoutTerminal
	KeepoutZoneBoundary
)

// Keepout is one shoulder-pruning exclusion center, carrying the bearing
// the centerline was traveling there so PruneNear can scale its radius by
// the angle between that bearing and the direction to a candidate cell.
type Keepout struct {
	Coord              gridmodel.Coord
	Kind               KeepoutKind
	BearingX, BearingY float64
}

// Radii bundles the three kind-specific prune radii PruneNear reads.
type Radii struct {
	Via, Terminal, ZoneBoundary float64
}

// PruneNear removes every non-exempt shoulder coordinate within its
// keepout's kind-specific radius, scaled by the cosine of the angle
// between the keepout's recorded bearing and the direction from the
// keepout to the candidate cell: a cell directly ahead of or behind the
// keepout is excluded at the full radius, one directly to the side at half
// — an angle-scaled exclusion grounded on
// original_source/pruneDiffPairs.c's per-shape-type cong_radius weighting.
// Surviving runs shorter than minIslandLen are closed entirely rather than
// left as a disconnected island too short to gap-fill productively on both
// sides; this also covers pruneDiffPairs.c's "pruned-island" closure of a
// lone surviving segment sandwiched between two pruned runs, since any
// minIslandLen >= 2 already closes a length-1 survivor. exempt marks
// shoulder coordinates — via sites PairViaStacks already committed to —
// that must never be pruned regardless of proximity, so a partially
// pruned via stack never loses the one site it actually needs.
func PruneNear(shoulder []gridmodel.Coord, keepouts []Keepout, radii Radii, minIslandLen int, exempt map[gridmodel.Coord]bool) []gridmodel.Coord {
	keep := make([]bool, len(shoulder))
	for i, c := range shoulder {
		keep[i] = exempt[c] || !nearAnyKeepout(c, keepouts, radii)
	}
	closeSmallIslands(keep, minIslandLen)
	for i, c := range shoulder {
		if exempt[c] {
			keep[i] = true
		}
	}

	out := make([]gridmodel.Coord, 0, len(shoulder))
	for i, c := range shoulder {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}

func radiusFor(k Keepout, radii Radii) float64 {
	switch k.Kind {
	case KeepoutTerminal:
		return radii.Terminal
	case KeepoutZoneBoundary:
		return radii.ZoneBoundary
	default:
		return radii.Via
	}
}

func nearAnyKeepout(c gridmodel.Coord, keepouts []Keepout, radii Radii) bool {
	for _, k := range keepouts {
		if k.Coord.Z != c.Z {
			continue
		}
		dx := float64(c.X - k.Coord.X)
		dy := float64(c.Y - k.Coord.Y)
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			return true
		}
		r := radiusFor(k, radii)
		if r <= 0 {
			continue
		}
		cosTheta := 1.0
		bn := math.Hypot(k.BearingX, k.BearingY)
		if bn > 0 {
			cosTheta = (dx*k.BearingX + dy*k.BearingY) / (dist * bn)
		}
		if dist <= r*(0.5+0.5*math.Abs(cosTheta)) {
			return true
		}
	}
	return false
}

// closeSmallIslands flips every maximal run of keep==true shorter than
// minIslandLen back to false.
func closeSmallIslands(keep []bool, minIslandLen int) {
	i := 0
	for i < len(keep) {
		if !keep[i] {
			i++
			continue
		}
		j := i
		for j < len(keep) && keep[j] {
			j++
		}
		if j-i < minIslandLen {
			for k := i; k < j; k++ {
				keep[k] = false
			}
		}
		i = j
	}
}
