package diffpair

import (
	"math"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// bearing returns the unit direction vector from a to b, or (0,0) if a==b
// (laterally — a pure layer change has no lateral bearing).
func bearing(a, b gridmodel.Coord) (float64, float64) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return 0, 0
	}
	return dx / n, dy / n
}

// smoothedNormal returns the unit normal (the incoming/outgoing bearing
// average, rotated +90°) at vertex i of a centerline, grounded on
// original_source/createDiffPairs.h's bearing-smoothing approach: a
// shoulder offset computed from a single adjacent segment kinks sharply at
// a turn, where the average of both neighboring bearings keeps the two
// shoulders roughly parallel through the bend.
func smoothedNormal(centers []gridmodel.Coord, i int) (float64, float64) {
	var inX, inY, outX, outY float64
	if i > 0 {
		inX, inY = bearing(centers[i-1], centers[i])
	}
	if i < len(centers)-1 {
		outX, outY = bearing(centers[i], centers[i+1])
	}
	bx, by := inX+outX, inY+outY
	n := math.Hypot(bx, by)
	if n == 0 {
		return 0, 0
	}
	return -by / n, bx / n // rotate +90 degrees
}

// DefaultMaxBearingDeltaRad is maxBearingDeltaRad's out-of-the-box value:
// unbounded, matching the original router's implicit behavior of never
// clamping the per-vertex normal rotation (SPEC_FULL.md §6.6
// "defaulting to the original's implicit behavior").
const DefaultMaxBearingDeltaRad = math.Pi

// clampTurn limits how far the normal at angle raw may rotate from the
// previous accepted normal at angle prev, to at most maxDeltaRad in either
// direction — the "previous bearing" smoothing term of
// original_source/createDiffPairs.h: re-deriving the perpendicular from the
// raw tangent alone lets a sharp turn jump the shoulder pitch
// discontinuously; clamping the rotation keeps successive shoulder offsets
// continuous through the bend.
func clampTurn(prev, raw, maxDeltaRad float64) float64 {
	delta := raw - prev
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if delta > maxDeltaRad {
		delta = maxDeltaRad
	} else if delta < -maxDeltaRad {
		delta = -maxDeltaRad
	}
	return prev + delta
}

// GenerateShoulders offsets a routed pseudo-net centerline by ±pitch/2
// along its smoothed normal at every vertex, producing the diff pair's two
// shoulder coordinate sequences (SPEC_FULL.md §6.6 step 2). A vertex whose
// neighbors are both on a different layer (a lone via vertex with no
// lateral bearing at all) reuses the preceding vertex's accepted normal,
// since a via's shoulder offset must still land somewhere definite.
// maxBearingDeltaRad clamps how far the normal may rotate from the previous
// vertex's accepted normal per step; pass DefaultMaxBearingDeltaRad for the
// original router's unclamped behavior.
func GenerateShoulders(centerline []gridmodel.Coord, pitchCells, maxBearingDeltaRad float64) (p, n []gridmodel.Coord) {
	half := pitchCells / 2
	p = make([]gridmodel.Coord, len(centerline))
	n = make([]gridmodel.Coord, len(centerline))

	lastAngle := 0.0
	haveLast := false
	for i, c := range centerline {
		nx, ny := smoothedNormal(centerline, i)
		var angle float64
		switch {
		case nx == 0 && ny == 0 && haveLast:
			angle = lastAngle
		case nx == 0 && ny == 0:
			angle = 0
		case !haveLast:
			angle = math.Atan2(ny, nx)
		default:
			angle = clampTurn(lastAngle, math.Atan2(ny, nx), maxBearingDeltaRad)
		}
		lastAngle, haveLast = angle, true

		ax, ay := math.Cos(angle), math.Sin(angle)
		p[i] = gridmodel.Coord{X: c.X + roundToInt(ax*half), Y: c.Y + roundToInt(ay*half), Z: c.Z}
		n[i] = gridmodel.Coord{X: c.X - roundToInt(ax*half), Y: c.Y - roundToInt(ay*half), Z: c.Z}
	}
	return p, n
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
