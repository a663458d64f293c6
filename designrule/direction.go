package designrule

import "github.com/katalvlaran/gridroute/gridmodel"

// RouteDirection is a bitmask of the lateral/vertical directions a zone
// permits a path to travel in. DirXRouting is a distinguished sentinel: per
// SPEC_FULL.md §4.4, when it is the *only* bit set, lateral movement is
// normally restricted to 45-degree ("X") routing, except right next to the
// target or inside/adjacent to a pin-swap zone, where any direction is
// granted.
type RouteDirection uint16

const DirNone RouteDirection = 0

const (
	DirN RouteDirection = 1 << iota
	DirS
	DirE
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
	DirKnight
	DirVertical
	DirXRouting
)

// DirAll permits every direction; the common case for an unrestricted zone.
const DirAll = DirN | DirS | DirE | DirW | DirNE | DirNW | DirSE | DirSW | DirKnight | DirVertical


// DirectionOf classifies a step delta into the RouteDirection bit it
// represents. Vertical-only steps (dx=dy=0, dz!=0) map to DirVertical;
// knight's-move steps map to DirKnight; the eight lateral unit/diagonal
// steps map to their compass bit.
func DirectionOf(d gridmodel.Delta) RouteDirection {
	if d.DX == 0 && d.DY == 0 && d.DZ != 0 {
		return DirVertical
	}
	adx, ady := abs(d.DX), abs(d.DY)
	if (adx == 1 && ady == 2) || (adx == 2 && ady == 1) {
		return DirKnight
	}
	switch {
	case d.DX == 0 && d.DY < 0:
		return DirN
	case d.DX == 0 && d.DY > 0:
		return DirS
	case d.DX > 0 && d.DY == 0:
		return DirE
	case d.DX < 0 && d.DY == 0:
		return DirW
	case d.DX > 0 && d.DY < 0:
		return DirNE
	case d.DX < 0 && d.DY < 0:
		return DirNW
	case d.DX > 0 && d.DY > 0:
		return DirSE
	case d.DX < 0 && d.DY > 0:
		return DirSW
	default:
		return DirNone
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Permits reports whether mask allows the direction dir, honoring the
// DirXRouting 45-degree-only special case.
func (mask RouteDirection) Permits(dir RouteDirection) bool {
	if mask == DirNone {
		return false
	}
	if mask == DirXRouting {
		return dir == DirNE || dir == DirNW || dir == DirSE || dir == DirSW
	}
	return mask&dir != 0
}

// IsDiagonal reports whether dir is one of the four 45-degree compass
// directions.
func (dir RouteDirection) IsDiagonal() bool {
	return dir == DirNE || dir == DirNW || dir == DirSE || dir == DirSW
}
