package pathfinder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// baseNeighborOffsets is the canonical 18-neighborhood: 4 cardinal, 4
// diagonal, 8 knight's-move (same layer), and 2 vertical (up/down).
// FindPath works on a per-call shuffled copy; this slice is never mutated.
var baseNeighborOffsets = []gridmodel.Delta{
	{DX: 0, DY: -1, DZ: 0}, {DX: 0, DY: 1, DZ: 0}, {DX: 1, DY: 0, DZ: 0}, {DX: -1, DY: 0, DZ: 0},
	{DX: 1, DY: -1, DZ: 0}, {DX: -1, DY: -1, DZ: 0}, {DX: 1, DY: 1, DZ: 0}, {DX: -1, DY: 1, DZ: 0},
	{DX: 1, DY: 2, DZ: 0}, {DX: -1, DY: 2, DZ: 0}, {DX: 1, DY: -2, DZ: 0}, {DX: -1, DY: -2, DZ: 0},
	{DX: 2, DY: 1, DZ: 0}, {DX: -2, DY: 1, DZ: 0}, {DX: 2, DY: -1, DZ: 0}, {DX: -2, DY: -1, DZ: 0},
	{DX: 0, DY: 0, DZ: 1}, {DX: 0, DY: 0, DZ: -1},
}

// shuffledNeighbors returns a Fisher-Yates-shuffled copy of
// baseNeighborOffsets, seeded by |previousPathCost| so that exploration
// order is reproducibly different across iterations while remaining
// deterministic given the previous iteration's result (SPEC_FULL.md §4.4,
// §9).
func shuffledNeighbors(previousPathCost int64, disable bool) []gridmodel.Delta {
	out := make([]gridmodel.Delta, len(baseNeighborOffsets))
	copy(out, baseNeighborOffsets)
	if disable {
		return out
	}
	seed := previousPathCost
	if seed < 0 {
		seed = -seed
	}
	r := rand.New(rand.NewSource(seed))
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// cornerCells returns the two orthogonal cells bridging a diagonal or
// knight's-move step from p to c (for a knight's move, the two cells either
// side of its midpoint) — both must be walkable for the step to be legal
// (SPEC_FULL.md §4.4).
func cornerCells(p, c gridmodel.Coord) [2]gridmodel.Coord {
	hx, hy := (c.X-p.X)/2, (c.Y-p.Y)/2
	return [2]gridmodel.Coord{
		{X: c.X - hx, Y: p.Y + hy, Z: p.Z},
		{X: p.X + hx, Y: c.Y - hy, Z: p.Z},
	}
}

func shapeForDelta(d gridmodel.Delta) gridmodel.ShapeType {
	switch {
	case d.DZ > 0:
		return gridmodel.ViaUp
	case d.DZ < 0:
		return gridmodel.ViaDown
	default:
		return gridmodel.Trace
	}
}

// lateralLength is the Euclidean length of a same-layer step; equal to the
// displacement magnitude for every member of the 18-neighborhood (cardinal
// = 1, diagonal = sqrt(2), knight = sqrt(5)), which is what makes a
// Euclidean-distance heuristic admissible (see heuristic.go).
func lateralLength(d gridmodel.Delta) float64 {
	return math.Hypot(float64(d.DX), float64(d.DY))
}
