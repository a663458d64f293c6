package designrule

import "github.com/katalvlaran/gridroute/gridmodel"

// SubsetRule is one zone's policy for a single design-rule subset: the
// per-shape-type radius (half line-width for Trace, via radius for
// ViaUp/ViaDown) and the allowed route-direction mask.
type SubsetRule struct {
	Radius            [gridmodel.NumShapeTypes]float64
	AllowedDirections RouteDirection
}

// ZoneRule is the parser-supplied policy for one design-rule zone: its
// subsets (indexed 0..N-1) and, for each of its (subset,shape) indices, the
// subset id that is "semantically the same" net behavior in every other
// zone (the foreign_DR_subset translation of SPEC_FULL.md §4.3).
type ZoneRule struct {
	ZoneID  int
	Subsets []SubsetRule

	// ForeignSubset[subsetShapeIdx][targetZoneID] gives the subset id to
	// use for this net's behavior when it crosses from this zone into
	// targetZoneID. A nil map (or missing entry) means "same subset index,
	// unchanged".
	ForeignSubset map[int]map[int]int
}

// SpacingFunc supplies the minimum required clearance between a shape of
// (zone1,subset1,shape1) and a shape of (zone2,subset2,shape2), in cells.
// It must be symmetric in the sense that spacing(a,b) and spacing(b,a)
// describe the same physical clearance (the matrix does not assume this
// and queries both orders as needed).
type SpacingFunc func(zone1, subset1 int, shape1 gridmodel.ShapeType, zone2, subset2 int, shape2 gridmodel.ShapeType) float64

// Matrix is the precomputed four-indexed design-rule table of
// SPEC_FULL.md §4.3/§5. Source and target are both addressed by
// (zoneID, subsetShapeIdx) where subsetShapeIdx = gridmodel.SubsetShapeIndex.
type Matrix struct {
	numZones int
	rules    []ZoneRule // indexed by zoneID

	// drcRadius[src][dst], congRadius[src][dst] are flattened
	// [zoneID*MaxProximitySubsetShapes+subsetShapeIdx] x same for dst.
	drcRadius    [][]float64
	drcRadiusSq  [][]float64
	congRadius   [][]float64
	congRadiusSq [][]float64
}

func slot(zoneID, subsetShapeIdx int) int {
	return zoneID*gridmodel.MaxProximitySubsetShapes + subsetShapeIdx
}

// NumZones reports how many zones this matrix was built with.
func (m *Matrix) NumZones() int { return m.numZones }
