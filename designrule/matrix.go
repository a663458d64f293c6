package designrule

import (
	"github.com/katalvlaran/gridroute/gridmodel"
)

// Build precomputes the full design-rule matrix from the parser-supplied
// per-zone rules and a spacing function. zoneRules must be indexed by zone
// id (zoneRules[i].ZoneID == i); this matches how a parser naturally emits
// "zone 0's rule, zone 1's rule, ..." from a design-rule table file.
//
// Complexity: O(Z^2 * S^2) where Z = number of zones and S = subsets per
// zone * NumShapeTypes (at most MaxProximitySubsetShapes) — run once at
// startup, never on the hot path.
func Build(zoneRules []ZoneRule, spacing SpacingFunc) (*Matrix, error) {
	if len(zoneRules) == 0 {
		return nil, ErrNoZones
	}
	for _, zr := range zoneRules {
		if len(zr.Subsets) == 0 {
			return nil, ErrBadSubsetCount
		}
	}

	numZones := len(zoneRules)
	size := numZones * gridmodel.MaxProximitySubsetShapes
	m := &Matrix{
		numZones:     numZones,
		rules:        append([]ZoneRule(nil), zoneRules...),
		drcRadius:    make2D(size),
		drcRadiusSq:  make2D(size),
		congRadius:   make2D(size),
		congRadiusSq: make2D(size),
	}

	for srcZone, srcRule := range zoneRules {
		for srcSubset, srcSR := range srcRule.Subsets {
			for srcShape := 0; srcShape < gridmodel.NumShapeTypes; srcShape++ {
				srcIdx := gridmodel.SubsetShapeIndex(srcSubset, gridmodel.ShapeType(srcShape))
				srcSlot := slot(srcZone, srcIdx)
				srcRadius := srcSR.Radius[srcShape]

				for dstZone, dstRule := range zoneRules {
					for dstSubset, dstSR := range dstRule.Subsets {
						for dstShape := 0; dstShape < gridmodel.NumShapeTypes; dstShape++ {
							dstIdx := gridmodel.SubsetShapeIndex(dstSubset, gridmodel.ShapeType(dstShape))
							dstSlot := slot(dstZone, dstIdx)
							dstRadius := dstSR.Radius[dstShape]

							sp := spacing(srcZone, srcSubset, gridmodel.ShapeType(srcShape),
								dstZone, dstSubset, gridmodel.ShapeType(dstShape))

							// DRC_radius = radius2 + spacing12 (distance from
							// the target's center within which the source's
							// center is a violation).
							drc := dstRadius + sp
							// cong_radius = radius1 + spacing12 + radius2.
							cong := srcRadius + sp + dstRadius

							m.drcRadius[srcSlot][dstSlot] = drc
							m.drcRadiusSq[srcSlot][dstSlot] = drc * drc
							m.congRadius[srcSlot][dstSlot] = cong
							m.congRadiusSq[srcSlot][dstSlot] = cong * cong
						}
					}
				}
			}
		}
	}

	return m, nil
}

func make2D(size int) [][]float64 {
	out := make([][]float64, size)
	for i := range out {
		out[i] = make([]float64, size)
	}
	return out
}

// DRCRadius returns the DRC radius between a source (zone,subset,shape) and
// a target (zone,subset,shape): the distance from the target shape's
// center within which the source shape's center constitutes a violation.
func (m *Matrix) DRCRadius(srcZone, srcSubset int, srcShape gridmodel.ShapeType, dstZone, dstSubset int, dstShape gridmodel.ShapeType) float64 {
	return m.drcRadius[slot(srcZone, gridmodel.SubsetShapeIndex(srcSubset, srcShape))][slot(dstZone, gridmodel.SubsetShapeIndex(dstSubset, dstShape))]
}

// DRCRadiusSquared is the squared form of DRCRadius, for sqrt-free
// comparisons on the hot path.
func (m *Matrix) DRCRadiusSquared(srcZone, srcSubset int, srcShape gridmodel.ShapeType, dstZone, dstSubset int, dstShape gridmodel.ShapeType) float64 {
	return m.drcRadiusSq[slot(srcZone, gridmodel.SubsetShapeIndex(srcSubset, srcShape))][slot(dstZone, gridmodel.SubsetShapeIndex(dstSubset, dstShape))]
}

// CongRadius returns the congestion radius between a source and target
// (zone,subset,shape): the distance within which the source shape should
// receive congestion from the target shape's presence.
func (m *Matrix) CongRadius(srcZone, srcSubset int, srcShape gridmodel.ShapeType, dstZone, dstSubset int, dstShape gridmodel.ShapeType) float64 {
	return m.congRadius[slot(srcZone, gridmodel.SubsetShapeIndex(srcSubset, srcShape))][slot(dstZone, gridmodel.SubsetShapeIndex(dstSubset, dstShape))]
}

// CongRadiusSquared is the squared form of CongRadius.
func (m *Matrix) CongRadiusSquared(srcZone, srcSubset int, srcShape gridmodel.ShapeType, dstZone, dstSubset int, dstShape gridmodel.ShapeType) float64 {
	return m.congRadiusSq[slot(srcZone, gridmodel.SubsetShapeIndex(srcSubset, srcShape))][slot(dstZone, gridmodel.SubsetShapeIndex(dstSubset, dstShape))]
}

// MaxInteractionRadiusOnLayer returns the largest congestion radius any
// (subset,shape) pair within zoneID could project, used by the routability
// evaluator to size its per-layer neighborhood scan (SPEC_FULL.md §4.5
// step 3). Since callers query per-layer and a layer may host several
// zones, pass every zone id present on that layer and take the max.
func (m *Matrix) MaxInteractionRadiusOnLayer(zoneIDsOnLayer []int) float64 {
	maxR := 0.0
	for _, z := range zoneIDsOnLayer {
		if z < 0 || z >= m.numZones {
			continue
		}
		base := z * gridmodel.MaxProximitySubsetShapes
		for i := 0; i < gridmodel.MaxProximitySubsetShapes; i++ {
			row := m.congRadius[base+i]
			for _, v := range row {
				if v > maxR {
					maxR = v
				}
			}
		}
	}
	return maxR
}

// SubsetRule returns the subset policy for (zoneID, subset).
func (m *Matrix) SubsetRule(zoneID, subset int) (SubsetRule, bool) {
	if zoneID < 0 || zoneID >= m.numZones {
		return SubsetRule{}, false
	}
	rule := m.rules[zoneID]
	if subset < 0 || subset >= len(rule.Subsets) {
		return SubsetRule{}, false
	}
	return rule.Subsets[subset], true
}

// AllowedDirections returns the route-direction mask governing (zoneID,
// subset).
func (m *Matrix) AllowedDirections(zoneID, subset int) RouteDirection {
	sr, ok := m.SubsetRule(zoneID, subset)
	if !ok {
		return DirNone
	}
	return sr.AllowedDirections
}

// ForeignSubset translates a net's subset when its path crosses from
// srcZone (where it uses srcSubset/srcShape) into dstZone, per
// SPEC_FULL.md §4.3. Falls back to srcSubset unchanged if the zone rule
// declares no explicit translation.
func (m *Matrix) ForeignSubset(srcZone, srcSubset int, srcShape gridmodel.ShapeType, dstZone int) int {
	if srcZone < 0 || srcZone >= m.numZones {
		return srcSubset
	}
	rule := m.rules[srcZone]
	if rule.ForeignSubset == nil {
		return srcSubset
	}
	idx := gridmodel.SubsetShapeIndex(srcSubset, srcShape)
	byZone, ok := rule.ForeignSubset[idx]
	if !ok {
		return srcSubset
	}
	dst, ok := byZone[dstZone]
	if !ok {
		return srcSubset
	}
	return dst
}

// SubsetFor resolves the subset a net with home (homeZone, baseSubset)
// should use while physically occupying cellZone, applying ForeignSubset
// translation when the zone differs.
func (m *Matrix) SubsetFor(homeZone, baseSubset int, shape gridmodel.ShapeType, cellZone int) int {
	if cellZone == homeZone {
		return baseSubset
	}
	return m.ForeignSubset(homeZone, baseSubset, shape, cellZone)
}
