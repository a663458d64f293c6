package pathfinder

import (
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
)

// walkable reports whether a cell is clear of trace barriers and trace
// proximity for the given subset — the minimum bar a "corner" cell bridging
// a diagonal/knight move must clear (SPEC_FULL.md §4.4).
func walkable(grid *gridmodel.Grid, drm *designrule.Matrix, c gridmodel.Coord, homeZone, baseSubset int) bool {
	if grid.IsOutsideMap(c) {
		return false
	}
	zone := grid.DesignRuleZone(c)
	subset := drm.SubsetFor(homeZone, baseSubset, gridmodel.Trace, zone)
	if grid.IsInsideBarrierForShape(c, gridmodel.Trace) {
		return false
	}
	if grid.IsInsideBarrierProximityForShape(c, subset, gridmodel.Trace) {
		return false
	}
	return true
}

// legalStep reports whether stepping from p to c is a legal move for the
// given net, per every rule of SPEC_FULL.md §4.4. endCoord is the path's
// ultimate target, needed for the X_ROUTING-near-target exception;
// restriction may be nil.
func legalStep(grid *gridmodel.Grid, drm *designrule.Matrix, p, c, endCoord gridmodel.Coord, d gridmodel.Delta, homeZone, baseSubset, startSwapZoneID int, restriction *gridmodel.RoutingRestriction) bool {
	if grid.IsOutsideMap(c) {
		return false
	}

	shape := shapeForDelta(d)
	cZone := grid.DesignRuleZone(c)
	pZone := grid.DesignRuleZone(p)
	cSubset := drm.SubsetFor(homeZone, baseSubset, shape, cZone)
	pSubset := drm.SubsetFor(homeZone, baseSubset, shape, pZone)

	if grid.IsInsideBarrierForShape(c, shape) {
		return false
	}
	if grid.IsInsideBarrierProximityForShape(c, cSubset, shape) {
		return false
	}

	pInSwap, _ := grid.InPinSwapZone(p)
	cInSwap, cSwapID := grid.InPinSwapZone(c)

	// Pin-swap proximity: legal only if C is outside pin-swap proximity, or
	// P itself is inside that pin-swap zone.
	if grid.IsInsidePinSwapProximityForShape(c, cSubset, shape) && !pInSwap {
		return false
	}

	if d.DZ != 0 {
		pCell := grid.At(p)
		cCell := grid.At(c)
		if d.DZ > 0 {
			if pCell.Barrier.ViaUp || cCell.Barrier.ViaDown {
				return false
			}
		} else {
			if pCell.Barrier.ViaDown || cCell.Barrier.ViaUp {
				return false
			}
		}
		if grid.IsInsideBarrierProximityForShape(p, pSubset, shape) || grid.IsInsideBarrierProximityForShape(c, cSubset, shape) {
			return false
		}
	}

	dir := designrule.DirectionOf(d)
	pMask := drm.AllowedDirections(pZone, pSubset)
	cMask := drm.AllowedDirections(cZone, cSubset)
	if pMask == designrule.DirNone || cMask == designrule.DirNone {
		return false
	}
	permitted := pMask.Permits(dir) && cMask.Permits(dir)
	if !permitted {
		adjacentToTarget := abs(c.X-endCoord.X) <= 1 && abs(c.Y-endCoord.Y) <= 1 && c.Z == endCoord.Z
		nearSwap := pInSwap || cInSwap
		xRoutingOnly := pMask == designrule.DirXRouting || cMask == designrule.DirXRouting
		if !(xRoutingOnly && (adjacentToTarget || nearSwap)) {
			return false
		}
	}

	if dir.IsDiagonal() || dir == designrule.DirKnight {
		corners := cornerCells(p, c)
		if !walkable(grid, drm, corners[0], homeZone, baseSubset) || !walkable(grid, drm, corners[1], homeZone, baseSubset) {
			return false
		}
	}

	if pInSwap || cInSwap {
		manhattan := abs(d.DX) + abs(d.DY) + abs(d.DZ)
		if manhattan != 1 {
			return false
		}
	}

	if cInSwap && cSwapID != startSwapZoneID {
		return false
	}

	if restriction != nil && restriction.Enabled {
		if !restriction.LayerAllowed(c.Z) {
			return false
		}
		if d.DZ == 0 && !restriction.WithinRadius(c.X, c.Y, c.Z) {
			return false
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ValidateEndpoint checks the start/end preconditions of SPEC_FULL.md §4.4:
// inside the map, not inside a trace barrier, not inside barrier proximity
// (with the pin-swap exception), and AllowedDirections != NONE.
func ValidateEndpoint(grid *gridmodel.Grid, drm *designrule.Matrix, c, other gridmodel.Coord, homeZone, baseSubset, startSwapZoneID int, isStart bool) error {
	if grid.IsOutsideMap(c) {
		if isStart {
			return ErrStartOutsideMap
		}
		return ErrEndOutsideMap
	}
	zone := grid.DesignRuleZone(c)
	subset := drm.SubsetFor(homeZone, baseSubset, gridmodel.Trace, zone)

	if grid.IsInsideBarrierForShape(c, gridmodel.Trace) {
		return endpointErr(isStart)
	}

	_, swapID := grid.InPinSwapZone(c)
	inSwapProximity := grid.IsInsidePinSwapProximityForShape(c, subset, gridmodel.Trace)
	if inSwapProximity || grid.IsInsideBarrierProximityForShape(c, subset, gridmodel.Trace) {
		// Exempted only when the end is in pin-swap proximity and the start
		// is in, or adjacent to, that zone.
		if isStart || !inSwapProximity {
			return endpointErr(isStart)
		}
		otherInSwap, otherSwapID := grid.InPinSwapZone(other)
		adjacent := abs(c.X-other.X) <= 1 && abs(c.Y-other.Y) <= 1 && c.Z == other.Z
		if !((otherInSwap && otherSwapID == swapID) || adjacent) {
			return endpointErr(isStart)
		}
	}

	mask := drm.AllowedDirections(zone, subset)
	if mask == designrule.DirNone {
		return endpointErr(isStart)
	}
	return nil
}

func endpointErr(isStart bool) error {
	if isStart {
		return ErrStartIllegal
	}
	return ErrEndIllegal
}
