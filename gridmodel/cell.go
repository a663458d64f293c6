package gridmodel

// Cell is one site of the 3-D routing grid. Zone/Barrier/ProximityBarrier/
// ProximityPinSwap/PinSwapZoneID are fixed at construction time and never
// mutated afterward. PathCenters, Congestion, NearANet, Explored,
// ExploredPP, DRCFlag, and ViaAboveDRCFlag are transient per-iteration state
// reset by Grid.ResetTransient.
type Cell struct {
	// DesignRuleZoneID selects which zone's line-width/spacing/direction
	// policy governs this cell (0..15 per SPEC_FULL.md §3).
	DesignRuleZoneID int

	// Barrier carries the three trace/via barrier bits.
	Barrier BarrierFlags

	// ForbiddenProximityBarrier is a 64-bit mask indexed by
	// subset*NumShapeTypes+shape; a set bit means this cell is too close to
	// a barrier to legally place that (subset,shape) shape.
	ForbiddenProximityBarrier uint64

	// ForbiddenProximityPinSwap is the pin-swap-zone analogue of
	// ForbiddenProximityBarrier.
	ForbiddenProximityPinSwap uint64

	// PinSwapZoneID is 0 when this cell is not part of a pin-swap zone, and
	// a positive zone identifier otherwise.
	PinSwapZoneID int

	// PathCenters lists, for each path whose centerline passes through this
	// cell, the (path_id, shape_type) pair. Bounded by MaxTraversingShapes.
	PathCenters []PathCenter

	// Congestion is a sparse list of per-(path,subset,shape) accumulators.
	Congestion []CongestionEntry

	// NearANet marks a cell within the maximum interaction radius of some
	// centerline; routability uses it to skip cells with nothing nearby.
	NearANet bool

	// Explored/ExploredPP are set by the path-finder's main/pseudo-net
	// passes respectively, for renderer/diagnostic consumption.
	Explored, ExploredPP bool

	// DRCFlag marks a design-rule-violating cell; ViaAboveDRCFlag marks a
	// cell whose via (one layer up) is implicated in a violation.
	DRCFlag, ViaAboveDRCFlag bool

	// RoutingLayerMetalFill, ViaAboveMetalFill, ViaBelowMetalFill are
	// renderer-facing fill fractions; the core never interprets them beyond
	// exposing them through the read-only RenderView contract.
	RoutingLayerMetalFill float64
	ViaAboveMetalFill     float64
	ViaBelowMetalFill     float64
}

// HasBarrierProximity reports whether the cell is too close to a barrier to
// legally place the given (subset, shape) shape.
func (c *Cell) HasBarrierProximity(subset int, shape ShapeType) bool {
	idx := SubsetShapeIndex(subset, shape)
	return c.ForbiddenProximityBarrier&(uint64(1)<<uint(idx)) != 0
}

// HasPinSwapProximity reports whether the cell is too close to a pin-swap
// zone to legally place the given (subset, shape) shape.
func (c *Cell) HasPinSwapProximity(subset int, shape ShapeType) bool {
	idx := SubsetShapeIndex(subset, shape)
	return c.ForbiddenProximityPinSwap&(uint64(1)<<uint(idx)) != 0
}

// InPinSwapZone reports whether the cell belongs to any pin-swap zone.
func (c *Cell) InPinSwapZone() bool {
	return c.PinSwapZoneID > 0
}

// AddPathCenter records that path pathID's centerline, as shape, passes
// through this cell. Returns ErrTooManyTraversingShapes if the cell is
// already at MaxTraversingShapes and this is a new (pathID,shape) pair.
func (c *Cell) AddPathCenter(pathID int, shape ShapeType) error {
	for _, pc := range c.PathCenters {
		if pc.PathID == pathID && pc.Shape == shape {
			return nil // already recorded; idempotent
		}
	}
	if len(c.PathCenters) >= MaxTraversingShapes {
		return ErrTooManyTraversingShapes
	}
	c.PathCenters = append(c.PathCenters, PathCenter{PathID: pathID, Shape: shape})
	return nil
}

// AddCongestion increments the (pathID, subset, shape) congestion
// accumulator by delta, allocating a new entry if none exists, saturating
// at MaxCongestion. delta is expressed in the same ×100 traversal units as
// CongestionEntry.Traversals.
func (c *Cell) AddCongestion(pathID, subset int, shape ShapeType, delta uint32) {
	key := congestionKey{PathID: pathID, Subset: subset, Shape: shape}
	for i := range c.Congestion {
		if c.Congestion[i].key() == key {
			c.Congestion[i].Traversals = saturateAdd(c.Congestion[i].Traversals, delta)
			return
		}
	}
	c.Congestion = append(c.Congestion, CongestionEntry{
		PathID:     pathID,
		Subset:     subset,
		Shape:      shape,
		Traversals: saturateAdd(0, delta),
	})
}

func saturateAdd(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > MaxCongestion {
		return MaxCongestion
	}
	return uint32(sum)
}

// ResetTransient clears all per-iteration transient state, preserving the
// construction-time fields (zone, barriers, proximity masks, pin-swap zone
// id).
func (c *Cell) ResetTransient() {
	c.PathCenters = c.PathCenters[:0]
	c.Congestion = c.Congestion[:0]
	c.NearANet = false
	c.Explored = false
	c.ExploredPP = false
	c.DRCFlag = false
	c.ViaAboveDRCFlag = false
}
