package gridmodel

// RenderView is the read-only contract exposed to the external PNG/HTML/SVG
// renderer (SPEC_FULL.md §1, §8): post-iteration access to the per-cell
// rendering fields and the routing metrics. The core never renders
// anything itself; it only guarantees these fields are populated and
// stable between iterations.
type RenderView struct {
	grid *Grid
}

// NewRenderView wraps a grid for read-only renderer consumption.
func NewRenderView(g *Grid) RenderView {
	return RenderView{grid: g}
}

// PathCentersAt returns the (path_id, shape) pairs whose centerline passes
// through c.
func (v RenderView) PathCentersAt(c Coord) []PathCenter {
	return v.grid.At(c).PathCenters
}

// DRCFlagAt reports whether c is a DRC-violating cell.
func (v RenderView) DRCFlagAt(c Coord) bool {
	return v.grid.At(c).DRCFlag
}

// ViaAboveDRCFlagAt reports whether c's via (one layer up) participates in
// a design-rule violation.
func (v RenderView) ViaAboveDRCFlagAt(c Coord) bool {
	return v.grid.At(c).ViaAboveDRCFlag
}

// MetalFillAt returns the routing-layer, via-above, and via-below metal
// fill fractions at c, in that order.
func (v RenderView) MetalFillAt(c Coord) (routingLayer, viaAbove, viaBelow float64) {
	cell := v.grid.At(c)
	return cell.RoutingLayerMetalFill, cell.ViaAboveMetalFill, cell.ViaBelowMetalFill
}
