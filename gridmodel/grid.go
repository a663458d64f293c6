package gridmodel

// Grid is the flat, read-only-after-construction 3-D cell array. Cell
// (x,y,z) lives at index x + Width*y + Width*Height*z.
type Grid struct {
	Width, Height, Layers int
	cells                 []Cell
}

// NewGrid allocates a Width x Height x Layers grid of zero-valued cells.
// Complexity: O(Width*Height*Layers).
func NewGrid(width, height, layers int) (*Grid, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		Width:  width,
		Height: height,
		Layers: layers,
		cells:  make([]Cell, width*height*layers),
	}, nil
}

// Index computes the flat slice index for (x,y,z). Does not bounds-check;
// callers on the hot path are expected to have already called InBounds.
func (g *Grid) Index(x, y, z int) int {
	return x + g.Width*y + g.Width*g.Height*z
}

// Coordinate is the inverse of Index.
func (g *Grid) Coordinate(idx int) Coord {
	plane := g.Width * g.Height
	z := idx / plane
	rem := idx % plane
	y := rem / g.Width
	x := rem % g.Width
	return Coord{X: x, Y: y, Z: z}
}

// InBounds reports whether c lies within the grid's extents.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width &&
		c.Y >= 0 && c.Y < g.Height &&
		c.Z >= 0 && c.Z < g.Layers
}

// IsOutsideMap is the spec-named predicate; the negation of InBounds.
func (g *Grid) IsOutsideMap(c Coord) bool {
	return !g.InBounds(c)
}

// At returns a pointer to the cell at c. Panics if c is out of bounds;
// callers must check InBounds first on any path reachable from untrusted
// input (the grid itself is only ever addressed by coordinates the
// path-finder and routability evaluator have already range-checked).
func (g *Grid) At(c Coord) *Cell {
	return &g.cells[g.Index(c.X, c.Y, c.Z)]
}

// DesignRuleZone returns the design-rule zone id governing cell c.
func (g *Grid) DesignRuleZone(c Coord) int {
	return g.At(c).DesignRuleZoneID
}

// IsInsideBarrierForShape reports whether placing shape at c is blocked by
// a direct barrier (not mere proximity).
func (g *Grid) IsInsideBarrierForShape(c Coord, shape ShapeType) bool {
	b := g.At(c).Barrier
	switch shape {
	case Trace:
		return b.Trace
	case ViaUp:
		return b.ViaUp
	case ViaDown:
		return b.ViaDown
	default:
		return false
	}
}

// IsInsidePinSwapProximityForShape reports whether c is within the
// keep-out proximity of a pin-swap zone for (subset,shape).
func (g *Grid) IsInsidePinSwapProximityForShape(c Coord, subset int, shape ShapeType) bool {
	return g.At(c).HasPinSwapProximity(subset, shape)
}

// IsInsideBarrierProximityForShape reports whether c is within the keep-out
// proximity of a barrier for (subset,shape).
func (g *Grid) IsInsideBarrierProximityForShape(c Coord, subset int, shape ShapeType) bool {
	return g.At(c).HasBarrierProximity(subset, shape)
}

// InPinSwapZone reports whether c lies in any pin-swap zone, and if so,
// which zone id (0 if none).
func (g *Grid) InPinSwapZone(c Coord) (bool, int) {
	id := g.At(c).PinSwapZoneID
	return id > 0, id
}

// ResetTransient clears transient per-cell state across the whole grid.
// Called once at the start of each iteration (SPEC_FULL.md §6.7 step 1).
// Complexity: O(Width*Height*Layers).
func (g *Grid) ResetTransient() {
	for i := range g.cells {
		g.cells[i].ResetTransient()
	}
}

// Cells exposes the backing slice for read-only bulk iteration (used by the
// routability evaluator's layer scan and the renderer contract). Mutating
// the returned slice's cell contents outside the owning phase violates the
// concurrency model described in SPEC_FULL.md §7.
func (g *Grid) Cells() []Cell {
	return g.cells
}
