package gridmodel

// Input is the contract the external parser (out of scope for this module;
// SPEC_FULL.md §1/§8) must populate before the core can run. The core never
// reads an input file itself — it consumes this struct. The parser's
// per-zone design-rule policy is a separate contract
// (designrule.ZoneRule, consumed by designrule.Build) so that this
// foundational package never needs to import designrule.
type Input struct {
	Width, Height, Layers int

	// ZoneOf, BarrierOf, PinSwapZoneOf are addressed [z][y][x], matching the
	// row-major convention a parser naturally produces from a layer-by-layer
	// file format.
	ZoneOf        [][][]int
	BarrierOf     [][][]BarrierFlags
	PinSwapZoneOf [][][]int

	Nets []NetInfo
}

// BuildGrid realizes a Grid from a parsed Input. This is the one piece of
// "loading" logic the core owns: copying the parser's zone, barrier, and
// pin-swap-zone arrays into the packed Cell representation. It does not
// compute the ForbiddenProximityBarrier/ForbiddenProximityPinSwap masks;
// they are left zero. It does not parse any file format itself.
// Complexity: O(Width*Height*Layers).
func BuildGrid(in Input) (*Grid, error) {
	g, err := NewGrid(in.Width, in.Height, in.Layers)
	if err != nil {
		return nil, err
	}
	for z := 0; z < in.Layers; z++ {
		for y := 0; y < in.Height; y++ {
			for x := 0; x < in.Width; x++ {
				c := g.At(Coord{X: x, Y: y, Z: z})
				if in.ZoneOf != nil {
					c.DesignRuleZoneID = in.ZoneOf[z][y][x]
				}
				if in.BarrierOf != nil {
					c.Barrier = in.BarrierOf[z][y][x]
				}
				if in.PinSwapZoneOf != nil {
					c.PinSwapZoneID = in.PinSwapZoneOf[z][y][x]
				}
			}
		}
	}
	return g, nil
}
