package pathfinder_test

import (
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
)

// newOpenGrid builds a w x h x l grid with no barriers and a single
// design-rule zone whose lone subset allows every direction.
func newOpenGrid(w, h, l int) *gridmodel.Grid {
	g, err := gridmodel.NewGrid(w, h, l)
	if err != nil {
		panic(err)
	}
	return g
}

// noSpacing is a SpacingFunc that requires zero clearance between any two
// shapes — the simplest possible design-rule configuration, useful for
// exercising the path-finder in isolation from the design-rule matrix.
func noSpacing(_ int, _ int, _ gridmodel.ShapeType, _ int, _ int, _ gridmodel.ShapeType) float64 {
	return 0
}

func newOpenMatrix() *designrule.Matrix {
	m, err := designrule.Build([]designrule.ZoneRule{
		{
			ZoneID: 0,
			Subsets: []designrule.SubsetRule{
				{
					Radius:            [gridmodel.NumShapeTypes]float64{0, 0, 0},
					AllowedDirections: designrule.DirAll,
				},
			},
		},
	}, noSpacing)
	if err != nil {
		panic(err)
	}
	return m
}

func barrierColumn(g *gridmodel.Grid, x int, yFrom, yTo, z int) {
	for y := yFrom; y <= yTo; y++ {
		c := g.At(gridmodel.Coord{X: x, Y: y, Z: z})
		c.Barrier.Trace = true
	}
}
