package diffpair_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/diffpair"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
	"github.com/stretchr/testify/require"
)

func openGrid(t *testing.T, w, h, l int) *gridmodel.Grid {
	t.Helper()
	g, err := gridmodel.NewGrid(w, h, l)
	require.NoError(t, err)
	return g
}

func openMatrix(t *testing.T) *designrule.Matrix {
	t.Helper()
	m, err := designrule.Build([]designrule.ZoneRule{
		{
			ZoneID: 0,
			Subsets: []designrule.SubsetRule{
				{Radius: [gridmodel.NumShapeTypes]float64{0, 0, 0}, AllowedDirections: designrule.DirAll},
			},
		},
	}, func(_ int, _ int, _ gridmodel.ShapeType, _ int, _ int, _ gridmodel.ShapeType) float64 { return 0 })
	require.NoError(t, err)
	return m
}

// TestGenerateShoulders_StraightLineOffsetsPerpendicular reproduces
// SPEC_FULL.md §6.6 step 2 on the simplest case: a straight horizontal
// centerline offsets to two straight horizontal shoulders displaced by
// exactly pitch/2 in Y.
func TestGenerateShoulders_StraightLineOffsetsPerpendicular(t *testing.T) {
	centerline := []gridmodel.Coord{
		{X: 0, Y: 5, Z: 0}, {X: 1, Y: 5, Z: 0}, {X: 2, Y: 5, Z: 0}, {X: 3, Y: 5, Z: 0},
	}
	p, n := diffpair.GenerateShoulders(centerline, 2, diffpair.DefaultMaxBearingDeltaRad)

	for i := range centerline {
		require.Equal(t, centerline[i].X, p[i].X)
		require.Equal(t, centerline[i].X, n[i].X)
	}
	require.Equal(t, 6, p[0].Y)
	require.Equal(t, 4, n[0].Y)
}

// TestSynthesize_EmptyMapProducesTwoParallelPaths reproduces SPEC_FULL.md/
// spec.md §8 scenario 4: on an empty map, a pseudo-net's centerline
// expands into two non-empty, non-crossing shoulder paths.
func TestSynthesize_EmptyMapProducesTwoParallelPaths(t *testing.T) {
	grid := openGrid(t, 20, 20, 1)
	drm := openMatrix(t)
	scratchP := pathfinder.NewScratch(grid)
	scratchN := pathfinder.NewScratch(grid)

	pseudo := &gridmodel.Path{PathID: 100, Segments: []gridmodel.Segment{
		{Coord: gridmodel.Coord{X: 2, Y: 10, Z: 0}},
		{Coord: gridmodel.Coord{X: 10, Y: 10, Z: 0}},
		{Coord: gridmodel.Coord{X: 17, Y: 10, Z: 0}},
	}}

	netP := gridmodel.NetInfo{PathID: 101, Start: gridmodel.Coord{X: 2, Y: 11, Z: 0}, End: gridmodel.Coord{X: 17, Y: 11, Z: 0}}
	netN := gridmodel.NetInfo{PathID: 102, Start: gridmodel.Coord{X: 2, Y: 9, Z: 0}, End: gridmodel.Coord{X: 17, Y: 9, Z: 0}}

	res, err := diffpair.Synthesize(grid, drm, scratchP, scratchN, pseudo, netP, netN, diffpair.DefaultOptions(), pathfinder.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res.PathP)
	require.NotNil(t, res.PathN)
	require.Greater(t, res.PathP.Len(), 0)
	require.Greater(t, res.PathN.Len(), 0)

	for _, c := range res.PathP.Coords() {
		require.True(t, grid.InBounds(c))
	}
	for _, c := range res.PathN.Coords() {
		require.True(t, grid.InBounds(c))
	}
}

// TestGenerateShoulders_ClampLimitsSharpTurnRotation reproduces SPEC_FULL.md
// §6.6's maxBearingDeltaRad clamp: on a centerline doubling back on itself
// the unclamped shoulder normal rotates by pi/4 and then pi/2 over the two
// turns; a tight clamp holds each rotation to maxDeltaRad, so the clamped
// shoulder's step between vertices 1 and 2 differs from the unclamped one.
func TestGenerateShoulders_ClampLimitsSharpTurnRotation(t *testing.T) {
	centerline := []gridmodel.Coord{
		{X: 0, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}, {X: 5, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	const clamp = 0.1

	unclamped, _ := diffpair.GenerateShoulders(centerline, 2, diffpair.DefaultMaxBearingDeltaRad)
	clamped, _ := diffpair.GenerateShoulders(centerline, 2, clamp)

	dxU := float64(unclamped[2].X - unclamped[1].X)
	dyU := float64(unclamped[2].Y - unclamped[1].Y)
	dxC := float64(clamped[2].X - clamped[1].X)
	dyC := float64(clamped[2].Y - clamped[1].Y)

	require.NotEqual(t, []float64{dxU, dyU}, []float64{dxC, dyC})
}

func TestSwapGlobalPN_PrefersCheaperAssignment(t *testing.T) {
	require.True(t, diffpair.SwapGlobalPN(1000, 800))
	require.False(t, diffpair.SwapGlobalPN(800, 1000))
}
