package congestion_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/stretchr/testify/require"
)

// buildFlatMatrix returns a single-zone, single-subset matrix whose
// resulting CongRadius is exactly radius cells (zero shape radii, a flat
// spacing function returning radius).
func buildFlatMatrix(t *testing.T, radius float64) *designrule.Matrix {
	t.Helper()
	m, err := designrule.Build([]designrule.ZoneRule{
		{
			ZoneID: 0,
			Subsets: []designrule.SubsetRule{
				{Radius: [gridmodel.NumShapeTypes]float64{0, 0, 0}, AllowedDirections: designrule.DirAll},
			},
		},
	}, func(_ int, _ int, _ gridmodel.ShapeType, _ int, _ int, _ gridmodel.ShapeType) float64 { return radius })
	require.NoError(t, err)
	return m
}

// TestAddCongestion_MonotoneUnderRepeatedTraversal reproduces spec.md §8's
// "Monotone congestion under repeated traversal": depositing the same
// positive delta on the same cell over and over must never decrease the
// accumulator, and it must eventually saturate at gridmodel.MaxCongestion
// rather than wrap.
func TestAddCongestion_MonotoneUnderRepeatedTraversal(t *testing.T) {
	grid, err := gridmodel.NewGrid(3, 3, 1)
	require.NoError(t, err)
	c := gridmodel.Coord{X: 1, Y: 1, Z: 0}

	var prev uint32
	for i := 0; i < int(gridmodel.MaxCongestion/congestion.OneTraversal)+2; i++ {
		congestion.AddCongestion(grid, c, 7, 0, gridmodel.Trace, congestion.OneTraversal)
		cur := grid.At(c).Congestion[0].Traversals
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	require.Equal(t, uint32(gridmodel.MaxCongestion), prev)
}

// TestAddCongestion_DistinctPathsDoNotShareAnAccumulator confirms the
// (pathID, subset, shape) key separates traversal counts per path, so one
// path's congestion deposits never bleed into another's.
func TestAddCongestion_DistinctPathsDoNotShareAnAccumulator(t *testing.T) {
	grid, err := gridmodel.NewGrid(3, 3, 1)
	require.NoError(t, err)
	c := gridmodel.Coord{X: 1, Y: 1, Z: 0}

	congestion.AddCongestion(grid, c, 1, 0, gridmodel.Trace, congestion.OneTraversal)
	congestion.AddCongestion(grid, c, 2, 0, gridmodel.Trace, congestion.OneTraversal*3)

	require.Equal(t, uint64(congestion.OneTraversal), congestion.ReadCongestion(grid, c, 2, false))
	require.Equal(t, uint64(congestion.OneTraversal*4), congestion.ReadCongestion(grid, c, 2, true))
}

// TestDepositAroundSegment_FallsOffWithDistance checks the radial deposit's
// linear falloff: a cell at the disk's edge receives strictly less than one
// at its center.
func TestDepositAroundSegment_FallsOffWithDistance(t *testing.T) {
	grid, err := gridmodel.NewGrid(11, 11, 1)
	require.NoError(t, err)
	center := gridmodel.Coord{X: 5, Y: 5, Z: 0}
	foreign := []congestion.ForeignShape{{Zone: 0, Subset: 0, Shape: gridmodel.Trace}}

	drm := buildFlatMatrix(t, 4)
	congestion.DepositAroundSegment(grid, drm, 1, 0, 0, gridmodel.Trace, center, foreign, congestion.OneTraversal)

	centerAmt := congestion.ReadCongestion(grid, center, -1, true)
	edge := gridmodel.Coord{X: 9, Y: 5, Z: 0}
	edgeAmt := congestion.ReadCongestion(grid, edge, -1, true)

	require.Greater(t, centerAmt, uint64(0))
	require.Less(t, edgeAmt, centerAmt)
}
