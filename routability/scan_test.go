package routability_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/routability"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, w, h, l int) *gridmodel.Grid {
	t.Helper()
	g, err := gridmodel.NewGrid(w, h, l)
	require.NoError(t, err)
	return g
}

// spacing requires one cell of clearance between any two shapes; a net is
// never checked against itself because Evaluate exempts that pair.
func spacing(_ int, _ int, _ gridmodel.ShapeType, _ int, _ int, _ gridmodel.ShapeType) float64 {
	return 1
}

func newMatrix(t *testing.T) *designrule.Matrix {
	t.Helper()
	m, err := designrule.Build([]designrule.ZoneRule{
		{
			ZoneID: 0,
			Subsets: []designrule.SubsetRule{
				{Radius: [gridmodel.NumShapeTypes]float64{0, 0, 0}, AllowedDirections: designrule.DirAll},
			},
		},
	}, spacing)
	require.NoError(t, err)
	return m
}

// TestEvaluate_FlagsAdjacentNets reproduces SPEC_FULL.md §8's DRC-symmetry
// invariant: two straight parallel paths one cell apart, under a spacing
// rule demanding at least one cell of clearance, must be flagged as a
// violation on both sides equally.
func TestEvaluate_FlagsAdjacentNets(t *testing.T) {
	grid := newGrid(t, 10, 10, 1)
	drm := newMatrix(t)
	registry := gridmodel.NewNetRegistry()

	registry.Register(gridmodel.NetInfo{PathID: 1, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 5, Z: 0}, End: gridmodel.Coord{X: 9, Y: 5, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 2, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 6, Z: 0}, End: gridmodel.Coord{X: 9, Y: 6, Z: 0}})

	pathA := straightPath(1, 5, 0, 10)
	pathB := straightPath(2, 6, 0, 10)
	paths := map[int]*gridmodel.Path{1: pathA, 2: pathB}

	metrics := routability.NewRoutingMetrics()
	err := routability.Evaluate(grid, drm, registry, paths, metrics, routability.EvaluateOptions{})
	require.NoError(t, err)

	require.Greater(t, metrics.DRCCountByPath[1], 0)
	require.Equal(t, metrics.DRCCountByPath[1], metrics.DRCCountByPath[2])
	require.Equal(t, metrics.Crossing[1][2], metrics.Crossing[2][1])
	require.Greater(t, metrics.Crossing[1][2], 0)
}

// TestEvaluate_DiffPairExempt confirms a pseudo-net's centerline never
// triggers a DRC against the two real nets it expands into, even when they
// sit close enough that an unrelated pair would flag (SPEC_FULL.md §4.5
// step 2).
func TestEvaluate_DiffPairExempt(t *testing.T) {
	grid := newGrid(t, 10, 10, 1)
	drm := newMatrix(t)
	registry := gridmodel.NewNetRegistry()

	registry.Register(gridmodel.NetInfo{PathID: 10, Kind: gridmodel.PseudoNet, Start: gridmodel.Coord{X: 0, Y: 5, Z: 0}, End: gridmodel.Coord{X: 9, Y: 5, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 11, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 5, Z: 0}, End: gridmodel.Coord{X: 9, Y: 5, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 12, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 6, Z: 0}, End: gridmodel.Coord{X: 9, Y: 6, Z: 0}})
	registry.LinkDiffPair(10, 11, 12)

	paths := map[int]*gridmodel.Path{
		10: straightPath(10, 5, 0, 10),
		11: straightPath(11, 5, 0, 10),
		12: straightPath(12, 6, 0, 10),
	}

	metrics := routability.NewRoutingMetrics()
	err := routability.Evaluate(grid, drm, registry, paths, metrics, routability.EvaluateOptions{})
	require.NoError(t, err)

	require.Equal(t, 0, metrics.Crossing[10][11])
	require.Equal(t, 0, metrics.Crossing[10][12])
}

// TestEvaluate_IdempotentOnRepeat confirms re-running Evaluate over an
// unchanged path set (after resetting transient grid state, as the driver
// does each iteration) yields identical DRC counts — the evaluator carries
// no hidden accumulation across calls.
func TestEvaluate_IdempotentOnRepeat(t *testing.T) {
	grid := newGrid(t, 10, 10, 1)
	drm := newMatrix(t)
	registry := gridmodel.NewNetRegistry()
	registry.Register(gridmodel.NetInfo{PathID: 1, Start: gridmodel.Coord{X: 0, Y: 5, Z: 0}, End: gridmodel.Coord{X: 9, Y: 5, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 2, Start: gridmodel.Coord{X: 0, Y: 6, Z: 0}, End: gridmodel.Coord{X: 9, Y: 6, Z: 0}})
	paths := map[int]*gridmodel.Path{1: straightPath(1, 5, 0, 10), 2: straightPath(2, 6, 0, 10)}

	m1 := routability.NewRoutingMetrics()
	require.NoError(t, routability.Evaluate(grid, drm, registry, paths, m1, routability.EvaluateOptions{}))
	first := m1.DRCCountByPath[1]

	grid.ResetTransient()
	m2 := routability.NewRoutingMetrics()
	require.NoError(t, routability.Evaluate(grid, drm, registry, paths, m2, routability.EvaluateOptions{}))
	require.Equal(t, first, m2.DRCCountByPath[1])
}

func straightPath(pathID, y, z, length int) *gridmodel.Path {
	segs := make([]gridmodel.Segment, length)
	for x := 0; x < length; x++ {
		segs[x] = gridmodel.Segment{Coord: gridmodel.Coord{X: x, Y: y, Z: z}}
	}
	return &gridmodel.Path{PathID: pathID, Segments: segs}
}
