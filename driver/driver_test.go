package driver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/driver"
	"github.com/katalvlaran/gridroute/gridmodel"
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
				{Radius: [gridmodel.NumShapeTypes]float64{1, 1, 1}, AllowedDirections: designrule.DirAll},
			},
		},
	}, func(_ int, _ int, _ gridmodel.ShapeType, _ int, _ int, _ gridmodel.ShapeType) float64 { return 1 })
	require.NoError(t, err)
	return m
}

// TestRunIteration_TwoDisjointNetsConverge reproduces SPEC_FULL.md §8
// scenario 1: two nets routed far apart on an otherwise empty map produce
// zero DRC violations, and repeated DRC-free iterations drive the driver to
// Converged.
func TestRunIteration_TwoDisjointNetsConverge(t *testing.T) {
	grid := openGrid(t, 20, 20, 1)
	drm := openMatrix(t)

	registry := gridmodel.NewNetRegistry()
	registry.Register(gridmodel.NetInfo{PathID: 1, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 0, Z: 0}, End: gridmodel.Coord{X: 5, Y: 0, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 2, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 0, Y: 15, Z: 0}, End: gridmodel.Coord{X: 5, Y: 15, Z: 0}})

	cfg := config.DefaultConfig()
	cfg.ParallelProcessing = false
	cfg.NumIterationsToReequilibrate = 2

	d := driver.New(grid, drm, registry, cfg, 1)

	var last driver.IterationSummary
	for i := 0; i < cfg.NumIterationsToReequilibrate+1; i++ {
		summary, err := d.RunIteration(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, summary.DRCCount)
		last = summary
	}
	require.True(t, last.Converged)
	require.Equal(t, cfg.NumIterationsToReequilibrate+1, d.IterationsDRCFree())
}

// TestRunIteration_DiffPairExpandsToTwoPaths reproduces SPEC_FULL.md §8
// scenario 4 at the driver level: a pseudo-net linked to two real nets
// expands, after one iteration, into two distinct routed paths.
func TestRunIteration_DiffPairExpandsToTwoPaths(t *testing.T) {
	grid := openGrid(t, 20, 20, 1)
	drm := openMatrix(t)

	registry := gridmodel.NewNetRegistry()
	registry.Register(gridmodel.NetInfo{PathID: 10, Kind: gridmodel.PseudoNet, Start: gridmodel.Coord{X: 2, Y: 10, Z: 0}, End: gridmodel.Coord{X: 17, Y: 10, Z: 0}, PNSwappable: true})
	registry.Register(gridmodel.NetInfo{PathID: 11, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 2, Y: 11, Z: 0}, End: gridmodel.Coord{X: 17, Y: 11, Z: 0}})
	registry.Register(gridmodel.NetInfo{PathID: 12, Kind: gridmodel.UserNet, Start: gridmodel.Coord{X: 2, Y: 9, Z: 0}, End: gridmodel.Coord{X: 17, Y: 9, Z: 0}})
	registry.LinkDiffPair(10, 11, 12)

	cfg := config.DefaultConfig()
	cfg.ParallelProcessing = false

	d := driver.New(grid, drm, registry, cfg, 7)
	_, err := d.RunIteration(context.Background())
	require.NoError(t, err)

	require.Greater(t, d.Paths[11].Len(), 0)
	require.Greater(t, d.Paths[12].Len(), 0)
	require.NotEqual(t, d.Paths[11].Coords(), d.Paths[12].Coords())
}
