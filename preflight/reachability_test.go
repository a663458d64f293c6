package preflight_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/preflight"
	"github.com/stretchr/testify/require"
)

func openGrid(t *testing.T, w, h, l int) *gridmodel.Grid {
	t.Helper()
	g, err := gridmodel.NewGrid(w, h, l)
	require.NoError(t, err)
	return g
}

func TestReachable_OpenGridIsReachable(t *testing.T) {
	grid := openGrid(t, 10, 10, 1)
	ok, err := preflight.Reachable(grid, gridmodel.Coord{X: 0, Y: 0, Z: 0}, gridmodel.Coord{X: 9, Y: 9, Z: 0}, gridmodel.Trace, preflight.Options{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReachable_FullWallBlocks(t *testing.T) {
	grid := openGrid(t, 10, 10, 1)
	for y := 0; y < 10; y++ {
		c := gridmodel.Coord{X: 5, Y: y, Z: 0}
		b := grid.At(c).Barrier
		b.Trace = true
		grid.At(c).Barrier = b
	}
	ok, err := preflight.Reachable(grid, gridmodel.Coord{X: 0, Y: 0, Z: 0}, gridmodel.Coord{X: 9, Y: 9, Z: 0}, gridmodel.Trace, preflight.Options{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestComponents_SplitByWallYieldsTwoComponents(t *testing.T) {
	grid := openGrid(t, 6, 6, 1)
	for y := 0; y < 6; y++ {
		c := gridmodel.Coord{X: 3, Y: y, Z: 0}
		b := grid.At(c).Barrier
		b.Trace = true
		grid.At(c).Barrier = b
	}
	comps := preflight.Components(grid, gridmodel.Trace, preflight.Options{})
	require.Len(t, comps, 2)
}
