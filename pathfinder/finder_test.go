package pathfinder_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
	"github.com/stretchr/testify/require"
)

// TestFindPath_Trivial reproduces SPEC_FULL.md/spec.md §8 scenario 1: a
// 10x10x1 empty grid, start=(1,1,0), end=(5,1,0); expect a straight
// length-5 path at cost 4*lateral_trace_cost, with no randomized
// reshuffling so the result is deterministic.
func TestFindPath_Trivial(t *testing.T) {
	grid := newOpenGrid(10, 10, 1)
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	opts := pathfinder.DefaultOptions()
	opts.DisableRandomCosts = true

	start := gridmodel.Coord{X: 1, Y: 1, Z: 0}
	end := gridmodel.Coord{X: 5, Y: 1, Z: 0}

	res, err := pathfinder.FindPath(grid, drm, scratch, start, end, 1, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 5, res.Path.Len())
	require.Equal(t, uint64(4*pathfinder.CostScale), res.Cost)

	coords := res.Path.Coords()
	require.Equal(t, start, coords[0])
	require.Equal(t, end, coords[len(coords)-1])
	for i := 1; i < len(coords); i++ {
		require.Equal(t, coords[i-1].Y, coords[i].Y, "expected a straight lateral path")
		require.Equal(t, 1, coords[i].X-coords[i-1].X)
	}
}

// TestFindPath_ObstacleDetour reproduces scenario 2: a barrier column at
// x=3 for y in [0,8] on a 10x10x1 grid forces the path around through
// y=9; expect length >= 7 and no barrier cell visited.
func TestFindPath_ObstacleDetour(t *testing.T) {
	grid := newOpenGrid(10, 10, 1)
	barrierColumn(grid, 3, 0, 8, 0)
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	opts := pathfinder.DefaultOptions()
	opts.DisableRandomCosts = true

	start := gridmodel.Coord{X: 1, Y: 5, Z: 0}
	end := gridmodel.Coord{X: 6, Y: 5, Z: 0}

	res, err := pathfinder.FindPath(grid, drm, scratch, start, end, 2, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.GreaterOrEqual(t, res.Path.Len(), 7)

	for _, c := range res.Path.Coords() {
		require.False(t, grid.At(c).Barrier.Trace, "path must never cross a barrier cell: %+v", c)
	}
}

// TestFindPath_LayerTransition reproduces scenario 3: a direct via stack
// from (0,0,0) to (0,0,2) on a 5x5x3 grid; expect the length-3 path
// straight up through (0,0,1), both of its steps VIA_UP.
func TestFindPath_LayerTransition(t *testing.T) {
	grid := newOpenGrid(5, 5, 3)
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	opts := pathfinder.DefaultOptions()
	opts.DisableRandomCosts = true

	start := gridmodel.Coord{X: 0, Y: 0, Z: 0}
	end := gridmodel.Coord{X: 0, Y: 0, Z: 2}

	res, err := pathfinder.FindPath(grid, drm, scratch, start, end, 3, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3, res.Path.Len())

	coords := res.Path.Coords()
	require.Equal(t, []gridmodel.Coord{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 2},
	}, coords)
	require.Equal(t, gridmodel.ViaUp, res.Path.ShapeAt(1))
	require.Equal(t, gridmodel.ViaUp, res.Path.ShapeAt(2))
}

// TestFindPath_StartEqualsEnd covers the trivial-path failure mode of
// SPEC_FULL.md §4.4/§7: start==end returns a length-1 path at zero cost.
func TestFindPath_StartEqualsEnd(t *testing.T) {
	grid := newOpenGrid(5, 5, 1)
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	p := gridmodel.Coord{X: 2, Y: 2, Z: 0}
	res, err := pathfinder.FindPath(grid, drm, scratch, p, p, 1, pathfinder.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, uint64(0), res.Cost)
	require.Equal(t, 1, res.Path.Len())
}

// TestFindPath_IllegalStart covers the "start inside a barrier" user-input
// error case (SPEC_FULL.md §7 kind 1): immediate error, no panic.
func TestFindPath_IllegalStart(t *testing.T) {
	grid := newOpenGrid(5, 5, 1)
	grid.At(gridmodel.Coord{X: 1, Y: 1, Z: 0}).Barrier.Trace = true
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	_, err := pathfinder.FindPath(grid, drm, scratch,
		gridmodel.Coord{X: 1, Y: 1, Z: 0}, gridmodel.Coord{X: 3, Y: 3, Z: 0},
		1, pathfinder.DefaultOptions())
	require.ErrorIs(t, err, pathfinder.ErrStartIllegal)
}

// TestFindPath_OpenSetExhausted walls off the target entirely; the search
// must report ErrOpenSetExhausted rather than panicking or looping forever.
func TestFindPath_OpenSetExhausted(t *testing.T) {
	grid := newOpenGrid(6, 6, 1)
	// Seal (5,5,0) off on every lateral/diagonal/knight approach.
	target := gridmodel.Coord{X: 5, Y: 5, Z: 0}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c := gridmodel.Coord{X: target.X + dx, Y: target.Y + dy, Z: 0}
			if c == target || !grid.InBounds(c) {
				continue
			}
			grid.At(c).Barrier.Trace = true
		}
	}
	drm := newOpenMatrix()
	scratch := pathfinder.NewScratch(grid)

	res, err := pathfinder.FindPath(grid, drm, scratch, gridmodel.Coord{X: 0, Y: 0, Z: 0}, target, 1, pathfinder.DefaultOptions())
	require.ErrorIs(t, err, pathfinder.ErrOpenSetExhausted)
	require.False(t, res.Found)
}
