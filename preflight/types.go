package preflight

import (
	"context"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// neighborOffsets mirrors pathfinder's 18-neighborhood (4 cardinal, 4
// diagonal, 8 knight's-move, 2 vertical) — reachability must flood-fill the
// same adjacency the path-finder steps through, or a net preflight calls
// reachable could still fail to route.
var neighborOffsets = []gridmodel.Delta{
	{DX: 0, DY: -1, DZ: 0}, {DX: 0, DY: 1, DZ: 0}, {DX: 1, DY: 0, DZ: 0}, {DX: -1, DY: 0, DZ: 0},
	{DX: 1, DY: -1, DZ: 0}, {DX: -1, DY: -1, DZ: 0}, {DX: 1, DY: 1, DZ: 0}, {DX: -1, DY: 1, DZ: 0},
	{DX: 1, DY: 2, DZ: 0}, {DX: -1, DY: 2, DZ: 0}, {DX: 1, DY: -2, DZ: 0}, {DX: -1, DY: -2, DZ: 0},
	{DX: 2, DY: 1, DZ: 0}, {DX: -2, DY: 1, DZ: 0}, {DX: 2, DY: -1, DZ: 0}, {DX: -2, DY: -1, DZ: 0},
	{DX: 0, DY: 0, DZ: 1}, {DX: 0, DY: 0, DZ: -1},
}

// Options configures one Reachable or Components call.
type Options struct {
	// Ctx allows a long flood-fill over a very large grid to be cancelled.
	// Defaults to context.Background() if left nil.
	Ctx context.Context

	// OnVisit, if set, is called once per flood-filled cell — useful for a
	// caller that wants to cache the component alongside the boolean
	// answer instead of re-scanning later.
	OnVisit func(gridmodel.Coord)
}

func (o Options) ctx() context.Context {
	if o.Ctx != nil {
		return o.Ctx
	}
	return context.Background()
}
