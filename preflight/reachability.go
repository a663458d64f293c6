package preflight

import "github.com/katalvlaran/gridroute/gridmodel"

// Reachable flood-fills from start across cells legal for shape (not inside
// a direct barrier) and reports whether end is ever visited. It ignores
// design-rule proximity, congestion, and pin-swap legality entirely — a
// true result is necessary but not sufficient for FindPath to succeed; a
// false result means FindPath is certain to exhaust its open set, so the
// caller can skip the full search and log the net as unroutable
// immediately.
//
// Complexity: O(Width*Height*Layers) worst case, same bound as one FindPath
// call's scratch reset, but with none of A*'s per-step cost bookkeeping.
func Reachable(grid *gridmodel.Grid, start, end gridmodel.Coord, shape gridmodel.ShapeType, opts Options) (bool, error) {
	if grid.IsOutsideMap(start) {
		return false, ErrStartOutsideMap
	}
	if grid.IsOutsideMap(end) {
		return false, ErrEndOutsideMap
	}
	if start == end {
		return true, nil
	}

	ctx := opts.ctx()
	visited := make(map[gridmodel.Coord]bool)
	queue := []gridmodel.Coord{start}
	visited[start] = true

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		if opts.OnVisit != nil {
			opts.OnVisit(cur)
		}
		if cur == end {
			return true, nil
		}

		for _, d := range neighborOffsets {
			next := cur.Add(d)
			if visited[next] || grid.IsOutsideMap(next) {
				continue
			}
			if stepBlocked(grid, cur, next, shape) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false, nil
}

// stepBlocked reports whether next, or for a diagonal or knight's move
// either of the two cells bridging cur and next, is inside a direct barrier
// for shape.
func stepBlocked(grid *gridmodel.Grid, cur, next gridmodel.Coord, shape gridmodel.ShapeType) bool {
	if grid.IsInsideBarrierForShape(next, shape) {
		return true
	}
	dx, dy := next.X-cur.X, next.Y-cur.Y
	if dx == 0 || dy == 0 {
		return false
	}
	hx, hy := dx/2, dy/2
	return grid.IsInsideBarrierForShape(gridmodel.Coord{X: next.X - hx, Y: cur.Y + hy, Z: cur.Z}, shape) ||
		grid.IsInsideBarrierForShape(gridmodel.Coord{X: cur.X + hx, Y: next.Y - hy, Z: cur.Z}, shape)
}

// Components partitions every cell legal for shape into connected
// components under the same adjacency Reachable uses, returning each
// component as its member coordinates. Cells inside a direct barrier for
// shape are excluded entirely. Useful for a one-time input-validation pass
// that reports every island a badly placed barrier has isolated, rather
// than discovering them one unroutable net at a time.
//
// Complexity: O(Width*Height*Layers).
func Components(grid *gridmodel.Grid, shape gridmodel.ShapeType, opts Options) [][]gridmodel.Coord {
	ctx := opts.ctx()
	visited := make(map[gridmodel.Coord]bool)
	var components [][]gridmodel.Coord

	for z := 0; z < grid.Layers; z++ {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				start := gridmodel.Coord{X: x, Y: y, Z: z}
				if visited[start] || grid.IsInsideBarrierForShape(start, shape) {
					continue
				}
				select {
				case <-ctx.Done():
					return components
				default:
				}

				var comp []gridmodel.Coord
				queue := []gridmodel.Coord{start}
				visited[start] = true
				for len(queue) > 0 {
					cur := queue[0]
					queue = queue[1:]
					comp = append(comp, cur)
					if opts.OnVisit != nil {
						opts.OnVisit(cur)
					}
					for _, d := range neighborOffsets {
						next := cur.Add(d)
						if visited[next] || grid.IsOutsideMap(next) {
							continue
						}
						if stepBlocked(grid, cur, next, shape) {
							continue
						}
						visited[next] = true
						queue = append(queue, next)
					}
				}
				components = append(components, comp)
			}
		}
	}
	return components
}
