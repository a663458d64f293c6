// Package pathfinder implements the weighted 3-D path-finder: an A* search
// (with an optional Dijkstra mode) over the 18-neighborhood of each grid
// cell, honoring barriers, pin-swap zones, per-zone route-direction
// constraints, and an optional spatial restriction disk per layer.
//
// The public entry point is FindPath. Each call reuses a caller-owned
// Scratch — the open-set heap, the side table mapping a cell to its heap
// slot, per-cell g/h costs, parent back-pointers, and open/closed
// membership — all dimensioned to the full grid and allocated once per
// worker goroutine (SPEC_FULL.md §7), never per call. Scratch uses a
// generation counter so that a new FindPath call is O(1) to "reset": cells
// touched by a stale generation are treated as never-visited without
// rewriting the whole grid.
//
// Complexity: O(N log N) where N is the number of cells explored before the
// target is reached or the open set empties, using a binary heap with
// O(log N) push/decrease-key via the sortNumber side table.
package pathfinder
