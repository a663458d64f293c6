package pathfinder

import (
	"time"

	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
)

// FindPath runs one weighted A*/Dijkstra search from start to end for
// pathID, reusing scratch's per-cell arrays across calls (its open-set heap
// may grow, amortized). Each call still allocates a copy of the neighbor
// offsets, a diagnostic map for every checked cost addition, and the
// returned path. Returns the trivial
// length-1 path if start == end, the zero Result with an error if the
// endpoints are illegal, and Result{Found:false} with ErrOpenSetExhausted
// if the open set empties before reaching end — all per SPEC_FULL.md §4.4,
// §7.
func FindPath(grid *gridmodel.Grid, drm *designrule.Matrix, scratch *Scratch, start, end gridmodel.Coord, pathID int, opts Options) (Result, error) {
	var startTime time.Time
	if opts.RecordElapsedTime {
		startTime = time.Now()
	}

	if err := ValidateEndpoint(grid, drm, start, end, opts.HomeZone, opts.BaseSubset, opts.StartSwapZoneID, true); err != nil {
		return Result{}, err
	}
	if err := ValidateEndpoint(grid, drm, end, start, opts.HomeZone, opts.BaseSubset, opts.StartSwapZoneID, false); err != nil {
		return Result{}, err
	}

	if start == end {
		return Result{
			Found: true,
			Cost:  0,
			Path:  gridmodel.Path{PathID: pathID, Segments: []gridmodel.Segment{{Coord: start}}},
		}, nil
	}

	scratch.beginCall()
	neighbors := shuffledNeighbors(opts.PreviousPathCost, opts.DisableRandomCosts)

	startIdx := scratch.idx(start)
	endIdx := scratch.idx(end)
	scratch.touch(startIdx)
	scratch.gCost[startIdx] = 0
	scratch.fCost[startIdx] = heuristic(start, end, opts)
	scratch.pushOpen(startIdx)

	explored := 0
	for len(scratch.heap) > 0 {
		curIdx := scratch.popOpen()
		if scratch.which[curIdx] == stateClosed {
			continue
		}
		scratch.which[curIdx] = stateClosed
		explored++
		cur := grid.Coordinate(int(curIdx))

		if opts.RecordExplored {
			cell := grid.At(cur)
			cell.Explored = true
		}

		if curIdx == endIdx {
			result := reconstructPath(grid, scratch, pathID, startIdx, endIdx)
			if opts.RecordElapsedTime {
				result.Explored = explored
				result.Elapsed = time.Since(startTime)
			} else {
				result.Explored = explored
			}
			return result, nil
		}

		for _, d := range neighbors {
			next := cur.Add(d)
			if !legalStep(grid, drm, cur, next, end, d, opts.HomeZone, opts.BaseSubset, opts.StartSwapZoneID, opts.Restriction) {
				continue
			}
			nextIdx := scratch.idx(next)
			scratch.touch(nextIdx)
			if scratch.which[nextIdx] == stateClosed {
				continue
			}

			step := edgeCost(grid, drm, cur, next, pathID, opts)
			tentativeG := addChecked(scratch.gCost[curIdx], step, pathID, map[string]interface{}{"from": cur, "to": next})

			if scratch.which[nextIdx] == stateUnseen {
				scratch.gCost[nextIdx] = tentativeG
				scratch.fCost[nextIdx] = addChecked(tentativeG, heuristic(next, end, opts), pathID, map[string]interface{}{"at": next})
				scratch.parent[nextIdx] = curIdx
				scratch.pushOpen(nextIdx)
			} else if tentativeG < scratch.gCost[nextIdx] {
				scratch.gCost[nextIdx] = tentativeG
				scratch.fCost[nextIdx] = addChecked(tentativeG, heuristic(next, end, opts), pathID, map[string]interface{}{"at": next})
				scratch.parent[nextIdx] = curIdx
				scratch.decreaseKey(nextIdx)
			}
		}
	}

	result := Result{Found: false, Explored: explored}
	if opts.RecordElapsedTime {
		result.Elapsed = time.Since(startTime)
	}
	return result, ErrOpenSetExhausted
}

// reconstructPath walks parent back-pointers from end to start and reverses
// them into a forward coordinate sequence.
func reconstructPath(grid *gridmodel.Grid, scratch *Scratch, pathID int, startIdx, endIdx int32) Result {
	var rev []gridmodel.Coord
	for idx := endIdx; ; idx = scratch.parent[idx] {
		rev = append(rev, grid.Coordinate(int(idx)))
		if idx == startIdx {
			break
		}
	}
	segs := make([]gridmodel.Segment, len(rev))
	for i, c := range rev {
		segs[len(rev)-1-i] = gridmodel.Segment{Coord: c}
	}
	return Result{
		Found: true,
		Cost:  scratch.gCost[endIdx],
		Path:  gridmodel.Path{PathID: pathID, Segments: segs, Cost: scratch.gCost[endIdx]},
	}
}
