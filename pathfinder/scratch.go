package pathfinder

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridroute/gridmodel"
)

// cellState tags a cell's membership in the current FindPath call's
// open/closed sets.
type cellState uint8

const (
	stateUnseen cellState = iota
	stateOpen
	stateClosed
)

// Scratch holds one worker goroutine's preallocated path-finder state,
// dimensioned to the full grid and reused across calls (SPEC_FULL.md §5,
// §7). A generation counter makes each FindPath call's "reset" O(1): a
// cell whose recorded generation doesn't match the current one is treated
// as never-visited without needing to rewrite the whole array.
type Scratch struct {
	grid *gridmodel.Grid

	gen        []uint32
	curGen     uint32
	which      []cellState
	gCost      []uint64
	fCost      []uint64
	parent     []int32 // flat cell index, -1 = no parent
	sortNumber []int32 // heap slot, -1 = not currently in the open heap

	heap []int32 // flat cell indices, ordered by fCost via container/heap
}

// NewScratch allocates a Scratch sized to grid. Intended to be called once
// per worker goroutine and reused for every subsequent FindPath call on
// that grid.
func NewScratch(grid *gridmodel.Grid) *Scratch {
	n := grid.Width * grid.Height * grid.Layers
	return &Scratch{
		grid:       grid,
		gen:        make([]uint32, n),
		which:      make([]cellState, n),
		gCost:      make([]uint64, n),
		fCost:      make([]uint64, n),
		parent:     make([]int32, n),
		sortNumber: make([]int32, n),
		heap:       make([]int32, 0, 256),
	}
}

// beginCall starts a fresh search generation, lazily invalidating all prior
// per-cell state and clearing the open heap. O(1).
func (s *Scratch) beginCall() {
	s.curGen++
	s.heap = s.heap[:0]
}

// touch ensures idx's per-cell state reflects the current generation,
// initializing it to "unseen, infinite cost" on first touch this call.
func (s *Scratch) touch(idx int32) {
	if s.gen[idx] != s.curGen {
		s.gen[idx] = s.curGen
		s.which[idx] = stateUnseen
		s.gCost[idx] = math.MaxUint64
		s.parent[idx] = -1
		s.sortNumber[idx] = -1
	}
}

func (s *Scratch) idx(c gridmodel.Coord) int32 {
	return int32(s.grid.Index(c.X, c.Y, c.Z))
}

// --- container/heap.Interface, operating on the flat index slice s.heap,
// ordered by s.fCost, maintaining s.sortNumber as the decrease-key side
// table (SPEC_FULL.md §4.4 "Open set").

type openHeap struct{ s *Scratch }

func (h openHeap) Len() int { return len(h.s.heap) }
func (h openHeap) Less(i, j int) bool {
	return h.s.fCost[h.s.heap[i]] < h.s.fCost[h.s.heap[j]]
}
func (h openHeap) Swap(i, j int) {
	h.s.heap[i], h.s.heap[j] = h.s.heap[j], h.s.heap[i]
	h.s.sortNumber[h.s.heap[i]] = int32(i)
	h.s.sortNumber[h.s.heap[j]] = int32(j)
}
func (h *openHeap) Push(x interface{}) {
	idx := x.(int32)
	h.s.heap = append(h.s.heap, idx)
	h.s.sortNumber[idx] = int32(len(h.s.heap) - 1)
}
func (h *openHeap) Pop() interface{} {
	old := h.s.heap
	n := len(old)
	item := old[n-1]
	h.s.heap = old[:n-1]
	h.s.sortNumber[item] = -1
	return item
}

// pushOpen adds idx to the open set/heap and marks it open.
func (s *Scratch) pushOpen(idx int32) {
	s.which[idx] = stateOpen
	heap.Push((*openHeap)(&openHeap{s: s}), idx)
}

// decreaseKey re-heapifies idx after its fCost has improved, using the
// sortNumber side table to find its current slot in O(1) rather than
// scanning the heap (SPEC_FULL.md §4.4).
func (s *Scratch) decreaseKey(idx int32) {
	slot := int(s.sortNumber[idx])
	if slot >= 0 {
		heap.Fix((*openHeap)(&openHeap{s: s}), slot)
	}
}

// popOpen removes and returns the lowest-fCost cell from the open set.
func (s *Scratch) popOpen() int32 {
	v := heap.Pop((*openHeap)(&openHeap{s: s}))
	return v.(int32)
}
