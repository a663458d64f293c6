// Package gridmodel defines the 3-D routing grid, its packed per-cell
// bit-fields, the routed-path and via-stack types, and the read-only
// predicates the path-finder and routability evaluator rely on.
//
// The grid is immutable after construction except for the per-iteration
// reset of transient per-cell fields (Explored, ExploredPP, DRCFlag,
// PathCenters, Congestion) — see Grid.ResetTransient. Addressing is flat:
// cell (x,y,z) lives at index x + W*y + W*H*z, matching the design note in
// SPEC_FULL.md §5 (a single growable slice rather than a pointer-chased
// 3-D array).
//
// Complexity:
//
//   - Cell lookups, predicate checks: O(1).
//   - Grid construction: O(W*H*L).
//
// Concurrency:
//
//	Reads of zone/barrier/pin-swap fields are safe from any number of
//	goroutines once construction has finished (the grid is read-only for
//	those fields for the remainder of the process). Writes to Explored/
//	ExploredPP during path-finding and writes to Congestion/DRCFlag during
//	the routability scan are confined per SPEC_FULL.md §7 to the single
//	goroutine owning that cell/path at the time; see driver and routability
//	for the partitioning that makes this safe without per-cell locks.
package gridmodel
