// Package routability implements the evaluator that runs once all nets are
// routed each iteration: it projects every path to its contiguous cell
// footprint, marks centerlines, scans each layer for design-rule
// violations (DRC cells), updates the crossing matrix and per-path/per-
// layer DRC counts, optionally deposits congestion, detects cost-plateau
// convergence, and rolls the dice for next iteration's per-path
// randomize_congestion assignment.
//
// The per-layer scan is parallelized across (y,x): see Evaluate's use of
// golang.org/x/sync/errgroup, grounded on that package's presence in the
// pack (an indirect dependency of janpfeifer-go-highway). Each goroutine
// owns a disjoint set of layers and accumulates into its own counters,
// merged into the shared RoutingMetrics once the goroutine returns
// (SPEC_FULL.md §7: "shared writable state ... confined to the single
// thread that owns the current (y,x,z)").
package routability
