// Package driver runs the iterative rip-up-reroute loop: reset per-
// iteration transient grid state, route every net (user nets and diff-pair
// pseudo-nets) concurrently across a worker pool, expand each routed
// pseudo-net into its two real shoulder paths, evaluate the result for
// design-rule violations and deposit congestion, then decide whether the
// routing has converged.
//
// Concurrency follows SPEC_FULL.md §7: a fixed pool of
// golang.org/x/sync/errgroup workers, each holding its own preallocated
// pathfinder.Scratch so no goroutine ever allocates the O(Width*Height*
// Layers) working set FindPath needs, and a mutex-guarded path map as the
// only state shared across workers during the routing fan-out.
package driver
