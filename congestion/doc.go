// Package congestion deposits and reads back per-cell congestion cost: the
// penalty the path-finder adds to a candidate step so that repeatedly
// routing through, or near, already-occupied territory becomes
// progressively more expensive. Deposits happen around a routed path's
// centerline and around terminals (SPEC_FULL.md §4.2); reads happen inside
// the path-finder's edge-cost computation.
package congestion
