// Package designrule precomputes, for every pair of (zone, subset, shape)
// combinations, the DRC radius (the distance within which two shapes'
// centers constitute a design-rule violation), the congestion radius (the
// distance within which one shape should receive congestion from another's
// presence), their squared forms (to avoid sqrt in hot loops), and the
// foreign-subset translation a net uses when its path crosses into a
// different zone.
//
// The matrix is built once at startup from a parser-supplied ZoneRule per
// zone (radius/spacing/allowed-directions policy, SPEC_FULL.md §4.3) and is
// read-only for the remainder of the process — the same "build once, read
// forever" lifecycle as gridmodel.Grid.
package designrule
