// Package diffpair synthesizes a differential pair's two real-net shoulder
// paths from a routed pseudo-net centerline: it offsets the centerline by
// the pair's pitch, pairs up via stacks between the centerline and each
// shoulder (escalating through fallback search rings when the naive offset
// site is illegal), prunes shoulder cells too close to a via, terminal, or
// design-rule zone boundary, closes any resulting gap (a closed-form
// straight-line heuristic for short gaps, a restricted path-finder retry
// with a growing search radius otherwise), and finally searches for a
// cheaper P/N terminal assignment — per subsection via a bounded sub-map
// path-finder swap search, and globally for the whole pair.
package diffpair
