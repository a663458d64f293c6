// Package preflight runs a cheap barrier-only reachability check before a
// net is handed to the full path-finder: flood-fill the grid from a
// terminal across the 18-neighborhood, stopping at direct barriers for one
// shape, and report whether another terminal is in the same component.
// This catches a net made unroutable by its own placement (walled off
// entirely) in O(Width*Height*Layers) instead of burning a full A* search
// down to open-set exhaustion to discover the same fact.
package preflight
