package gridmodel

// Segment is one coordinate of a routed path together with the flag that,
// per SPEC_FULL.md §3, exempts it from the legal-move-delta invariant: a
// manually inserted anchor point need not be reachable from its predecessor
// by a single legal step, and must never be pruned by the diff-pair
// synthesizer.
type Segment struct {
	Coord Coord
	Flag  bool
}

// Path is the ordered sequence of cells a routed net occupies, as returned
// by the path-finder and as mutated in place by the diff-pair synthesizer.
type Path struct {
	PathID   int
	Segments []Segment
	Cost     uint64
}

// Coords returns just the coordinate sequence, dropping per-segment flags.
func (p *Path) Coords() []Coord {
	out := make([]Coord, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.Coord
	}
	return out
}

// Len reports the number of segments in the path.
func (p *Path) Len() int {
	return len(p.Segments)
}

// DedupeAdjacent merges adjacent segments sharing the same coordinate,
// shortening the path in place. Used by the diff-pair synthesizer after
// every mutation (SPEC_FULL.md §6.6 step 6) and safe to call on any path.
// A merged segment keeps Flag=true if either contributor was flagged, so
// an anchor is never silently dropped.
func (p *Path) DedupeAdjacent() {
	if len(p.Segments) == 0 {
		return
	}
	out := p.Segments[:1]
	for _, s := range p.Segments[1:] {
		last := &out[len(out)-1]
		if last.Coord == s.Coord {
			last.Flag = last.Flag || s.Flag
			continue
		}
		out = append(out, s)
	}
	p.Segments = out
}

// ShapeAt reports the shape a step from p.Segments[i-1] to p.Segments[i]
// represents: Trace for a same-layer move, ViaUp/ViaDown for a layer
// change. i must be >= 1.
func (p *Path) ShapeAt(i int) ShapeType {
	dz := p.Segments[i].Coord.Z - p.Segments[i-1].Coord.Z
	switch {
	case dz > 0:
		return ViaUp
	case dz < 0:
		return ViaDown
	default:
		return Trace
	}
}
