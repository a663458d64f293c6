package gridmodel

// ViaStack describes a contiguous run of a path's segments that share (x,y)
// and span two or more layers — a via climbing through the stack-up.
// StartSegment == -1 denotes that the stack begins at the path's start
// terminal rather than at an interior segment index.
type ViaStack struct {
	PathID       int
	StartSegment int
	EndSegment   int
	StartCoord   Coord
	EndCoord     Coord
	EndShape     ShapeType
	IsVertical   bool
	Error        bool
}

// FindViaStacks scans a path and returns every maximal run of segments
// sharing (x,y) whose Z spans at least two layers. Complexity: O(len(path)).
func FindViaStacks(p *Path) []ViaStack {
	var stacks []ViaStack
	segs := p.Segments
	n := len(segs)
	i := 0
	for i < n {
		j := i
		for j+1 < n && segs[j+1].Coord.X == segs[i].Coord.X && segs[j+1].Coord.Y == segs[i].Coord.Y {
			j++
		}
		if j > i {
			start := i - 1
			shape := ViaUp
			if segs[j].Coord.Z < segs[i].Coord.Z {
				shape = ViaDown
			}
			stacks = append(stacks, ViaStack{
				PathID:       p.PathID,
				StartSegment: start,
				EndSegment:   j,
				StartCoord:   segs[i].Coord,
				EndCoord:     segs[j].Coord,
				EndShape:     shape,
				IsVertical:   true,
			})
		}
		i = j + 1
	}
	return stacks
}
