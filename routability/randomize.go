package routability

import (
	"math"

	"github.com/katalvlaran/gridroute/pathfinder"
)

// Roller supplies a uniform random integer in [0,n). The driver passes a
// seeded *rand.Rand so a given iteration's rolls are reproducible from that
// iteration's seed, consistent with the router's broader determinism
// discipline (SPEC_FULL.md §9).
type Roller interface {
	Intn(n int) int
}

// RecordDRCHistory appends this iteration's per-path DRC occurrence (read
// from the already-populated DRCCountByPath) to each path's rolling
// PlateauWindow-sized history and advances iterationsSinceChange —
// SPEC_FULL.md §4.4's recent_path_DRC_cells ring buffer.
func (m *RoutingMetrics) RecordDRCHistory(pathIDs []int) {
	for _, id := range pathIDs {
		had := m.DRCCountByPath[id] > 0
		hist := append(m.pathDRCHistory[id], had)
		if len(hist) > PlateauWindow {
			hist = hist[len(hist)-PlateauWindow:]
		}
		m.pathDRCHistory[id] = hist
	}
	m.iterationsSinceChange++
}

// DRCHistoryFraction reports the fraction of the recorded history window in
// which pathID carried at least one DRC.
func (m *RoutingMetrics) DRCHistoryFraction(pathID int) float64 {
	hist := m.pathDRCHistory[pathID]
	if len(hist) == 0 {
		return 0
	}
	n := 0
	for _, had := range hist {
		if had {
			n++
		}
	}
	return float64(n) / float64(len(hist))
}

// PathsWithDRCs returns the path IDs carrying at least one DRC in the
// current iteration's counts.
func (m *RoutingMetrics) PathsWithDRCs() []int {
	out := make([]int, 0, len(m.DRCCountByPath))
	for id, n := range m.DRCCountByPath {
		if n > 0 {
			out = append(out, id)
		}
	}
	return out
}

// ShouldRandomize reports whether RollRandomization should run this
// iteration — SPEC_FULL.md §4.4's "Randomization trigger": more than one
// path currently carries a DRC, the iteration count has passed
// 20*log10(numPaths), and at least 1.5*PlateauWindow iterations have
// elapsed since the last time randomization actually reassigned a path.
func (m *RoutingMetrics) ShouldRandomize(iteration, numPaths int) bool {
	if len(m.PathsWithDRCs()) <= 1 || numPaths <= 1 {
		return false
	}
	if float64(iteration) <= 20*math.Log10(float64(numPaths)) {
		return false
	}
	return float64(m.iterationsSinceChange) >= 1.5*float64(PlateauWindow)
}

// RollRandomization assigns a fresh CongestionMode to every path that both
// clears DRCHistoryThreshold and wins its selection roll, drawn with
// probability roughly inversely proportional to the number of paths
// currently carrying a DRC (SPEC_FULL.md §4.4/§8 scenario 6). A selected
// path is independently assigned INCREASE or DECREASE by a second roll
// partitioned at increaseThreshold/decreaseThreshold, with the middle band
// (neither clause firing) broken by a coin flip so a selected path always
// ends up with one of the two modes, never NONE. Callers must gate this
// call on ShouldRandomize.
func (m *RoutingMetrics) RollRandomization(roller Roller, increaseThreshold, decreaseThreshold int) {
	pathsWithDRCs := m.PathsWithDRCs()
	if len(pathsWithDRCs) == 0 {
		return
	}
	selectionChance := RandomizationDenominator / len(pathsWithDRCs)

	changed := false
	for _, id := range pathsWithDRCs {
		if m.DRCHistoryFraction(id) < DRCHistoryThreshold {
			continue
		}
		if roller.Intn(RandomizationDenominator) >= selectionChance {
			continue
		}

		roll := roller.Intn(RandomizationDenominator)
		switch {
		case roll < increaseThreshold:
			m.RandomizeCongestion[id] = pathfinder.CongestionModeIncrease
		case roll >= decreaseThreshold:
			m.RandomizeCongestion[id] = pathfinder.CongestionModeDecrease
		case roller.Intn(2) == 0:
			m.RandomizeCongestion[id] = pathfinder.CongestionModeIncrease
		default:
			m.RandomizeCongestion[id] = pathfinder.CongestionModeDecrease
		}
		changed = true
	}
	if changed {
		m.iterationsSinceChange = 0
	}
}
