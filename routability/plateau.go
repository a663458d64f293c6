package routability

import "math"

// RecordIterationCost appends one iteration's total non-pseudo path cost to
// the rolling history, trimming to the most recent PlateauWindow entries.
func (m *RoutingMetrics) RecordIterationCost(totalCost float64) {
	m.recentCost = append(m.recentCost, totalCost)
	if len(m.recentCost) > PlateauWindow {
		m.recentCost = m.recentCost[len(m.recentCost)-PlateauWindow:]
	}
}

// Plateaued reports whether the recorded cost history has gone flat: the
// window is full, the least-squares slope of cost against iteration index
// is within PlateauSlopeEpsilon of zero, AND the window's standard
// deviation is within PlateauStddevEpsilon of zero (both relative to the
// window's mean magnitude) — SPEC_FULL.md §4.5, §8 scenario 5. The slope
// check alone would mistake an oscillating-but-trendless cost history for
// convergence; requiring a tight stddev too rules that out.
func (m *RoutingMetrics) Plateaued() bool {
	if len(m.recentCost) < PlateauWindow {
		return false
	}
	mean := meanAbs(m.recentCost)
	slope := leastSquaresSlope(m.recentCost)
	if math.Abs(slope) > PlateauSlopeEpsilon*mean {
		return false
	}
	return stddev(m.recentCost) <= PlateauStddevEpsilon*mean
}

func leastSquaresSlope(ys []float64) float64 {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// stddev returns the population standard deviation of ys.
func stddev(ys []float64) float64 {
	if len(ys) == 0 {
		return 0
	}
	var sum float64
	for _, y := range ys {
		sum += y
	}
	mean := sum / float64(len(ys))
	var sqDiff float64
	for _, y := range ys {
		d := y - mean
		sqDiff += d * d
	}
	return math.Sqrt(sqDiff / float64(len(ys)))
}

func meanAbs(ys []float64) float64 {
	if len(ys) == 0 {
		return 1
	}
	var sum float64
	for _, y := range ys {
		sum += math.Abs(y)
	}
	mean := sum / float64(len(ys))
	if mean == 0 {
		return 1
	}
	return mean
}
