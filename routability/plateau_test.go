package routability_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/routability"
	"github.com/stretchr/testify/require"
)

// TestPlateaued_DetectsFlatWindow reproduces SPEC_FULL.md/spec.md §8
// scenario 5: ten consecutive iterations reporting the same total cost must
// be recognized as a plateau.
func TestPlateaued_DetectsFlatWindow(t *testing.T) {
	m := routability.NewRoutingMetrics()
	for i := 0; i < routability.PlateauWindow; i++ {
		require.False(t, m.Plateaued(), "must not plateau before the window fills")
		m.RecordIterationCost(1000)
	}
	require.True(t, m.Plateaued())
}

// TestPlateaued_RejectsTrend confirms a steadily decreasing cost sequence
// (still actively improving) is not mistaken for a plateau.
func TestPlateaued_RejectsTrend(t *testing.T) {
	m := routability.NewRoutingMetrics()
	cost := 10000.0
	for i := 0; i < routability.PlateauWindow; i++ {
		m.RecordIterationCost(cost)
		cost -= 500
	}
	require.False(t, m.Plateaued())
}

// TestPlateaued_RejectsOscillationWithZeroSlope reproduces the gap a
// slope-only check would miss: a cost history that alternates high/low,
// mirrored about the window's middle, has a least-squares slope of exactly
// zero but a large standard deviation, so it must not be reported as
// plateaued.
func TestPlateaued_RejectsOscillationWithZeroSlope(t *testing.T) {
	m := routability.NewRoutingMetrics()
	for i := 0; i < routability.PlateauWindow; i++ {
		j := i
		if j >= routability.PlateauWindow/2 {
			j = routability.PlateauWindow - 1 - i
		}
		if j%2 == 0 {
			m.RecordIterationCost(1000)
		} else {
			m.RecordIterationCost(9000)
		}
	}
	require.False(t, m.Plateaued())
}
