package routability_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/pathfinder"
	"github.com/katalvlaran/gridroute/routability"
	"github.com/stretchr/testify/require"
)

// sequenceRoller returns a fixed, pre-scripted sequence of Intn results —
// deterministic stand-in for math/rand in tests.
type sequenceRoller struct {
	rolls []int
	next  int
}

func (s *sequenceRoller) Intn(n int) int {
	v := s.rolls[s.next%len(s.rolls)]
	s.next++
	return v % n
}

// TestShouldRandomize_GatesOnHistoryAndIterationCount reproduces
// SPEC_FULL.md §4.4's randomization trigger: it must stay false until both
// the iteration-count and since-last-change clauses clear, even with
// multiple paths carrying DRCs.
func TestShouldRandomize_GatesOnHistoryAndIterationCount(t *testing.T) {
	m := routability.NewRoutingMetrics()
	m.DRCCountByPath = map[int]int{1: 1, 2: 1}

	require.False(t, m.ShouldRandomize(1, 2), "too early in the run")

	for i := 0; i < 20; i++ {
		m.RecordDRCHistory([]int{1, 2})
	}
	require.True(t, m.ShouldRandomize(100, 2))
}

// TestShouldRandomize_SinglePathWithDRCsNeverFires confirms the ">1 paths
// with DRCs" clause is enforced.
func TestShouldRandomize_SinglePathWithDRCsNeverFires(t *testing.T) {
	m := routability.NewRoutingMetrics()
	m.DRCCountByPath = map[int]int{1: 1}
	for i := 0; i < 20; i++ {
		m.RecordDRCHistory([]int{1})
	}
	require.False(t, m.ShouldRandomize(100, 1))
}

// TestRollRandomization_OnlySelectsPathsClearingHistoryThreshold reproduces
// SPEC_FULL.md §8 scenario 6: a path below the 40% DRC-history threshold is
// never assigned a CongestionMode, regardless of its selection roll.
func TestRollRandomization_OnlySelectsPathsClearingHistoryThreshold(t *testing.T) {
	m := routability.NewRoutingMetrics()
	// path 1 clears the 40% threshold every iteration; path 2's history is
	// never recorded, so its fraction stays at zero.
	m.DRCCountByPath = map[int]int{1: 1, 2: 1}
	for i := 0; i < routability.PlateauWindow; i++ {
		m.RecordDRCHistory([]int{1})
	}

	roller := &sequenceRoller{rolls: []int{0, 5, 0, 5}}
	m.RollRandomization(roller, 25, 75)

	require.Equal(t, pathfinder.CongestionModeIncrease, m.RandomizeCongestion[1])
	require.Equal(t, pathfinder.CongestionModeNone, m.RandomizeCongestion[2])
}

// TestRollRandomization_SelectedPathNeverLeftNone confirms a selected path
// always lands on INCREASE or DECREASE, never the NONE zero value, even
// when the second roll falls in the threshold gap.
func TestRollRandomization_SelectedPathNeverLeftNone(t *testing.T) {
	m := routability.NewRoutingMetrics()
	m.DRCCountByPath = map[int]int{1: 1}
	for i := 0; i < routability.PlateauWindow; i++ {
		m.RecordDRCHistory([]int{1})
	}

	roller := &sequenceRoller{rolls: []int{0, 50, 1}}
	m.RollRandomization(roller, 25, 75)

	require.NotEqual(t, pathfinder.CongestionModeNone, m.RandomizeCongestion[1])
}
