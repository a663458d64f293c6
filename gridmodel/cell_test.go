package gridmodel_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/stretchr/testify/require"
)

// TestCellAddCongestion_SaturatesAtCeiling reproduces spec.md §8's
// "Monotone congestion under repeated traversal" at the Cell level:
// repeated deposits on the same (pathID,subset,shape) key must climb
// monotonically and stop exactly at gridmodel.MaxCongestion, never wrap
// past it.
func TestCellAddCongestion_SaturatesAtCeiling(t *testing.T) {
	var c gridmodel.Cell

	c.AddCongestion(1, 0, gridmodel.Trace, gridmodel.MaxCongestion-1)
	require.Equal(t, uint32(gridmodel.MaxCongestion-1), c.Congestion[0].Traversals)

	c.AddCongestion(1, 0, gridmodel.Trace, 10)
	require.Equal(t, uint32(gridmodel.MaxCongestion), c.Congestion[0].Traversals)

	c.AddCongestion(1, 0, gridmodel.Trace, 1)
	require.Equal(t, uint32(gridmodel.MaxCongestion), c.Congestion[0].Traversals)
}

// TestCellAddCongestion_SeparateKeysGetSeparateEntries confirms distinct
// (pathID,subset,shape) triples never share an accumulator.
func TestCellAddCongestion_SeparateKeysGetSeparateEntries(t *testing.T) {
	var c gridmodel.Cell

	c.AddCongestion(1, 0, gridmodel.Trace, 50)
	c.AddCongestion(2, 0, gridmodel.Trace, 75)
	c.AddCongestion(1, 0, gridmodel.ViaUp, 20)

	require.Len(t, c.Congestion, 3)

	var pathOneTrace, pathTwoTrace, pathOneVia uint32
	for _, e := range c.Congestion {
		switch {
		case e.PathID == 1 && e.Shape == gridmodel.Trace:
			pathOneTrace = e.Traversals
		case e.PathID == 2 && e.Shape == gridmodel.Trace:
			pathTwoTrace = e.Traversals
		case e.PathID == 1 && e.Shape == gridmodel.ViaUp:
			pathOneVia = e.Traversals
		}
	}
	require.Equal(t, uint32(50), pathOneTrace)
	require.Equal(t, uint32(75), pathTwoTrace)
	require.Equal(t, uint32(20), pathOneVia)
}

// TestCellResetTransient_ClearsCongestionAndFlags confirms ResetTransient
// drops per-iteration congestion and DRC state while a fresh Cell's
// construction-time fields are untouched by either call.
func TestCellResetTransient_ClearsCongestionAndFlags(t *testing.T) {
	c := gridmodel.Cell{DesignRuleZoneID: 3}
	c.AddCongestion(1, 0, gridmodel.Trace, 100)
	c.DRCFlag = true
	c.ViaAboveDRCFlag = true

	c.ResetTransient()

	require.Empty(t, c.Congestion)
	require.False(t, c.DRCFlag)
	require.False(t, c.ViaAboveDRCFlag)
	require.Equal(t, 3, c.DesignRuleZoneID)
}
