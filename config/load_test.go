package config_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridroute/config"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_DefaultsWhenFieldsOmitted(t *testing.T) {
	cfg, err := config.LoadFrom(strings.NewReader(`trace_cost_multiplier: 2.5`))
	require.NoError(t, err)
	require.Equal(t, 2.5, cfg.TraceCostMultiplier)
	require.Equal(t, config.DefaultConfig().CellSizeUM, cfg.CellSizeUM)
}

func TestLoadFrom_OptionsOverrideFile(t *testing.T) {
	cfg, err := config.LoadFrom(strings.NewReader(`num_iterations_to_reequilibrate: 9`),
		config.WithReequilibrationWindow(3))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.NumIterationsToReequilibrate)
}

func TestLoadFrom_RejectsBadCellSize(t *testing.T) {
	_, err := config.LoadFrom(strings.NewReader(`cell_size_um: -1`))
	require.ErrorIs(t, err, config.ErrBadCellSize)
}

func TestLoadFrom_RejectsParallelWithoutThreads(t *testing.T) {
	_, err := config.LoadFrom(strings.NewReader("parallel_processing: true\nnum_threads: 0\n"))
	require.ErrorIs(t, err, config.ErrBadThreadCount)
}
