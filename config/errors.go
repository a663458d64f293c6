package config

import "errors"

var (
	// ErrBadCellSize indicates CellSizeUM was zero or negative.
	ErrBadCellSize = errors.New("config: cell_size_um must be positive")

	// ErrBadReequilibrate indicates NumIterationsToReequilibrate was negative.
	ErrBadReequilibrate = errors.New("config: num_iterations_to_reequilibrate must be non-negative")

	// ErrBadThreadCount indicates NumThreads was zero or negative while
	// ParallelProcessing is enabled.
	ErrBadThreadCount = errors.New("config: num_threads must be positive when parallel_processing is enabled")
)
