package config

// Config is the router's full set of operator-tunable knobs
// (SPEC_FULL.md §6). Load decodes the file on top of DefaultConfig, so
// fields the file omits keep their default values while fields it sets,
// zero included, replace them before validation, mirroring the pathfinder/dijkstra
// DefaultOptions-plus-Option-overrides pattern used throughout this
// module, adapted here for a file-backed rather than call-site config.
type Config struct {
	// CellSizeUM is the physical size, in micrometers, one grid cell
	// represents — used only by renderer-facing unit conversions, never by
	// the core algorithms, which operate entirely in cell units.
	CellSizeUM float64 `yaml:"cell_size_um"`

	// TraceCostMultiplier scales the path-finder's distance cost of every
	// step, via steps included (pathfinder.Options.TraceCostMultiplier).
	TraceCostMultiplier float64 `yaml:"trace_cost_multiplier"`

	// ViaCostMultiplier scales the fixed per-layer-change cost
	// (pathfinder.Options.ViaCost).
	ViaCostMultiplier float64 `yaml:"via_cost_multiplier"`

	// NumIterationsToReequilibrate is how many consecutive DRC-free
	// iterations the driver requires before declaring convergence
	// (SPEC_FULL.md §4.5/§6).
	NumIterationsToReequilibrate int `yaml:"num_iterations_to_reequilibrate"`

	// MaxRecordedDRCs caps how many DRCViolation entries routability.Evaluate
	// retains per iteration; violations found after the cap is reached are
	// not recorded
	// (SPEC_FULL.md §6 — "never mention line counts"; here it bounds memory,
	// not output).
	MaxRecordedDRCs int `yaml:"max_recorded_drcs"`

	// MaxPrintedDRCs caps how many violations the driver logs per iteration.
	MaxPrintedDRCs int `yaml:"max_printed_drcs"`

	// ParallelProcessing enables the errgroup-based worker pools in both
	// the driver's per-net routing pass and routability's per-layer scan.
	ParallelProcessing bool `yaml:"parallel_processing"`

	// NumThreads bounds how many goroutines the driver's per-net pool runs
	// concurrently; ignored when ParallelProcessing is false. routability's
	// per-layer scan is not bounded by it and runs one goroutine per layer.
	NumThreads int `yaml:"num_threads"`

	// IncreaseThreshold/DecreaseThreshold partition the
	// routability.RollRandomization dice roll (SPEC_FULL.md §8 scenario 6).
	IncreaseThreshold int `yaml:"increase_threshold"`
	DecreaseThreshold int `yaml:"decrease_threshold"`
}

// DefaultConfig returns the router's out-of-the-box knob values.
func DefaultConfig() Config {
	return Config{
		CellSizeUM:                   10.0,
		TraceCostMultiplier:          1.0,
		ViaCostMultiplier:            1.0,
		NumIterationsToReequilibrate: 5,
		MaxRecordedDRCs:              1000,
		MaxPrintedDRCs:               50,
		ParallelProcessing:           true,
		NumThreads:                   4,
		IncreaseThreshold:            25,
		DecreaseThreshold:            75,
	}
}

// Option is a functional override applied on top of DefaultConfig, for
// callers that construct a Config programmatically instead of loading one
// from a file.
type Option func(*Config)

// WithParallelProcessing overrides ParallelProcessing and NumThreads together.
func WithParallelProcessing(enabled bool, numThreads int) Option {
	return func(c *Config) {
		c.ParallelProcessing = enabled
		c.NumThreads = numThreads
	}
}

// WithTraceCostMultiplier overrides TraceCostMultiplier.
func WithTraceCostMultiplier(m float64) Option {
	return func(c *Config) {
		c.TraceCostMultiplier = m
	}
}

// WithReequilibrationWindow overrides NumIterationsToReequilibrate.
func WithReequilibrationWindow(n int) Option {
	return func(c *Config) {
		c.NumIterationsToReequilibrate = n
	}
}

// Validate checks the invariants Load cannot express through YAML
// unmarshaling alone.
func (c Config) Validate() error {
	if c.CellSizeUM <= 0 {
		return ErrBadCellSize
	}
	if c.NumIterationsToReequilibrate < 0 {
		return ErrBadReequilibrate
	}
	if c.ParallelProcessing && c.NumThreads <= 0 {
		return ErrBadThreadCount
	}
	return nil
}
