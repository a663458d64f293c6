package driver

import (
	"log"
	"math/rand"
	"os"
	"sync"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/designrule"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
	"github.com/katalvlaran/gridroute/preflight"
	"github.com/katalvlaran/gridroute/routability"
)

// Driver owns one routing run's full mutable state: the grid, the
// precomputed design-rule matrix, the netlist, one pathfinder.Scratch per
// worker, the current iteration's routed paths, and the rolling
// routability metrics that drive plateau detection and randomization
// (SPEC_FULL.md §6.7, §7).
type Driver struct {
	Grid     *gridmodel.Grid
	DRM      *designrule.Matrix
	Registry *gridmodel.NetRegistry
	Config   config.Config
	Metrics  *routability.RoutingMetrics
	Logger   Logger

	// Paths holds every net's most recently routed path, keyed by PathID.
	// Guarded by pathsMu during the concurrent routing fan-out.
	Paths   map[int]*gridmodel.Path
	pathsMu sync.Mutex

	scratch           []*pathfinder.Scratch
	rng               *rand.Rand
	iteration         int
	iterationsDRCFree int

	// unroutable caches, per path id, the preflight.Reachable verdict for
	// that net's terminals — computed once since barrier placement never
	// changes across iterations, so there is no point re-flood-filling the
	// same answer every RunIteration call.
	unroutable map[int]bool
}

// New constructs a Driver ready to run iterations. One pathfinder.Scratch
// is preallocated per worker the config's thread count allows
// (SPEC_FULL.md §5/§7: "no allocation on the hot path").
func New(grid *gridmodel.Grid, drm *designrule.Matrix, registry *gridmodel.NetRegistry, cfg config.Config, seed int64) *Driver {
	workers := 1
	if cfg.ParallelProcessing && cfg.NumThreads > 0 {
		workers = cfg.NumThreads
	}
	scratch := make([]*pathfinder.Scratch, workers)
	for i := range scratch {
		scratch[i] = pathfinder.NewScratch(grid)
	}
	metrics := routability.NewRoutingMetrics()
	metrics.SetMaxRecorded(cfg.MaxRecordedDRCs)
	d := &Driver{
		Grid:     grid,
		DRM:      drm,
		Registry: registry,
		Config:   cfg,
		Metrics:  metrics,
		Logger:   NewDefaultLogger(log.New(os.Stderr, "", log.LstdFlags)),
		Paths:    make(map[int]*gridmodel.Path),
		scratch:  scratch,
		rng:      rand.New(rand.NewSource(seed)),
	}
	d.runPreflight()
	return d
}

// runPreflight flood-fills each net's terminals once at construction time
// and records which ones preflight.Reachable already proves unroutable
// (SPEC_FULL.md §9 kind 1/3: "log it and move on" rather than spend a full
// A* search discovering the same fact every iteration).
func (d *Driver) runPreflight() {
	d.unroutable = make(map[int]bool)
	for _, n := range d.Registry.All() {
		ok, err := preflight.Reachable(d.Grid, n.Start, n.End, gridmodel.Trace, preflight.Options{})
		if err != nil {
			d.Logger.Warnf("preflight net %d: %v", n.PathID, err)
			continue
		}
		if !ok {
			d.unroutable[n.PathID] = true
			d.Logger.Warnf("preflight net %d: start and end are not barrier-reachable", n.PathID)
		}
	}
}

// IterationsDRCFree reports how many consecutive completed iterations have
// produced zero DRC violations.
func (d *Driver) IterationsDRCFree() int { return d.iterationsDRCFree }

// Converged reports whether the driver has run at least
// Config.NumIterationsToReequilibrate consecutive DRC-free iterations, or
// the rolling cost history has gone flat.
func (d *Driver) Converged() bool {
	return d.iterationsDRCFree >= d.Config.NumIterationsToReequilibrate || d.Metrics.Plateaued()
}

func (d *Driver) setPath(pathID int, p *gridmodel.Path) {
	d.pathsMu.Lock()
	d.Paths[pathID] = p
	d.pathsMu.Unlock()
}

func (d *Driver) getPath(pathID int) (*gridmodel.Path, bool) {
	d.pathsMu.Lock()
	defer d.pathsMu.Unlock()
	p, ok := d.Paths[pathID]
	return p, ok
}
