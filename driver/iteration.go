package driver

import (
	"context"

	"github.com/katalvlaran/gridroute/diffpair"
	"github.com/katalvlaran/gridroute/gridmodel"
	"github.com/katalvlaran/gridroute/pathfinder"
	"github.com/katalvlaran/gridroute/routability"
	"golang.org/x/sync/errgroup"
)

// IterationSummary reports one RunIteration call's outcome.
type IterationSummary struct {
	Iteration int
	TotalCost uint64
	DRCCount  int
	Converged bool
}

// RunIteration executes one full rip-up-reroute pass: reset transient grid
// state, route every user net and pseudo-net concurrently, expand each
// routed pseudo-net into its two real shoulder paths, evaluate the result
// for design-rule violations while depositing congestion, and roll the
// next iteration's per-path randomization (SPEC_FULL.md §6.7).
func (d *Driver) RunIteration(ctx context.Context) (IterationSummary, error) {
	d.iteration++
	d.Grid.ResetTransient()

	nets := d.Registry.All()
	if err := d.routeNets(ctx, nets); err != nil {
		return IterationSummary{}, err
	}
	if err := d.expandPseudoNets(nets); err != nil {
		return IterationSummary{}, err
	}

	d.Metrics.ResetCounts()
	if err := routability.Evaluate(d.Grid, d.DRM, d.Registry, d.Paths, d.Metrics, routability.EvaluateOptions{
		AddCongestion: true,
		Parallel:      d.Config.ParallelProcessing,
	}); err != nil {
		return IterationSummary{}, err
	}

	var totalCost uint64
	pathIDs := make([]int, 0, len(d.Paths))
	for id, p := range d.Paths {
		pathIDs = append(pathIDs, id)
		if n, ok := d.Registry.Get(id); ok && n.Kind == gridmodel.UserNet {
			totalCost += p.Cost
		}
	}
	d.Metrics.RecordIterationCost(float64(totalCost))
	d.Metrics.RecordDRCHistory(pathIDs)
	if d.Metrics.ShouldRandomize(d.iteration, len(pathIDs)) {
		d.Metrics.RollRandomization(d.rng, d.Config.IncreaseThreshold, d.Config.DecreaseThreshold)
	}

	drcCount := len(d.Metrics.Violations)
	if drcCount == 0 {
		d.iterationsDRCFree++
		d.Logger.Infof("iteration %d: DRC-free (%d consecutive)", d.iteration, d.iterationsDRCFree)
	} else {
		d.iterationsDRCFree = 0
		printed := drcCount
		if d.Config.MaxPrintedDRCs > 0 && printed > d.Config.MaxPrintedDRCs {
			printed = d.Config.MaxPrintedDRCs
		}
		for _, v := range d.Metrics.Violations[:printed] {
			d.Logger.Warnf("DRC %s between path %d and path %d at %v/%v", v.Category, v.PathA, v.PathB, v.CellA, v.CellB)
		}
	}

	return IterationSummary{
		Iteration: d.iteration,
		TotalCost: totalCost,
		DRCCount:  drcCount,
		Converged: d.Converged(),
	}, nil
}

// pathfinderOptions builds the FindPath options common to every net this
// iteration, layering in the net's own home zone, subset, previous cost, and
// randomize_congestion assignment.
func (d *Driver) pathfinderOptions(n gridmodel.NetInfo) pathfinder.Options {
	opts := pathfinder.DefaultOptions()
	opts.TraceCostMultiplier = d.Config.TraceCostMultiplier
	opts.ViaCost = d.Config.ViaCostMultiplier
	opts.HomeZone = d.Grid.DesignRuleZone(n.Start)
	opts.BaseSubset = n.BaseSubset
	opts.CongestionMode = d.Metrics.RandomizeCongestion[n.PathID]
	if prev, ok := d.getPath(n.PathID); ok {
		opts.PreviousPathCost = int64(prev.Cost)
	}
	if _, swapID := d.Grid.InPinSwapZone(n.Start); swapID > 0 {
		opts.StartSwapZoneID = swapID
	}
	return opts
}

// routeNets runs FindPath for every net — user nets routed directly,
// pseudo-nets routed along their centerline — fanned out across the
// driver's worker pool via errgroup. Each worker claims a scratch slot from
// a small channel-backed semaphore and releases it on completion; writes to
// the shared path map are serialized through setPath.
func (d *Driver) routeNets(ctx context.Context, nets []gridmodel.NetInfo) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(len(d.scratch))
	slots := make(chan int, len(d.scratch))
	for i := range d.scratch {
		slots <- i
	}

	for _, n := range nets {
		n := n
		if d.unroutable[n.PathID] {
			continue
		}
		g.Go(func() error {
			worker := <-slots
			defer func() { slots <- worker }()

			opts := d.pathfinderOptions(n)
			res, err := pathfinder.FindPath(d.Grid, d.DRM, d.scratch[worker], n.Start, n.End, n.PathID, opts)
			if err != nil {
				if isRecoverableRoutingError(err) {
					d.Logger.Warnf("net %d: %v (explored=%d)", n.PathID, err, res.Explored)
					return nil
				}
				return err
			}
			path := res.Path
			d.setPath(n.PathID, &path)
			return nil
		})
	}
	return g.Wait()
}

// isRecoverableRoutingError reports whether err is one of the per-net
// "log it and move on" conditions (SPEC_FULL.md §9 kinds 1 and 3) rather
// than a condition that should abort the whole iteration.
func isRecoverableRoutingError(err error) bool {
	switch err {
	case pathfinder.ErrStartOutsideMap, pathfinder.ErrEndOutsideMap,
		pathfinder.ErrStartIllegal, pathfinder.ErrEndIllegal,
		pathfinder.ErrOpenSetExhausted:
		return true
	default:
		return false
	}
}

// expandPseudoNets runs the diff-pair synthesizer on every routed
// pseudo-net, replacing its two real nets' entries in d.Paths with the
// synthesized shoulder paths. Runs sequentially after routeNets' barrier so
// every pseudo-net's centerline is already settled; each pseudo-net takes
// two scratch buffers from the pool by index (the same buffer for both when
// the pool holds only one).
func (d *Driver) expandPseudoNets(nets []gridmodel.NetInfo) error {
	for i, n := range nets {
		if n.Kind != gridmodel.PseudoNet {
			continue
		}
		pseudo, ok := d.getPath(n.PathID)
		if !ok {
			continue
		}
		n1ID, n2ID, ok := d.Registry.DiffPairOf(n.PathID)
		if !ok {
			continue
		}
		netP, _ := d.Registry.Get(n1ID)
		netN, _ := d.Registry.Get(n2ID)

		scratchP := d.scratch[i%len(d.scratch)]
		scratchN := d.scratch[(i+1)%len(d.scratch)]

		opts := diffpair.DefaultOptions()
		opts.AllowGlobalPNSwap = n.PNSwappable

		pfOpts := d.pathfinderOptions(n)
		res, err := diffpair.Synthesize(d.Grid, d.DRM, scratchP, scratchN, pseudo, netP, netN, opts, pfOpts)
		if err != nil {
			return err
		}

		if opts.AllowGlobalPNSwap {
			swappedNetP, swappedNetN := netP, netN
			swappedNetP.Start, swappedNetP.End = netN.Start, netN.End
			swappedNetN.Start, swappedNetN.End = netP.Start, netP.End

			swappedRes, swapErr := diffpair.Synthesize(d.Grid, d.DRM, scratchP, scratchN, pseudo, swappedNetP, swappedNetN, opts, pfOpts)
			if swapErr == nil {
				costOriginal := pathfinder.PathCost(d.Grid, d.DRM, res.PathP.Coords(), n1ID, pfOpts) +
					pathfinder.PathCost(d.Grid, d.DRM, res.PathN.Coords(), n2ID, pfOpts)
				costSwapped := pathfinder.PathCost(d.Grid, d.DRM, swappedRes.PathP.Coords(), n1ID, pfOpts) +
					pathfinder.PathCost(d.Grid, d.DRM, swappedRes.PathN.Coords(), n2ID, pfOpts)

				swapped := diffpair.SwapGlobalPN(costOriginal, costSwapped)
				if swapped {
					res = swappedRes
				}
				d.Registry.SetTermsSwapped(n.PathID, swapped)
			}
		}

		d.setPath(n1ID, res.PathP)
		d.setPath(n2ID, res.PathN)
	}
	return nil
}
