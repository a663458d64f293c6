// Package gridroute is an iterative, congestion-aware maze router for
// multi-layer PCB grids.
//
// A routing run loads a Grid and netlist through gridmodel.Input, builds a
// design-rule matrix once with designrule.Build, then repeatedly calls
// driver.Driver.RunIteration: every net is routed with pathfinder.FindPath,
// diff-pair pseudo-nets are expanded into real shoulder paths by
// diffpair.Synthesize, the result is scored for design-rule violations and
// fed back as congestion by routability.Evaluate, and the driver decides
// whether to run another iteration or stop.
//
// Package layout:
//
//	gridmodel/    — the flat 3-D cell grid, paths, nets, I/O contracts
//	designrule/   — per-zone subset rules and the precomputed DRC/congestion matrix
//	congestion/   — per-cell saturating congestion accumulation and deposit
//	pathfinder/   — the A*/Dijkstra engine
//	routability/  — DRC scan, crossing matrix, plateau detection, randomization
//	diffpair/     — differential-pair shoulder synthesis
//	driver/       — the per-iteration orchestration loop
//	preflight/    — cheap barrier-only reachability check ahead of a full search
//	config/       — YAML-backed operator-tunable knobs
//	gridrouteerr/ — fatal algorithmic-invariant diagnostics
package gridroute
