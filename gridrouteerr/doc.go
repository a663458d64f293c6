// Package gridrouteerr implements the fatal-error kind of SPEC_FULL.md §9's
// three-way error taxonomy: algorithmic failures (cost overflow, a cell
// exceeding MaxTraversingShapes, a gap-fill radius exceeding the map
// diagonal) that must abort the process with a diagnostic naming the path,
// cell, and intermediate cost components involved. These are never
// recovered inside the core.
package gridrouteerr
