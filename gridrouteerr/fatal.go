package gridrouteerr

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Fatal is the payload carried by a panic raised for an algorithmic failure
// (SPEC_FULL.md §7 kind 2). Callers at the top of the driver loop are
// expected to recover only to attach process-exit diagnostics, never to
// paper over the failure and continue.
type Fatal struct {
	// Reason names the specific invariant that broke, e.g. "cost overflow"
	// or "MaxTraversingShapes exceeded".
	Reason string
	// PathID identifies the path being processed when the failure was
	// detected, or -1 if not path-specific.
	PathID int
	// Detail is an arbitrary structured payload (the cell, the intermediate
	// cost components, the gap endpoints, ...) dumped verbatim for
	// diagnosis.
	Detail interface{}
}

func (f *Fatal) Error() string {
	return fmt.Sprintf("gridroute: fatal: %s (path %d)\n%s", f.Reason, f.PathID, spew.Sdump(f.Detail))
}

// Raise panics with a *Fatal built from the given reason, path id, and
// diagnostic detail. Used at every algorithmic-failure site named in
// SPEC_FULL.md §7 kind 2.
func Raise(reason string, pathID int, detail interface{}) {
	panic(&Fatal{Reason: reason, PathID: pathID, Detail: detail})
}
