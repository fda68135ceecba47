package reconcile

import (
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// ChangeSet maps PRD document names to the documents created or modified
// in one reconciliation run.
type ChangeSet map[string]*prd.PRD

// BugFixRecord points at the relocated bug-report content. It is handed to
// a downstream bug-fix workflow after the run.
type BugFixRecord struct {
	// Name is the stable document name the bug report now lives under.
	Name string `json:"name"`
}

// Result is the outcome of one run: either a ChangeSet of created/merged
// PRDs, or a BugFixRecord. The two are mutually exclusive.
type Result struct {
	Changes ChangeSet
	BugFix  *BugFixRecord
}

// IsBugRoute reports whether the run was routed as a bug report.
func (r *Result) IsBugRoute() bool {
	return r.BugFix != nil
}
