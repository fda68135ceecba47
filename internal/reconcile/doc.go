// Package reconcile implements the requirement-to-PRD reconciliation flow.
//
// One run takes the current requirement document and the full set of
// existing PRDs and decides: bug report or feature request; which existing
// PRDs absorb the requirement versus creating a new one; and how the
// project name binds from the outcome.
//
// The flow is a small state machine. Bug routing short-circuits everything
// else. The PRD scan evaluates every existing document independently and
// never stops at the first match; several PRDs can absorb the same
// requirement in one run. A failure in one document's branch is logged and
// isolated; the remaining branches still run.
package reconcile
