// Package project resolves and binds the canonical project identity for a
// reconciliation run.
//
// Identity is run-scoped, not global: each run carries its own instance, so
// concurrent runs cannot observe each other's binding. Binding happens at
// most once per run. Path-derived names never trigger the rebind side
// effect; candidate-derived names trigger it exactly once.
package project
