// Package artifacts produces derived outputs for changed PRDs: rendered
// competitive-positioning charts and exported document copies.
//
// Both side effects are best-effort. Failures are logged and swallowed;
// they never abort a reconciliation run or alter its result.
package artifacts
