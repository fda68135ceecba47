// Package docstore provides keyed document storage scoped to a collection.
//
// A collection is a directory relative to the workspace root (for example
// "docs" or "docs/prds"). Documents are named files within it. Saves are
// atomic (temp file + rename) and Delete of a missing document is a no-op,
// so callers can clear stale entries without an existence check first.
package docstore
