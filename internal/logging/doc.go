// Package logging provides structured logging for prdsync.
//
// The Logger wraps Zap with context-aware methods that attach correlation
// fields (run ID, document name) pulled from context.Context. Output goes to
// stdout as JSON or console text, optionally teed to an OpenTelemetry log
// provider via the otelzap bridge. A redacting encoder masks secret-bearing
// fields and value patterns before they reach any sink; reconciliation
// prompts embed user-authored requirement text which may carry credentials.
package logging
