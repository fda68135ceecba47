// Package prd defines the structured Product Requirement Document schema,
// the prompt templates the oracle answers against, and the codecs that move
// PRDs between their oracle wire forms and Go values.
//
// Two wire formats exist, selected by configuration: "json" carries the
// whole document as a single JSON object wrapped in [CONTENT][/CONTENT]
// tags, and "markdown" carries it as ## sections with embedded code blocks.
// The JSON field names ("Original Requirements", "Project Name", ...) are
// the oracle contract and must not be renamed.
package prd
