// Package oracle provides the text-generation oracle used for all
// natural-language decisions and document generation.
//
// The Oracle interface is a single Ask call; everything callers know about
// the response is what they parse out of it themselves. The concrete Client
// wraps a langchaingo model and owns request pacing (rate limit plus a
// concurrency gate) since retry/backoff/timeout policy belongs to the
// oracle collaborator, not to the reconciliation core.
//
// ParseDecision decodes constrained YES/NO answers. Responses that contain
// neither token, or both, decode as DecisionUnknown; callers treat Unknown
// as the negative outcome (fail-closed).
package oracle
