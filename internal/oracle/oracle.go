package oracle

import (
	"context"
	"errors"
	"regexp"
)

// Errors for oracle operations.
var (
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// Oracle accepts a prompt and returns the model's raw text response.
// No structural contract is imposed on the response beyond what each
// caller parses out of it.
type Oracle interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Decision is a constrained YES/NO answer decoded from an oracle response.
type Decision int

const (
	// DecisionUnknown means the response contained neither a clear
	// affirmative nor a clear negative. Callers fail closed on it.
	DecisionUnknown Decision = iota
	DecisionYes
	DecisionNo
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionYes:
		return "yes"
	case DecisionNo:
		return "no"
	default:
		return "unknown"
	}
}

var (
	yesPattern = regexp.MustCompile(`\bYES\b`)
	noPattern  = regexp.MustCompile(`\bNO\b`)
)

// ParseDecision decodes a YES/NO answer from free text.
//
// The prompts demand a bare YES or NO token, but models wrap answers in
// explanatory prose, so matching is on word boundaries rather than exact
// equality. A response carrying both tokens is ambiguous and decodes as
// DecisionUnknown rather than guessing.
func ParseDecision(response string) Decision {
	yes := yesPattern.MatchString(response)
	no := noPattern.MatchString(response)

	switch {
	case yes && !no:
		return DecisionYes
	case no && !yes:
		return DecisionNo
	default:
		return DecisionUnknown
	}
}
