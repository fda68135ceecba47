package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Decision
	}{
		{
			name:     "bare yes",
			response: "YES",
			want:     DecisionYes,
		},
		{
			name:     "bare no",
			response: "NO",
			want:     DecisionNo,
		},
		{
			name:     "yes wrapped in json",
			response: `{"is_bugfix": "YES", "reason": "stack trace present"}`,
			want:     DecisionYes,
		},
		{
			name:     "no wrapped in prose",
			response: "The answer is NO because the content describes a new feature.",
			want:     DecisionNo,
		},
		{
			name:     "both tokens is ambiguous",
			response: "YES or NO, hard to say",
			want:     DecisionUnknown,
		},
		{
			name:     "neither token",
			response: "the content describes a requirement",
			want:     DecisionUnknown,
		},
		{
			name:     "empty response",
			response: "",
			want:     DecisionUnknown,
		},
		{
			name:     "lowercase does not count",
			response: "yes",
			want:     DecisionUnknown,
		},
		{
			name:     "token embedded in word does not count",
			response: "NOTHING matches here",
			want:     DecisionUnknown,
		},
		{
			name:     "yes inside larger word ignored",
			response: "EYES on the prize, but the real answer is NO",
			want:     DecisionNo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDecision(tt.response))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "yes", DecisionYes.String())
	assert.Equal(t, "no", DecisionNo.String())
	assert.Equal(t, "unknown", DecisionUnknown.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
