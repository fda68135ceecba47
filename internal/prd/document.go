package prd

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Field limits imposed on oracle output. Overruns are clamped, not rejected.
const (
	MaxProductGoals        = 3
	MaxUserStories         = 5
	MaxCompetitiveAnalysis = 8
)

// Format selects the PRD wire format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Valid reports whether f is a recognized format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatMarkdown
}

// Suffix returns the file suffix for documents stored in this format.
func (f Format) Suffix() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".json"
}

// PoolEntry is one prioritized requirement in the requirement pool.
type PoolEntry struct {
	Priority    string // P0 / P1 / P2
	Description string
}

// priorityPattern recognizes a priority tag.
var priorityPattern = regexp.MustCompile(`^P[0-9]$`)

// MarshalJSON encodes the entry as a two-element array, priority first.
func (e PoolEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Priority, e.Description})
}

// UnmarshalJSON decodes a two-element array in either order.
//
// The oracle contract states [priority, description] but its own format
// example shows [description, priority]; real responses use both. Whichever
// element looks like a P0/P1/P2 tag is taken as the priority.
func (e *PoolEntry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("requirement pool entry must have 2 elements, got %d", len(pair))
	}

	if priorityPattern.MatchString(pair[0]) || !priorityPattern.MatchString(pair[1]) {
		e.Priority = pair[0]
		e.Description = pair[1]
	} else {
		e.Priority = pair[1]
		e.Description = pair[0]
	}
	return nil
}

// PRD is the structured Product Requirement Document.
//
// JSON keys follow the oracle contract exactly.
type PRD struct {
	Language                 string      `json:"Language"`
	OriginalRequirements     string      `json:"Original Requirements"`
	ProjectName              string      `json:"Project Name"`
	SearchInformation        string      `json:"Search Information,omitempty"`
	Requirements             string      `json:"Requirements,omitempty"`
	ProductGoals             []string    `json:"Product Goals"`
	UserStories              []string    `json:"User Stories"`
	CompetitiveAnalysis      []string    `json:"Competitive Analysis"`
	CompetitiveQuadrantChart string      `json:"Competitive Quadrant Chart"`
	RequirementAnalysis      string      `json:"Requirement Analysis"`
	RequirementPool          []PoolEntry `json:"Requirement Pool"`
	UIDesignDraft            string      `json:"UI Design draft"`
	AnythingUnclear          string      `json:"Anything UNCLEAR"`
}

// Normalize clamps list fields to their limits.
func (p *PRD) Normalize() {
	if len(p.ProductGoals) > MaxProductGoals {
		p.ProductGoals = p.ProductGoals[:MaxProductGoals]
	}
	if len(p.UserStories) > MaxUserStories {
		p.UserStories = p.UserStories[:MaxUserStories]
	}
	if len(p.CompetitiveAnalysis) > MaxCompetitiveAnalysis {
		p.CompetitiveAnalysis = p.CompetitiveAnalysis[:MaxCompetitiveAnalysis]
	}
}
