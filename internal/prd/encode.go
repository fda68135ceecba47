package prd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode renders the PRD in the given wire format for storage. Stored
// content round-trips through Parse, which is what makes merge writes
// wholesale replacements rather than patches.
func (p *PRD) Encode(format Format) (string, error) {
	switch format {
	case FormatJSON:
		return p.EncodeJSON()
	case FormatMarkdown:
		return p.EncodeMarkdown()
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// EncodeJSON renders the PRD as an indented JSON object.
func (p *PRD) EncodeJSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode PRD: %w", err)
	}
	return string(data), nil
}

// EncodeMarkdown renders the PRD in the ## section layout.
func (p *PRD) EncodeMarkdown() (string, error) {
	var sb strings.Builder

	writePlain := func(name, value string) {
		sb.WriteString("## " + name + "\n")
		sb.WriteString(value + "\n\n")
	}
	writeFenced := func(name, lang, value string) {
		sb.WriteString("## " + name + "\n")
		sb.WriteString("```" + lang + "\n")
		sb.WriteString(value + "\n")
		sb.WriteString("```\n\n")
	}
	writeList := func(name string, v interface{}) error {
		data, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		writeFenced(name, "python", string(data))
		return nil
	}

	writePlain("Language", p.Language)
	writePlain("Original Requirements", p.OriginalRequirements)
	writePlain("Project Name", p.ProjectName)
	if err := writeList("Product Goals", orEmpty(p.ProductGoals)); err != nil {
		return "", err
	}
	if err := writeList("User Stories", orEmpty(p.UserStories)); err != nil {
		return "", err
	}
	if err := writeList("Competitive Analysis", orEmpty(p.CompetitiveAnalysis)); err != nil {
		return "", err
	}
	writeFenced("Competitive Quadrant Chart", "mermaid", p.CompetitiveQuadrantChart)
	writePlain("Requirement Analysis", p.RequirementAnalysis)

	pool := p.RequirementPool
	if pool == nil {
		pool = []PoolEntry{}
	}
	if err := writeList("Requirement Pool", pool); err != nil {
		return "", err
	}

	writePlain("UI Design draft", p.UIDesignDraft)
	writePlain("Anything UNCLEAR", p.AnythingUnclear)

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

// orEmpty keeps encoded lists as [] instead of null.
func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
