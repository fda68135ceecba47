package prd

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse indicates the structured PRD could not be extracted from the
// oracle's response text.
var ErrParse = errors.New("failed to parse PRD from oracle response")

var (
	contentTagPattern  = regexp.MustCompile(`(?s)\[CONTENT\](.*)\[/CONTENT\]`)
	jsonFencePattern   = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")
	trailingCommaFixup = regexp.MustCompile(`,\s*([}\]])`)
	sectionHeader      = regexp.MustCompile(`^##\s+(.+?):?\s*$`)
	fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\n(.*?)```")
	projectNameJSONKey = regexp.MustCompile(`"Project Name"\s*:\s*"([^"]*)"`)
)

// Parse decodes a PRD from an oracle response in the given format.
func Parse(format Format, text string) (*PRD, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(text)
	case FormatMarkdown:
		return ParseMarkdown(text)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrParse, format)
	}
}

// ParseJSON extracts the single JSON block from a response and decodes it.
//
// The block may be wrapped in [CONTENT][/CONTENT] tags, a ```json fence, or
// appear bare; whichever is found first wins, in that order.
func ParseJSON(text string) (*PRD, error) {
	block, ok := extractJSONBlock(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON block found", ErrParse)
	}

	var p PRD
	if err := json.Unmarshal([]byte(block), &p); err != nil {
		// Models frequently emit trailing commas; retry with them removed
		fixed := trailingCommaFixup.ReplaceAllString(block, "$1")
		if err2 := json.Unmarshal([]byte(fixed), &p); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	p.Normalize()
	return &p, nil
}

// extractJSONBlock locates the JSON object within a response.
func extractJSONBlock(text string) (string, bool) {
	if m := contentTagPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := jsonFencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1], true
	}
	return "", false
}

// ParseMarkdown decodes a PRD from a ## section layout where list fields
// carry an embedded code block.
func ParseMarkdown(text string) (*PRD, error) {
	sections := splitSections(text)
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections found", ErrParse)
	}
	if _, ok := sections["Product Goals"]; !ok {
		return nil, fmt.Errorf("%w: missing Product Goals section", ErrParse)
	}

	p := &PRD{
		Language:                 plainSection(sections, "Language"),
		OriginalRequirements:     plainSection(sections, "Original Requirements"),
		ProjectName:              plainSection(sections, "Project Name"),
		SearchInformation:        plainSection(sections, "Search Information"),
		Requirements:             plainSection(sections, "Requirements"),
		CompetitiveQuadrantChart: fencedSection(sections, "Competitive Quadrant Chart"),
		RequirementAnalysis:      plainSection(sections, "Requirement Analysis"),
		UIDesignDraft:            plainSection(sections, "UI Design draft"),
		AnythingUnclear:          plainSection(sections, "Anything UNCLEAR"),
	}

	var err error
	if p.ProductGoals, err = listSection(sections, "Product Goals"); err != nil {
		return nil, err
	}
	if p.UserStories, err = listSection(sections, "User Stories"); err != nil {
		return nil, err
	}
	if p.CompetitiveAnalysis, err = listSection(sections, "Competitive Analysis"); err != nil {
		return nil, err
	}
	if p.RequirementPool, err = poolSection(sections, "Requirement Pool"); err != nil {
		return nil, err
	}

	p.Normalize()
	return p, nil
}

// splitSections maps "## Name" headers to their body text.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)
	var name string
	var body []string

	flush := func() {
		if name != "" {
			sections[name] = strings.TrimSpace(strings.Join(body, "\n"))
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			flush()
			name = strings.TrimSpace(m[1])
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// plainSection returns a section's body with any surrounding fence removed.
func plainSection(sections map[string]string, name string) string {
	body, ok := sections[name]
	if !ok {
		return ""
	}
	if m := fencedBlockPattern.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.Trim(body, "-"))
}

// fencedSection returns the inner content of a section's code block, or the
// raw body when no fence is present.
func fencedSection(sections map[string]string, name string) string {
	body, ok := sections[name]
	if !ok {
		return ""
	}
	if m := fencedBlockPattern.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(body)
}

// listSection decodes a section's embedded list of strings.
func listSection(sections map[string]string, name string) ([]string, error) {
	body, ok := sections[name]
	if !ok || strings.TrimSpace(body) == "" {
		return nil, nil
	}

	block := fencedSection(sections, name)
	var items []string
	if err := decodeList(block, &items); err != nil {
		return nil, fmt.Errorf("%w: section %q: %v", ErrParse, name, err)
	}
	return items, nil
}

// poolSection decodes the requirement pool's embedded list of pairs.
func poolSection(sections map[string]string, name string) ([]PoolEntry, error) {
	body, ok := sections[name]
	if !ok || strings.TrimSpace(body) == "" {
		return nil, nil
	}

	block := fencedSection(sections, name)
	var entries []PoolEntry
	if err := decodeList(block, &entries); err != nil {
		return nil, fmt.Errorf("%w: section %q: %v", ErrParse, name, err)
	}
	return entries, nil
}

// decodeList unmarshals a list literal, tolerating python-style single
// quotes as a fallback.
func decodeList(block string, v interface{}) error {
	if err := json.Unmarshal([]byte(block), v); err == nil {
		return nil
	}
	fixed := trailingCommaFixup.ReplaceAllString(block, "$1")
	if err := json.Unmarshal([]byte(fixed), v); err == nil {
		return nil
	}
	fixed = strings.ReplaceAll(fixed, "'", `"`)
	return json.Unmarshal([]byte(fixed), v)
}

// ProjectNameFromText extracts a project name from an unstructured oracle
// response: a "Project Name" JSON field or a ## Project Name section.
func ProjectNameFromText(text string) string {
	if m := projectNameJSONKey.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	sections := splitSections(text)
	return plainSection(sections, "Project Name")
}
