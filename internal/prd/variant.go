package prd

// Generated is a tagged variant of oracle output: either a structured PRD
// or raw response text that could not be (or was not) parsed. Consumers
// switch on the tag explicitly instead of type-probing.
type Generated struct {
	structured *PRD
	raw        string
}

// NewStructured wraps a parsed PRD.
func NewStructured(p *PRD) Generated {
	return Generated{structured: p}
}

// NewRawText wraps an unparsed oracle response.
func NewRawText(text string) Generated {
	return Generated{raw: text}
}

// Structured returns the parsed PRD and true when this variant is structured.
func (g Generated) Structured() (*PRD, bool) {
	return g.structured, g.structured != nil
}

// Raw returns the raw text and true when this variant is unstructured.
func (g Generated) Raw() (string, bool) {
	if g.structured != nil {
		return "", false
	}
	return g.raw, true
}

// ProjectName resolves the project-name hint from either variant: the
// structured field, or a best-effort extraction from raw text.
func (g Generated) ProjectName() string {
	if g.structured != nil {
		return g.structured.ProjectName
	}
	return ProjectNameFromText(g.raw)
}
