package prd

import "strings"

// Prompt templates for the oracle. Placeholders are {name} slots filled by
// the builder functions below.

const bugReportTemplate = `
{content}

___
You are a professional product manager; You need to determine whether the above content describes a requirement or provides feedback about a bug.
Respond with ` + "`YES`" + ` if it is a feedback about a bug, ` + "`NO`" + ` if it is not, and provide the reasons. Return the response in JSON format like below:

` + "```json" + `
{
    "is_bugfix": ..., # ` + "`YES` or `NO`" + `
    "reason": ..., # reason string
}
` + "```" + `
`

const relevanceTemplate = `
## PRD:
{old_prd}

## New Requirement:
{requirements}

___
You are a professional product manager; You need to assess whether the new requirements are relevant to the existing PRD to determine whether to merge the new requirements into this PRD.
Is the newly added requirement in "New Requirement" related to the PRD?
Respond with ` + "`YES`" + ` if it is related, ` + "`NO`" + ` if it is not, and provide the reasons. Return the response in JSON format.
`

const mergeTemplate = `
# Context
## Original Requirements
{requirements}


## Old PRD
{old_prd}
-----
Role: You are a professional product manager; The goal is to incorporate the newly added requirements from the "Original Requirements" into the existing Product Requirements Document (PRD) in the "Old PRD" in order to design a concise, usable, and efficient product.
Language: Please use the same language as the user requirement, but the title and code should be still in English.
Requirements: According to the context, fill in the following missing information, each section name is a key in json. If the requirements are unclear, ensure minimum viability and avoid excessive design.
ATTENTION: Output carefully referenced "Old PRD" in format.

## YOU NEED TO FULFILL THE BELOW JSON DOC

{
    "Language": "", # str, use the same language as the user requirement. en_us / zh_cn etc.
    "Original Requirements": "", # str, place the polished complete original requirements here
    "Project Name": "{project_name}", # str, if it's empty, name it with snake case style, like game_2048 / web_2048 / simple_crm etc.
    "Search Information": "",
    "Requirements": "",
    "Product Goals": [], # Provided as list[str], up to 3 clear, orthogonal product goals.
    "User Stories": [], # Provided as list[str], up to 5 scenario-based user stories
    "Competitive Analysis": [], # Provided as list[str], up to 8 competitive product analyses
    "Competitive Quadrant Chart": "quadrantChart...", # Use mermaid quadrantChart code syntax. up to 14 competitive products.
    "Requirement Analysis": "", # Provide as Plain text.
    "Requirement Pool": [["P0","P0 requirement"],["P1","P1 requirement"]], # Provided as list[list[str]], the parameters are priority(P0/P1/P2) and requirement description, respectively
    "UI Design draft": "", # Provide as Plain text. Be simple. Describe the elements and functions, also provide a simple style description and layout description.
    "Anything UNCLEAR": "", # Provide as Plain text. Try to clarify it.
}

output a properly formatted JSON, wrapped inside [CONTENT][/CONTENT] like "Old PRD" format,
and only output the json inside this tag, nothing else
`

const generateJSONTemplate = `
# Context
{
    "Original Requirements": "{requirements}",
    "Search Information": "{search_information}"
}

## Format example
{format_example}
-----
Role: You are a professional product manager; the goal is to design a concise, usable, efficient product
Language: Please use the same language as the user requirement, but the title and code should be still in English.
Requirements: According to the context, fill in the following missing information.
ATTENTION: Output carefully referenced "Format example" in format.

## YOU NEED TO FULFILL THE BELOW JSON DOC

{
    "Language": "", # str, use the same language as the user requirement. en_us / zh_cn etc.
    "Original Requirements": "", # str, place the polished complete original requirements here
    "Project Name": "{project_name}", # str, if it's empty, name it with snake case style, like game_2048 / web_2048 / simple_crm etc.
    "Search Information": "",
    "Requirements": "",
    "Product Goals": [], # Provided as list[str], up to 3 clear, orthogonal product goals.
    "User Stories": [], # Provided as list[str], up to 5 scenario-based user stories
    "Competitive Analysis": [], # Provided as list[str], up to 8 competitive product analyses
    "Competitive Quadrant Chart": "quadrantChart...", # Use mermaid quadrantChart code syntax. up to 14 competitive products.
    "Requirement Analysis": "", # Provide as Plain text.
    "Requirement Pool": [["P0","P0 requirement"],["P1","P1 requirement"]], # Provided as list[list[str]], the parameters are priority(P0/P1/P2) and requirement description, respectively
    "UI Design draft": "", # Provide as Plain text. Be simple. Describe the elements and functions, also provide a simple style description and layout description.
    "Anything UNCLEAR": "", # Provide as Plain text. Try to clarify it.
}

output a properly formatted JSON, wrapped inside [CONTENT][/CONTENT] like format example,
and only output the json inside this tag, nothing else
`

const jsonFormatExample = `
[CONTENT]
{
    "Language": "en_us",
    "Original Requirements": "",
    "Project Name": "{project_name}",
    "Search Information": "",
    "Requirements": "",
    "Product Goals": [],
    "User Stories": [],
    "Competitive Analysis": [],
    "Competitive Quadrant Chart": "quadrantChart\n    title Reach and engagement of campaigns\n    x-axis Low Reach --> High Reach\n    y-axis Low Engagement --> High Engagement\n    quadrant-1 We should expand\n    quadrant-2 Need to promote\n    quadrant-3 Re-evaluate\n    quadrant-4 May be improved\n    Campaign A: [0.3, 0.6]\n    Campaign B: [0.45, 0.23]",
    "Requirement Analysis": "",
    "Requirement Pool": [["P0","P0 requirement"],["P1","P1 requirement"]],
    "UI Design draft": "",
    "Anything UNCLEAR": ""
}
[/CONTENT]
`

const generateMarkdownTemplate = `
# Context
## Original Requirements
{requirements}

## Search Information
{search_information}

## mermaid quadrantChart code syntax example. DONT USE QUOTO IN CODE DUE TO INVALID SYNTAX. Replace the <Campaign X> with REAL COMPETITOR NAME
` + "```mermaid" + `
quadrantChart
    title Reach and engagement of campaigns
    x-axis Low Reach --> High Reach
    y-axis Low Engagement --> High Engagement
    quadrant-1 We should expand
    quadrant-2 Need to promote
    quadrant-3 Re-evaluate
    quadrant-4 May be improved
    "Campaign A": [0.3, 0.6]
    "Campaign B": [0.45, 0.23]
    "Our Target Product": [0.5, 0.6]
` + "```" + `

## Format example
{format_example}
-----
Role: You are a professional product manager; the goal is to design a concise, usable, efficient product
Language: Please use the same language as the user requirement to answer, but the title and code should be still in English.
Requirements: According to the context, fill in the following missing information, note that each section is returned in a code block separately.
ATTENTION: Use '##' to SPLIT SECTIONS, not '#'. AND '## <SECTION_NAME>' SHOULD WRITE BEFORE the code block. Output carefully referenced "Format example" in format.

## Language: Provide as Plain text, use the same language as the user requirement.

## Original Requirements: Provide as Plain text, place the polished complete original requirements here

## Project Name: Provide as Plain text, if it's empty, name it with snake case style, like game_2048 / web_2048 / simple_crm

## Product Goals: Provided as list[str], up to 3 clear, orthogonal product goals.

## User Stories: Provided as list[str], up to 5 scenario-based user stories

## Competitive Analysis: Provided as list[str], up to 8 competitive product analyses, consider as similar competitors as possible

## Competitive Quadrant Chart: Use mermaid quadrantChart code syntax. up to 14 competitive products.

## Requirement Analysis: Provide as Plain text.

## Requirement Pool: Provided as list[list[str]], the parameters are priority(P0/P1/P2) and requirement description, respectively

## UI Design draft: Provide as Plain text. Be simple. Describe the elements and functions, also provide a simple style description and layout description.

## Anything UNCLEAR: Provide as Plain text. Try to clarify it.
`

const markdownFormatExample = `
---
## Language
en_us

## Original Requirements
The user ...

## Project Name
` + "```" + `
{project_name}
` + "```" + `

## Product Goals
` + "```python" + `
[
    "Create a ...",
]
` + "```" + `

## User Stories
` + "```python" + `
[
    "As a user, ...",
]
` + "```" + `

## Competitive Analysis
` + "```python" + `
[
    "Python Snake Game: ...",
]
` + "```" + `

## Competitive Quadrant Chart
` + "```mermaid" + `
quadrantChart
    title Reach and engagement of campaigns
    ...
    "Our Target Product": [0.6, 0.7]
` + "```" + `

## Requirement Analysis
The product should be a ...

## Requirement Pool
` + "```python" + `
[
    ["P0", "End game ..."]
]
` + "```" + `

## UI Design draft
Give a basic function description, and a draft

## Anything UNCLEAR
There are no unclear points.
---
`

// BugReportPrompt builds the bug-vs-requirement classification prompt.
func BugReportPrompt(content string) string {
	return strings.NewReplacer("{content}", content).Replace(bugReportTemplate)
}

// RelevancePrompt builds the requirement-to-PRD relevance prompt.
func RelevancePrompt(requirements, oldPRD string) string {
	return strings.NewReplacer(
		"{requirements}", requirements,
		"{old_prd}", oldPRD,
	).Replace(relevanceTemplate)
}

// MergePrompt builds the prompt that folds a new requirement into an
// existing PRD, regenerating the whole document.
func MergePrompt(requirements, oldPRD, projectName string) string {
	return strings.NewReplacer(
		"{requirements}", requirements,
		"{old_prd}", oldPRD,
		"{project_name}", projectName,
	).Replace(mergeTemplate)
}

// GeneratePrompt builds the brand-new PRD generation prompt for the given
// format. searchInformation may be empty.
func GeneratePrompt(format Format, requirements, searchInformation, projectName string) string {
	template := generateJSONTemplate
	example := jsonFormatExample
	if format == FormatMarkdown {
		template = generateMarkdownTemplate
		example = markdownFormatExample
	}

	example = strings.NewReplacer("{project_name}", projectName).Replace(example)
	return strings.NewReplacer(
		"{requirements}", requirements,
		"{search_information}", searchInformation,
		"{format_example}", example,
		"{project_name}", projectName,
	).Replace(template)
}
