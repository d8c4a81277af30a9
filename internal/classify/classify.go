// Package classify routes admission documents to an extraction category based
// on their source locator.
package classify

import "strings"

// Category represents a document category with its own extraction template.
type Category string

const (
	// CategoryRequirements is an admission-requirements document
	CategoryRequirements Category = "requirements"
	// CategoryDeadlines is an application-calendar document
	CategoryDeadlines Category = "deadlines"
	// CategoryGeneral is any other admission document
	CategoryGeneral Category = "general"
)

// Spec carries the extraction configuration for a category.
type Spec struct {
	// PromptKey selects the template in prompts/extraction.json.
	PromptKey string
	// WindowLen is the maximum number of characters of acquired text fed to
	// the extraction capability.
	WindowLen int
}

var specs = map[Category]Spec{
	CategoryRequirements: {PromptKey: "extract-requirements", WindowLen: 12000},
	CategoryDeadlines:    {PromptKey: "extract-deadlines", WindowLen: 8000},
	CategoryGeneral:      {PromptKey: "extract-requirements", WindowLen: 10000},
}

// Classify selects exactly one category from a document's source locator using
// case-insensitive substring heuristics. It is total: any input string,
// including the empty string, yields a category, defaulting to general.
func Classify(locator string) Category {
	lower := strings.ToLower(locator)

	if strings.Contains(lower, "admission") || strings.Contains(lower, "apply") {
		return CategoryRequirements
	}
	if strings.Contains(lower, "deadline") || strings.Contains(lower, "calendar") {
		return CategoryDeadlines
	}
	return CategoryGeneral
}

// SpecFor returns the extraction spec for a category, falling back to the
// general spec for unrecognized categories.
func SpecFor(category Category) Spec {
	if spec, ok := specs[category]; ok {
		return spec
	}
	return specs[CategoryGeneral]
}

// Window truncates text to the category's window length.
func Window(category Category, text string) string {
	limit := SpecFor(category).WindowLen
	if len(text) <= limit {
		return text
	}
	// Back up to a rune boundary so truncation never splits a character.
	for limit > 0 && text[limit]&0xC0 == 0x80 {
		limit--
	}
	return text[:limit]
}
