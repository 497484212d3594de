package content

import "strings"

// sectionHeadings maps the section keys accepted by the guidelines tool to
// the canonical heading phrase each one matches in the document.
var sectionHeadings = map[string]string{
	"typescript": "TypeScript Best Practices",
	"angular":    "Angular Best Practices",
	"components": "Components",
	"state":      "State Management",
	"templates":  "Templates",
	"services":   "Services",
}

// SectionNames returns the accepted section keys in their listing order,
// ending with the catch-all "all".
func SectionNames() []string {
	return []string{"typescript", "angular", "components", "state", "templates", "services", "all"}
}

// ExtractSection returns the part of document belonging to the named
// section: from the first line containing the section's canonical heading
// phrase up to, but excluding, the next "## " heading line that is not that
// phrase. "all", an unknown section name, or a phrase that never occurs in
// the document all fall back to the full document unchanged.
//
// Extraction is pure: it depends only on its arguments and allocates a
// fresh result each call.
func ExtractSection(document, section string) string {
	phrase, ok := sectionHeadings[section]
	if !ok {
		return document
	}

	lines := strings.Split(document, "\n")

	start := -1
	for i, line := range lines {
		if strings.Contains(line, phrase) {
			start = i
			break
		}
	}
	if start == -1 {
		return document
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") && !strings.Contains(lines[i], phrase) {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}
