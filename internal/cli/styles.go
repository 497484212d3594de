// Package cli holds the terminal output helpers for the ngmcp command
// line: lipgloss styles for validation findings and the glamour-rendered
// guideline preview.
package cli

import (
	"fmt"
	"strings"

	"ngmcp/internal/rules"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Centralized Lip Gloss styles for CLI output.
// All colors are specified using hex codes.

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5fd7ff")).
			MarginBottom(1)

	BlockingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff005f")).
			Bold(true)

	AdvisoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf00"))

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd7ff"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff5f")).
			Bold(true)
)

// severityStyle maps a finding severity to its display style.
func severityStyle(severity rules.Severity) lipgloss.Style {
	switch severity {
	case rules.SeverityBlocking:
		return BlockingStyle
	case rules.SeverityAdvisory:
		return AdvisoryStyle
	default:
		return SuggestionStyle
	}
}

// RenderFindings formats validation findings for the terminal, one styled
// bullet per finding, or a success line when there are none.
func RenderFindings(findings []rules.Finding) string {
	if len(findings) == 0 {
		return SuccessStyle.Render("No issues found. The code follows the Angular guidelines.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Validation found %d issue(s):", len(findings))))
	b.WriteString("\n")
	for _, f := range findings {
		style := severityStyle(f.Severity)
		fmt.Fprintf(&b, "- %s %s\n", style.Render("["+string(f.Severity)+"]"), f.Message)
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal with glamour. On
// render failure the raw markdown is returned so output is never lost.
func RenderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
