// Package nextsteps produces the message shown after a project is created.
package nextsteps

import (
	_ "embed"

	"github.com/arthur-debert/fprime-bootstrap/pkg/template"
	"github.com/charmbracelet/glamour"
)

// DestinationToken is replaced with the project directory
const DestinationToken = "{{DESTINATION}}"

//go:embed next-steps.md
var nextStepsTemplate string

// Markdown returns the next-steps message for a project
func Markdown(projectName, destination string) string {
	b := template.NewBinding(map[string]string{
		template.ProjectNameToken: projectName,
		DestinationToken:          destination,
	})
	return template.Substitute(nextStepsTemplate, b)
}

// Render formats markdown for a terminal. On any glamour failure the
// markdown is returned as is.
func Render(markdown string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
