// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/display"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/format"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/nextsteps"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/styles"
)

// wrapWidth is the word wrap applied to rendered markdown
const wrapWidth = 80

// Renderer provides rich terminal output using lipgloss styles and glamour
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a display model with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ProjectResult:
		return r.write(renderProject(v))
	case *display.TemplateList:
		return r.write(renderTemplates(v))
	default:
		return r.write(fmt.Sprintf("%+v\n", result))
	}
}

func renderProject(p *display.ProjectResult) string {
	var b strings.Builder

	verb := "Created"
	if p.DryRun {
		verb = "Would create"
	}
	b.WriteString(styles.Render("Header", fmt.Sprintf("%s %s", verb, p.ProjectName)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s\n\n",
		styles.Render("Muted", "template"), styles.Render("Bold", p.Template),
		styles.Render("Muted", "in"), styles.Render("FilePath", p.Destination))

	for _, e := range p.Entries {
		name := e.Path
		if e.IsDir() {
			name += "/"
		}
		line := format.EntryIcon(e.Kind, e.Binary) + " " + styles.Render("FilePath", name)
		if e.Renamed() {
			line += " " + styles.Render("Muted", "← "+e.Source)
		}
		if e.Substituted {
			line += " " + styles.Render("Substituted", "filled")
		}
		if e.Binary {
			line += " " + styles.Render("Binary", "binary")
		}
		b.WriteString(styles.Render("Indent", line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d files, %d directories", p.Files, p.Directories)
	if !p.DryRun {
		summary += fmt.Sprintf(", %d with the project name filled in", p.Substituted)
	}
	b.WriteString(styles.Render("Muted", summary))
	b.WriteString("\n")
	if p.Verified {
		b.WriteString(styles.Render("Success", "✓ verified"))
		b.WriteString("\n")
	}

	if p.NextSteps != "" {
		b.WriteString(nextsteps.Render(p.NextSteps, wrapWidth))
	}
	return b.String()
}

func renderTemplates(l *display.TemplateList) string {
	var b strings.Builder
	b.WriteString(styles.Render("Header", "Templates"))
	b.WriteString("\n")
	for _, t := range l.Templates {
		name := styles.Render("Bold", t.Name)
		if t.Default {
			name += " " + styles.Render("Success", "(default)")
		}
		b.WriteString(styles.Render("Indent", name))
		b.WriteString("\n")
		b.WriteString(styles.Render("Indent", styles.Render("Indent", styles.Render("Muted", t.Description))))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders an error with its code and offending path
func (r *Renderer) RenderError(err error) error {
	line := styles.Render("Error", "Error:") + " " + err.Error()
	if path := errors.GetPath(err); path != "" {
		line += "\n" + styles.Render("Indent", styles.Render("Muted", "at "+path))
	}
	return r.write(line + "\n")
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.Render("Info", msg) + "\n")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}
