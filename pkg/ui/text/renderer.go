// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a display model as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.ProjectResult:
		return r.renderProject(v)
	case *display.TemplateList:
		return r.renderTemplates(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderProject(p *display.ProjectResult) error {
	w := &errWriter{w: r.output}

	if p.DryRun {
		w.printf("Would create %s from template %s in %s\n\n", p.ProjectName, p.Template, p.Destination)
	} else {
		w.printf("Created %s from template %s in %s\n\n", p.ProjectName, p.Template, p.Destination)
	}

	for _, e := range p.Entries {
		name := e.Path
		if e.IsDir() {
			name += "/"
		}
		w.printf("  %-4s %s%s\n", kindLabel(e), name, annotations(e))
	}

	w.printf("\n%d files, %d directories", p.Files, p.Directories)
	if !p.DryRun {
		w.printf(", %d with the project name filled in", p.Substituted)
	}
	w.printf("\n")
	if p.Verified {
		w.printf("Verified: no template markers or placeholders left.\n")
	}
	if p.NextSteps != "" {
		w.printf("\n%s", p.NextSteps)
	}
	return w.err
}

func (r *Renderer) renderTemplates(l *display.TemplateList) error {
	w := &errWriter{w: r.output}
	for _, t := range l.Templates {
		marker := " "
		if t.Default {
			marker = "*"
		}
		w.printf("%s %-16s %s\n", marker, t.Name, t.Description)
	}
	return w.err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func kindLabel(e display.Entry) string {
	if e.IsDir() {
		return "dir"
	}
	return "file"
}

func annotations(e display.Entry) string {
	out := ""
	if e.Renamed() {
		out += " (from " + e.Source + ")"
	}
	if e.Substituted {
		out += " [filled]"
	}
	if e.Binary {
		out += " [binary]"
	}
	return out
}

// errWriter keeps the first write error so a block of output can be
// checked once at the end
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
