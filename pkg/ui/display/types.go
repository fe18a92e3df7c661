// Package display holds the models every renderer understands. Commands
// build these from their results; renderers never see domain types.
package display

import (
	"time"

	"github.com/arthur-debert/fprime-bootstrap/pkg/assets"
	"github.com/arthur-debert/fprime-bootstrap/pkg/bootstrap"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/nextsteps"
)

// ProjectResult is the outcome of the project command
type ProjectResult struct {
	Command     string    `json:"command"`
	ProjectName string    `json:"projectName"`
	Destination string    `json:"destination"`
	Template    string    `json:"template"`
	DryRun      bool      `json:"dryRun"`
	Verified    bool      `json:"verified"`
	Entries     []Entry   `json:"entries"`
	Files       int       `json:"files"`
	Directories int       `json:"directories"`
	Substituted int       `json:"substituted"`
	NextSteps   string    `json:"nextSteps,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Entry is one generated (or, on a dry run, planned) path
type Entry struct {
	Path        string `json:"path"`
	Source      string `json:"source"`
	Kind        string `json:"kind"`
	Substituted bool   `json:"substituted,omitempty"`
	Binary      bool   `json:"binary,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == "directory"
}

// Renamed reports whether the entry name lost its marker
func (e Entry) Renamed() bool {
	return e.Path != e.Source
}

// NewProjectResult converts a bootstrap result
func NewProjectResult(res *bootstrap.Result) *ProjectResult {
	out := &ProjectResult{
		Command:     "project",
		ProjectName: res.ProjectName,
		Destination: res.Destination,
		Template:    res.Template,
		DryRun:      res.DryRun,
		Verified:    res.Verified,
		Entries:     make([]Entry, 0, len(res.Entries)),
		Files:       res.Files(),
		Directories: res.Directories(),
		Timestamp:   time.Now(),
	}
	for _, e := range res.Entries {
		if e.Substituted {
			out.Substituted++
		}
		out.Entries = append(out.Entries, Entry{
			Path:        e.RelativePath,
			Source:      e.Source.RelativePath,
			Kind:        string(e.Kind),
			Substituted: e.Substituted,
			Binary:      e.Binary,
			Size:        e.Size,
		})
	}
	if !res.DryRun {
		out.NextSteps = nextsteps.Markdown(res.ProjectName, res.Destination)
	}
	return out
}

// TemplateList is the outcome of the templates command
type TemplateList struct {
	Command   string         `json:"command"`
	Default   string         `json:"default"`
	Templates []TemplateItem `json:"templates"`
}

// TemplateItem describes one bundled template
type TemplateItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// NewTemplateList lists the bundled templates, flagging defaultName
func NewTemplateList(defaultName string) *TemplateList {
	out := &TemplateList{Command: "templates", Default: defaultName}
	for _, tmpl := range assets.List() {
		out.Templates = append(out.Templates, TemplateItem{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Default:     tmpl.Name == defaultName,
		})
	}
	return out
}
