// Package assets bundles the project templates shipped with fprime-bootstrap.
//
// Each directory under templates/ is one template root. Lookup returns it as
// a read-only fs.FS rooted at the template, ready for materialize.New.
package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
)

//go:embed all:templates
var templatesFS embed.FS

const templatesDir = "templates"

// DefaultTemplate is used when no template is asked for
const DefaultTemplate = "fprime-project"

var descriptions = map[string]string{
	"fprime-project": "F' project with build settings, project CMake and a Components directory",
	"fprime-library": "F' library that projects pull in through library_locations",
}

// Template describes one bundled template
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Names returns the bundled template names, sorted
func Names() []string {
	entries, err := templatesFS.ReadDir(templatesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// List returns every bundled template with its description
func List() []Template {
	names := Names()
	out := make([]Template, 0, len(names))
	for _, name := range names {
		out = append(out, Template{Name: name, Description: descriptions[name]})
	}
	return out
}

// Exists reports whether a template called name is bundled
func Exists(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Lookup returns the root of the template called name
func Lookup(name string) (fs.FS, error) {
	if name == "" {
		name = DefaultTemplate
	}
	if !Exists(name) {
		return nil, errors.Newf(errors.ErrTemplateNotFound, "unknown template %q (available: %s)",
			name, strings.Join(Names(), ", ")).WithDetail("template", name)
	}
	sub, err := fs.Sub(templatesFS, templatesDir+"/"+name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot open template %q", name)
	}
	return sub, nil
}
