package testutil

import (
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/filesystem"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// Dir marks an entry of a Tree as a directory.
const Dir = "\x00dir"

// Tree describes a template tree inline: slash separated relative paths
// mapped to file content, or to Dir for (possibly empty) directories.
// Parent directories are created implicitly.
type Tree map[string]string

// NewTemplateFS builds an in-memory, read-only template root from tree.
func NewTemplateFS(t testing.TB, tree Tree) fs.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for rel, content := range tree {
		p := "/" + strings.TrimPrefix(rel, "/")
		if content == Dir {
			if err := mem.MkdirAll(p, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", rel, err)
			}
			continue
		}
		if err := mem.MkdirAll(path.Dir(p), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", path.Dir(rel), err)
		}
		if err := afero.WriteFile(mem, p, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return afero.NewIOFS(afero.NewBasePathFs(mem, "/"))
}
