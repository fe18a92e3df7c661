package testutil

import (
	"path"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

// CollectTree reads everything below root in fsys back into a Tree, so a
// generated project can be compared against an expectation in one assert.
func CollectTree(t testing.TB, fsys types.FS, root string) Tree {
	t.Helper()

	out := Tree{}
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir %s: %v", dir, err)
		}
		for _, e := range entries {
			childRel := path.Join(rel, e.Name())
			childDir := filepath.Join(dir, e.Name())
			if e.IsDir() {
				out[childRel] = Dir
				walk(childDir, childRel)
				continue
			}
			data, err := fsys.ReadFile(childDir)
			if err != nil {
				t.Fatalf("read %s: %v", childDir, err)
			}
			out[childRel] = string(data)
		}
	}
	walk(root, "")
	return out
}
