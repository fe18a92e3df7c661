package testutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/filesystem"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// String names the environment, for subtest names
func (e EnvType) String() string {
	if e == EnvIsolated {
		return "isolated"
	}
	return "memory"
}

// TestEnvironment pairs a template root with a destination filesystem of
// the same kind, so a test can run once in memory and once on disk.
type TestEnvironment struct {
	// Root is where generated trees go
	Root string
	// FS is the destination filesystem
	FS types.FS

	Type EnvType

	t       testing.TB
	tempDir string // Only used for EnvIsolated
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t testing.TB, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/out"
		env.FS = NewTestFS()
	case EnvIsolated:
		env.tempDir = t.TempDir()
		env.Root = filepath.Join(env.tempDir, "out")
		env.FS = filesystem.NewOS()
	}
	return env
}

// Template builds a template root from tree: in memory, or as a real
// directory read through os.DirFS.
func (env *TestEnvironment) Template(tree Tree) fs.FS {
	env.t.Helper()

	if env.Type == EnvMemoryOnly {
		return NewTemplateFS(env.t, tree)
	}

	dir := filepath.Join(env.tempDir, "template")
	if err := os.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("mkdir %s: %v", dir, err)
	}
	for rel, content := range tree {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if content == Dir {
			if err := os.MkdirAll(p, 0755); err != nil {
				env.t.Fatalf("mkdir %s: %v", rel, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(path.Dir(rel))), 0755); err != nil {
			env.t.Fatalf("mkdir %s: %v", path.Dir(rel), err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			env.t.Fatalf("write %s: %v", rel, err)
		}
	}
	return os.DirFS(dir)
}

// Path returns the destination path of a slash separated relative path
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// Tree reads the generated tree back
func (env *TestEnvironment) Tree() Tree {
	env.t.Helper()
	return CollectTree(env.t, env.FS, env.Root)
}

// Environments lists every environment type, for table-driven tests
func Environments() []EnvType {
	return []EnvType{EnvMemoryOnly, EnvIsolated}
}
