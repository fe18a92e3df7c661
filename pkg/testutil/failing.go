package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

// FailingFS wraps a types.FS and fails writes to chosen paths.
type FailingFS struct {
	types.FS
	errorPaths map[string]error
}

// NewFailingFS wraps base with no failures configured.
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{FS: base, errorPaths: make(map[string]error)}
}

// FailOn makes every write or mkdir touching path return err.
func (f *FailingFS) FailOn(path string, err error) *FailingFS {
	f.errorPaths[filepath.Clean(path)] = err
	return f
}

func (f *FailingFS) check(path string) error {
	if err, ok := f.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if err := f.check(newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

// FailingSource wraps a template root and fails reads of chosen entries.
type FailingSource struct {
	fs.FS
	errorPaths map[string]error
}

// NewFailingSource wraps base with no failures configured.
func NewFailingSource(base fs.FS) *FailingSource {
	return &FailingSource{FS: base, errorPaths: make(map[string]error)}
}

// FailOn makes opening or reading name (slash separated) return err.
func (f *FailingSource) FailOn(name string, err error) *FailingSource {
	f.errorPaths[name] = err
	return f
}

func (f *FailingSource) Open(name string) (fs.File, error) {
	if err, ok := f.errorPaths[name]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return f.FS.Open(name)
}

func (f *FailingSource) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.errorPaths[name]; ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return fs.ReadDir(f.FS, name)
}

func (f *FailingSource) ReadFile(name string) ([]byte, error) {
	if err, ok := f.errorPaths[name]; ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return fs.ReadFile(f.FS, name)
}

var _ types.FS = (*FailingFS)(nil)
