package filesystem

import (
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

const tempSuffix = ".fpb-tmp"

// WriteFileAtomic writes data next to name and renames it into place, so a
// reader never observes a half-written file. The temporary file is removed
// if the rename fails.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	if info, err := fsys.Stat(name); err == nil && info.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: syscall.EISDIR}
	}

	tmp := filepath.Join(filepath.Dir(name), "."+filepath.Base(name)+tempSuffix)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
