// Package filesystem provides the filesystem implementations projects are
// written through.
//
// NewOS writes to the real disk. NewAferoFS wraps any afero.Fs, which is how
// tests build in-memory destination trees. The read side of a materialization
// is always an io/fs.FS, so the same afero tree can act as a template root via
// afero.NewIOFS.
package filesystem
