package types

import (
	"io/fs"
	"strings"
)

// EntryKind distinguishes files from directories in template and destination trees
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// TemplateEntry is one node of a template tree, as found during the walk.
// It is never mutated once discovered.
type TemplateEntry struct {
	// RelativePath is slash separated and relative to the template root
	RelativePath string      `json:"relativePath"`
	RawName      string      `json:"rawName"`
	Kind         EntryKind   `json:"kind"`
	Mode         fs.FileMode `json:"-"`
}

// Segments returns the relative path split into its path segments
func (e TemplateEntry) Segments() []string {
	return strings.Split(e.RelativePath, "/")
}

// IsTopLevel reports whether the entry sits directly under the template root
func (e TemplateEntry) IsTopLevel() bool {
	return !strings.Contains(e.RelativePath, "/")
}

// DestinationEntry is the node a TemplateEntry becomes in the generated tree
type DestinationEntry struct {
	Source TemplateEntry `json:"source"`
	// RelativePath is slash separated and relative to the destination root
	RelativePath string    `json:"relativePath"`
	Kind         EntryKind `json:"kind"`

	// File-only attributes, filled in once the file has been written
	Substituted bool   `json:"substituted,omitempty"`
	Binary      bool   `json:"binary,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Checksum    string `json:"checksum,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e DestinationEntry) IsDir() bool {
	return e.Kind == KindDirectory
}
