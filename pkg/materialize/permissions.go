package materialize

import "io/fs"

// Permissions are the modes generated entries are created with
type Permissions struct {
	Directory  fs.FileMode
	File       fs.FileMode
	Executable fs.FileMode
}

// DefaultPermissions returns 0755 directories, 0644 files and 0755 executables
func DefaultPermissions() Permissions {
	return Permissions{
		Directory:  0755,
		File:       0644,
		Executable: 0755,
	}
}

// fileMode picks the mode for a generated file from its template's mode:
// any execute bit on the template makes the generated file executable.
func (p Permissions) fileMode(src fs.FileMode) fs.FileMode {
	if src&0111 != 0 {
		return p.Executable
	}
	return p.File
}
