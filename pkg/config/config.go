package config

import (
	"io/fs"
	"regexp"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
)

// Config is the effective fprime-bootstrap configuration
type Config struct {
	Template    TemplateConfig    `toml:"template"`
	Project     ProjectConfig     `toml:"project"`
	Permissions PermissionsConfig `toml:"permissions"`
	Verify      VerifyConfig      `toml:"verify"`
	Output      OutputConfig      `toml:"output"`

	// Source is the user config file that was loaded, if any
	Source string `toml:"-"`
}

// TemplateConfig selects the template used when none is named
type TemplateConfig struct {
	Default string `toml:"default"`
}

// ProjectConfig constrains the names given to new projects
type ProjectConfig struct {
	NamePattern string `toml:"name_pattern"`
}

// PermissionsConfig holds modes as plain integers, the way they are written
// in the config file
type PermissionsConfig struct {
	Directory  int64 `toml:"directory"`
	File       int64 `toml:"file"`
	Executable int64 `toml:"executable"`
}

// VerifyConfig toggles the check run over a freshly generated tree
type VerifyConfig struct {
	Enabled bool `toml:"enabled"`
}

// OutputConfig picks how results are printed
type OutputConfig struct {
	Format string `toml:"format"`
}

// DirectoryMode returns the mode new directories are created with
func (p PermissionsConfig) DirectoryMode() fs.FileMode { return fs.FileMode(p.Directory) }

// FileMode returns the mode new files are created with
func (p PermissionsConfig) FileMode() fs.FileMode { return fs.FileMode(p.File) }

// ExecutableMode returns the mode new executable files are created with
func (p PermissionsConfig) ExecutableMode() fs.FileMode { return fs.FileMode(p.Executable) }

// NameRegexp compiles the project name pattern
func (c *Config) NameRegexp() (*regexp.Regexp, error) {
	return CompileNamePattern(c.Project.NamePattern)
}

// CompileNamePattern compiles a project name pattern
func CompileNamePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid project name pattern %q", pattern)
	}
	return re, nil
}
