// Package paths resolves user-supplied paths.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return homeDir, nil
	}
	if homeDir := os.Getenv("HOME"); homeDir != "" {
		return homeDir, nil
	}
	return "", errors.New(errors.ErrInvalidInput, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the user's home directory. Other paths,
// including ~user forms, are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := GetHomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %q", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Resolve expands ~ and returns the cleaned absolute form of path
func Resolve(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", path)
	}
	return abs, nil
}
