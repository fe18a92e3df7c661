package template

import (
	"fmt"
	"strings"
)

// MarkerSuffix marks a template entry whose name must be rewritten
const MarkerSuffix = "-template"

// TransformName returns the destination name for a template entry name.
// A name equal to MarkerSuffix yields the empty string, which ValidateName
// rejects.
func TransformName(name string) string {
	if before, ok := strings.CutSuffix(name, MarkerSuffix); ok {
		return before
	}
	return name
}

// HasMarker reports whether name still carries the marker suffix
func HasMarker(name string) bool {
	return strings.HasSuffix(name, MarkerSuffix)
}

// ValidateName checks that name can be used as a single destination path segment
func ValidateName(name string) error {
	switch name {
	case "":
		return fmt.Errorf("empty name")
	case ".", "..":
		return fmt.Errorf("reserved name %q", name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("name %q contains a path separator or NUL byte", name)
	}
	return nil
}
