// Package format provides formatting utilities for UI presentation.
package format

// EntryIcon returns the icon shown before a generated entry in terminal
// output.
func EntryIcon(kind string, binary bool) string {
	switch {
	case kind == "directory":
		return "📁"
	case binary:
		return "📦"
	default:
		return "📄"
	}
}
