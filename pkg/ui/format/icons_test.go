package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryIcon(t *testing.T) {
	assert.Equal(t, "📁", EntryIcon("directory", false))
	assert.Equal(t, "📄", EntryIcon("file", false))
	assert.Equal(t, "📦", EntryIcon("file", true))
}
