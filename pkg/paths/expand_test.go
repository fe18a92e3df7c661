package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/projects/Ref", filepath.Join(home, "projects", "Ref")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~other/x", "~other/x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := Resolve("a/../b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "b"), got)

	got, err = Resolve("/x/y/")
	require.NoError(t, err)
	assert.Equal(t, "/x/y", got)
}
