package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/out/src", 0755))
	require.NoError(t, fs.WriteFile("/out/src/main.cpp", []byte("int main() {}"), 0644))

	content, err := fs.ReadFile("/out/src/main.cpp")
	require.NoError(t, err)
	assert.Equal(t, "int main() {}", string(content))

	entries, err := fs.ReadDir("/out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "src", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	t.Run("read_directory_fails", func(t *testing.T) {
		_, err := fs.ReadFile("/out/src")
		assert.Error(t, err)
	})

	t.Run("mkdir_over_file_fails", func(t *testing.T) {
		err := fs.MkdirAll("/out/src/main.cpp", 0755)
		assert.Error(t, err)
	})

	t.Run("write_over_directory_fails", func(t *testing.T) {
		err := fs.WriteFile("/out/src", []byte("x"), 0644)
		assert.Error(t, err)
	})
}
