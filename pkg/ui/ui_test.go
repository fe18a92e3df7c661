package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui"
	"github.com/arthur-debert/fprime-bootstrap/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *display.ProjectResult {
	return &display.ProjectResult{
		Command:     "project",
		ProjectName: "MyProject",
		Destination: "/work/MyProject",
		Template:    "fprime-project",
		Verified:    true,
		Entries: []display.Entry{
			{Path: "Components", Source: "Components-template", Kind: "directory"},
			{Path: "Components/CMakeLists.txt", Source: "Components-template/CMakeLists.txt-template", Kind: "file", Substituted: true, Size: 12},
			{Path: "logo.png", Source: "logo.png", Kind: "file", Binary: true, Size: 4},
		},
		Files:       2,
		Directories: 1,
		Substituted: 1,
		NextSteps:   "## Next steps\n\ncd /work/MyProject\n",
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"auto_with_buffer", ui.FormatAuto, false},
		{"invalid", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestTextRendering(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleProject()))
	out := buf.String()

	assert.Contains(t, out, "Created MyProject from template fprime-project in /work/MyProject")
	assert.Contains(t, out, "dir  Components/ (from Components-template)")
	assert.Contains(t, out, "file Components/CMakeLists.txt (from Components-template/CMakeLists.txt-template) [filled]")
	assert.Contains(t, out, "file logo.png [binary]")
	assert.Contains(t, out, "2 files, 1 directories, 1 with the project name filled in")
	assert.Contains(t, out, "Verified")
	assert.Contains(t, out, "## Next steps")
	assert.NotContains(t, out, "\x1b[", "text output must not carry escape codes")
}

func TestTextRenderingDryRun(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	p := sampleProject()
	p.DryRun = true
	p.Verified = false
	p.NextSteps = ""
	require.NoError(t, renderer.RenderResult(p))

	out := buf.String()
	assert.Contains(t, out, "Would create MyProject")
	assert.NotContains(t, out, "filled in")
	assert.NotContains(t, out, "Next steps")
}

func TestTextRenderingTemplates(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(display.NewTemplateList("fprime-project")))
	out := buf.String()
	assert.Contains(t, out, "* fprime-project")
	assert.Contains(t, out, "  fprime-library")
}

func TestTerminalRendering(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleProject()))
	out := buf.String()
	assert.Contains(t, out, "MyProject")
	assert.Contains(t, out, "Components/CMakeLists.txt")
	assert.Contains(t, out, "verified")

	buf.Reset()
	require.NoError(t, renderer.RenderResult(display.NewTemplateList("fprime-library")))
	assert.Contains(t, buf.String(), "fprime-library")
	assert.Contains(t, buf.String(), "(default)")
}

func TestJSONRendering(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleProject()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "project", decoded["command"])
	assert.Equal(t, "MyProject", decoded["projectName"])
	assert.Equal(t, true, decoded["verified"])
	assert.Len(t, decoded["entries"], 3)
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrSourceRead, "cannot read template file").WithPath("a/b-template")

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, _ := ui.NewRenderer(ui.FormatText, buf)
		require.NoError(t, renderer.RenderError(err))
		assert.Equal(t, "Error: [SOURCE_READ] cannot read template file (path: a/b-template)\n", buf.String())
	})

	t.Run("terminal", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, _ := ui.NewRenderer(ui.FormatTerminal, buf)
		require.NoError(t, renderer.RenderError(err))
		assert.Contains(t, buf.String(), "SOURCE_READ")
		assert.Contains(t, buf.String(), "at a/b-template")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, _ := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, renderer.RenderError(err))

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "SOURCE_READ", decoded["code"])
		assert.Equal(t, "a/b-template", decoded["path"])
	})
}

func TestRenderMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, _ := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, renderer.RenderMessage("hello"))
	assert.JSONEq(t, `{"message":"hello"}`, buf.String())
}
