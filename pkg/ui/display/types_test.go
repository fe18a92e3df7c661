package display

import (
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/bootstrap"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewProjectResult(t *testing.T) {
	res := &bootstrap.Result{
		ProjectName: "MyProject",
		Destination: "/work/MyProject",
		Template:    "fprime-project",
		Verified:    true,
		Entries: []types.DestinationEntry{
			{
				Source:       types.TemplateEntry{RelativePath: "Components-template", Kind: types.KindDirectory},
				RelativePath: "Components",
				Kind:         types.KindDirectory,
			},
			{
				Source:       types.TemplateEntry{RelativePath: "Components-template/CMakeLists.txt-template", Kind: types.KindFile},
				RelativePath: "Components/CMakeLists.txt",
				Kind:         types.KindFile,
				Substituted:  true,
				Size:         10,
			},
			{
				Source:       types.TemplateEntry{RelativePath: ".gitignore", Kind: types.KindFile},
				RelativePath: ".gitignore",
				Kind:         types.KindFile,
				Size:         3,
			},
		},
	}

	p := NewProjectResult(res)
	assert.Equal(t, "project", p.Command)
	assert.Equal(t, 2, p.Files)
	assert.Equal(t, 1, p.Directories)
	assert.Equal(t, 1, p.Substituted)
	assert.True(t, p.Verified)
	assert.Len(t, p.Entries, 3)

	assert.True(t, p.Entries[0].IsDir())
	assert.True(t, p.Entries[0].Renamed())
	assert.False(t, p.Entries[2].Renamed())
	assert.Contains(t, p.NextSteps, "MyProject")
	assert.Contains(t, p.NextSteps, "/work/MyProject")
}

func TestNewProjectResultDryRun(t *testing.T) {
	p := NewProjectResult(&bootstrap.Result{ProjectName: "X", Destination: "/x", DryRun: true})
	assert.True(t, p.DryRun)
	assert.Empty(t, p.NextSteps)
	assert.Empty(t, p.Entries)
}

func TestNewTemplateList(t *testing.T) {
	l := NewTemplateList("fprime-library")
	assert.Equal(t, "templates", l.Command)

	found := 0
	for _, tmpl := range l.Templates {
		assert.NotEmpty(t, tmpl.Description)
		if tmpl.Default {
			found++
			assert.Equal(t, "fprime-library", tmpl.Name)
		}
	}
	assert.Equal(t, 1, found)
}
