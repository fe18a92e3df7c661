package nextsteps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	md := Markdown("MyProject", "/work/MyProject")

	assert.Contains(t, md, "**MyProject**")
	assert.Contains(t, md, "cd /work/MyProject")
	assert.NotContains(t, md, "{{")
	assert.True(t, strings.HasPrefix(md, "## Next steps"))
}

func TestRender(t *testing.T) {
	out := Render(Markdown("MyProject", "/work/MyProject"), 80)
	assert.Contains(t, out, "MyProject")
	assert.Contains(t, out, "fprime-util")
}
