package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	// Known SHA256 of the empty input
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))

	a := Checksum([]byte("Hello MyProj!"))
	b := Checksum([]byte("Hello MyProj!"))
	c := Checksum([]byte("Hello Other!"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, len("sha256:")+64)
}
