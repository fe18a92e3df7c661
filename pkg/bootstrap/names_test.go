// Test Type: Unit Test
// Description: Tests project name derivation and validation

package bootstrap

import (
	"testing"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const defaultPattern = "^[A-Za-z][A-Za-z0-9_-]*$"

func TestDeriveProjectName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/work/MyProject", "MyProject"},
		{"/work/MyProject/", "MyProject"},
		{"/work/a/../Ref", "Ref"},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveProjectName(tt.path))
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		wantErr bool
	}{
		{"simple", "MyProject", defaultPattern, false},
		{"with_dash_and_underscore", "My_Project-2", defaultPattern, false},
		{"empty", "", defaultPattern, true},
		{"leading_digit", "9lives", defaultPattern, true},
		{"space", "My Project", defaultPattern, true},
		{"placeholder", "{{FPRIME_PROJECT_NAME}}", "", true},
		{"braces", "a{{b", "", true},
		{"marker_suffix", "proj-template", defaultPattern, true},
		{"no_pattern_allows_anything_else", "9 lives", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input, tt.pattern)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidProjectName), "got %v", err)
		})
	}

	t.Run("bad_pattern", func(t *testing.T) {
		err := ValidateProjectName("x", "([")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}
