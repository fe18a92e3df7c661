package template

import (
	"sort"
	"strings"
)

// ProjectNameToken is the placeholder replaced by the project name
const ProjectNameToken = "{{FPRIME_PROJECT_NAME}}"

// Binding maps placeholder tokens to their replacements for one
// materialization. It is immutable once built and safe to share.
type Binding struct {
	values   map[string]string
	tokens   []string
	replacer *strings.Replacer
}

// NewBinding builds a binding from token/value pairs. Empty tokens are ignored.
func NewBinding(values map[string]string) Binding {
	b := Binding{values: make(map[string]string, len(values))}
	for token, value := range values {
		if token == "" {
			continue
		}
		b.values[token] = value
		b.tokens = append(b.tokens, token)
	}

	// Longer tokens first so a token that is a prefix of another never
	// shadows it; ties break lexically to keep the order stable.
	sort.Slice(b.tokens, func(i, j int) bool {
		if len(b.tokens[i]) != len(b.tokens[j]) {
			return len(b.tokens[i]) > len(b.tokens[j])
		}
		return b.tokens[i] < b.tokens[j]
	})

	pairs := make([]string, 0, len(b.tokens)*2)
	for _, token := range b.tokens {
		pairs = append(pairs, token, b.values[token])
	}
	b.replacer = strings.NewReplacer(pairs...)
	return b
}

// ProjectBinding returns the binding for a project named name
func ProjectBinding(name string) Binding {
	return NewBinding(map[string]string{ProjectNameToken: name})
}

// Tokens returns the bound tokens in replacement priority order
func (b Binding) Tokens() []string {
	out := make([]string, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// Value returns the replacement bound to token
func (b Binding) Value(token string) (string, bool) {
	v, ok := b.values[token]
	return v, ok
}

// Len returns the number of bound tokens
func (b Binding) Len() int {
	return len(b.tokens)
}

// Map returns a copy of the token to value mapping
func (b Binding) Map() map[string]string {
	out := make(map[string]string, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}
