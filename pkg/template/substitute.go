package template

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Substitute replaces every occurrence of every bound token in text
func Substitute(text string, b Binding) string {
	if b.replacer == nil || len(b.tokens) == 0 {
		return text
	}
	return b.replacer.Replace(text)
}

// SubstituteBytes is Substitute for file content. The second return value
// reports whether anything was replaced.
func SubstituteBytes(content []byte, b Binding) ([]byte, bool) {
	if _, found := ContainsToken(string(content), b); !found {
		return content, false
	}
	return []byte(Substitute(string(content), b)), true
}

// ContainsToken returns the first bound token found in text
func ContainsToken(text string, b Binding) (string, bool) {
	for _, token := range b.tokens {
		if strings.Contains(text, token) {
			return token, true
		}
	}
	return "", false
}

// IsText reports whether content is decodable text. Anything else is treated
// as binary and copied without substitution.
func IsText(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return false
	}
	return utf8.Valid(content)
}
