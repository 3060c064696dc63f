// Package textops holds the string nodes: newline encoding and unique
// name generation.
package textops

import "strings"

// DefaultNewlineToken is used when no token is given: a literal backslash
// followed by n.
const DefaultNewlineToken = `\n`

func tokenOrDefault(token string) string {
	if token == "" {
		return DefaultNewlineToken
	}
	return token
}

// EncodeNewlines replaces every "\n" in text with token.
func EncodeNewlines(text, token string) string {
	return strings.ReplaceAll(text, "\n", tokenOrDefault(token))
}

// DecodeNewlines replaces every token in text with "\n". It inverts
// EncodeNewlines for text that did not already contain token.
func DecodeNewlines(text, token string) string {
	return strings.ReplaceAll(text, tokenOrDefault(token), "\n")
}
