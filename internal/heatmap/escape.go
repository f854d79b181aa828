package heatmap

import "strings"

// _escaper prefixes every LaTeX-reserved character with a backslash.
//
// strings.Replacer scans left to right and never revisits its output,
// so a backslash inserted for one character is not escaped again.
var _escaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`&`, `\&`,
	`^`, `\^`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
)

// Escape returns s with each of \ % & ^ # _ { } prefixed by a backslash
// so that it may be placed verbatim inside LaTeX markup.
func Escape(s string) string {
	return _escaper.Replace(s)
}

// EscapeTokens escapes each token with [Escape].
// It returns a new slice of the same length and order;
// tokens is left untouched.
func EscapeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Escape(tok)
	}
	return out
}
