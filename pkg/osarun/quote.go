package osarun

import "strings"

// QuoteAppleScript returns s as a double-quoted AppleScript string literal.
// Backslashes and double quotes are escaped so paths containing either
// cannot break out of the generated script.
func QuoteAppleScript(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
