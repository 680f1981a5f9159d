package util

import (
	"strings"
)

// PoEscape encodes s for use inside a double-quoted PO string.
// Backslashes are escaped first so the backslashes introduced for quotes,
// newlines, tabs and carriage returns are not escaped twice.
func PoEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// PoUnescape decodes PO escape sequences in s into real characters.
// PO uses \n (newline), \t (tab), \r (carriage return), \" (quote), \\ (backslash).
// A backslash followed by anything else is kept as is.
//
// Decoding is done in one pass, so `\\n` decodes to a backslash followed by
// the letter n, never to a backslash followed by a newline.
func PoUnescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
			case 't':
				b.WriteByte('\t')
				i++
			case 'r':
				b.WriteByte('\r')
				i++
			case '"':
				b.WriteByte('"')
				i++
			case '\\':
				b.WriteByte('\\')
				i++
			default:
				b.WriteByte(s[i])
			}
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// strDeQuote strips one layer of enclosing double quotes. The second return
// value is false when the opening quote has no matching closing quote; the
// content after the opening quote is returned in that case.
func strDeQuote(s string) (string, bool) {
	if !strings.HasPrefix(s, `"`) {
		return s, true
	}
	if len(s) >= 2 && strings.HasSuffix(s, `"`) && !hasEscapedTail(s) {
		return s[1 : len(s)-1], true
	}
	return s[1:], false
}

// hasEscapedTail reports whether the last quote in s is preceded by an odd
// number of backslashes, i.e. the string is `"abc\"` and is not closed.
func hasEscapedTail(s string) bool {
	n := 0
	for i := len(s) - 2; i > 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
