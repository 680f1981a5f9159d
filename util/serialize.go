package util

import (
	"strings"
)

// FormatPoEntry returns the lines for one entry: comments, msgid, msgstr and
// a blank separator line.
func FormatPoEntry(e *PoEntry) []string {
	lines := make([]string, 0, len(e.Comments)+3)
	lines = append(lines, e.Comments...)
	lines = append(lines,
		formatPoField(strings.TrimSpace(msgidPrefix), e.MsgID),
		formatPoField(strings.TrimSpace(msgstrPrefix), e.MsgStr),
		"")
	return lines
}

func formatPoField(key, value string) string {
	return key + ` "` + PoEscape(value) + `"`
}

// BuildCatalogLines serializes entries in order.
func BuildCatalogLines(entries []*PoEntry) []string {
	var lines []string
	for _, e := range entries {
		lines = append(lines, FormatPoEntry(e)...)
	}
	return lines
}

// BuildCatalogContent serializes entries in order; every line, including the
// blank line after the last entry, ends with "\n".
func BuildCatalogContent(entries []*PoEntry) []byte {
	var b strings.Builder
	for _, line := range BuildCatalogLines(entries) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
