// Package util provides PO catalog statistics.
package util

import (
	"fmt"
	"os"
	"strings"
)

// CatalogStats holds statistics for a catalog before and after merging.
type CatalogStats struct {
	Entries      int  // Entries in the file, header excluded
	Unique       int  // Distinct msgids
	Duplicates   int  // Entries a merge would remove
	Overridable  int  // Surviving entries whose msgstr the override table changes
	Untranslated int  // Surviving entries with empty msgstr after merging
	Same         int  // Surviving entries where msgstr equals msgid
	HasHeader    bool // Catalog has an entry with empty msgid
	Diagnostics  int  // Recoverable parse problems
}

// CountCatalogStats parses and merges data and returns its statistics.
// The data itself is not modified.
func CountCatalogStats(data []byte, overrides Overrides) *CatalogStats {
	parsed := ParseCatalogBytes(data)
	stats := &CatalogStats{Diagnostics: len(parsed.Diagnostics)}
	for _, e := range parsed.Entries {
		if e.IsHeader() {
			stats.HasHeader = true
			continue
		}
		stats.Entries++
	}

	merged := MergePoEntries(parsed.Entries, overrides)
	stats.Unique = len(merged.Entries)
	stats.Duplicates = len(merged.Duplicates)
	stats.Overridable = len(merged.Overridden)
	for _, e := range merged.Entries {
		if !isTranslatedPoEntry(e) {
			stats.Untranslated++
		} else if isSamePoEntry(e) {
			stats.Same++
		}
	}
	return stats
}

// CountCatalogFileStats reads a catalog file and returns its statistics.
func CountCatalogFileStats(path string, overrides Overrides) (*CatalogStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	utf8Data, err := DecodeToUTF8(data, DetectCharset(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return CountCatalogStats(utf8Data, overrides), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatCatalogStats formats stats in one line, similar to msgfmt --statistics.
// Only non-zero categories after the message count are shown.
func FormatCatalogStats(stats *CatalogStats) string {
	parts := []string{plural(stats.Unique, "message", "messages")}
	if stats.Untranslated > 0 {
		parts = append(parts, plural(stats.Untranslated, "untranslated message", "untranslated messages"))
	}
	if stats.Same > 0 {
		parts = append(parts, plural(stats.Same, "same message", "same messages"))
	}
	if stats.Duplicates > 0 {
		parts = append(parts, plural(stats.Duplicates, "duplicate entry", "duplicate entries"))
	}
	if stats.Overridable > 0 {
		parts = append(parts, plural(stats.Overridable, "pending override", "pending overrides"))
	}
	if stats.Diagnostics > 0 {
		parts = append(parts, plural(stats.Diagnostics, "parse warning", "parse warnings"))
	}
	if !stats.HasHeader {
		parts = append(parts, "no header")
	}
	return strings.Join(parts, ", ") + ".\n"
}
