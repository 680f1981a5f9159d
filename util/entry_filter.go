// Package util provides entry state filtering for msg-cat.
package util

// EntryStateFilter specifies which entry states to include.
// Translated and Untranslated combine with OR; OnlySame excludes both.
type EntryStateFilter struct {
	// Translated: msgstr not empty
	Translated bool
	// Untranslated: msgstr empty
	Untranslated bool
	// OnlySame: only entries where msgstr == msgid
	OnlySame bool
}

// HasStateFilter returns true if any of --translated, --untranslated was set.
func (f EntryStateFilter) HasStateFilter() bool {
	return f.Translated || f.Untranslated
}

// FilterPoEntries returns the entries matching filter, in order.
// The header entry always matches.
func FilterPoEntries(entries []*PoEntry, filter EntryStateFilter) []*PoEntry {
	var result []*PoEntry
	for _, e := range entries {
		if e.IsHeader() || MatchPoEntryState(e, filter) {
			result = append(result, e)
		}
	}
	return result
}

// MatchPoEntryState returns true if the entry matches the filter.
func MatchPoEntryState(e *PoEntry, filter EntryStateFilter) bool {
	if filter.OnlySame {
		return isSamePoEntry(e)
	}
	if filter.HasStateFilter() {
		if filter.Translated && isTranslatedPoEntry(e) {
			return true
		}
		if filter.Untranslated && !isTranslatedPoEntry(e) {
			return true
		}
		return false
	}
	return true
}

func isTranslatedPoEntry(e *PoEntry) bool {
	return e.MsgStr != ""
}

func isSamePoEntry(e *PoEntry) bool {
	return e.MsgStr == e.MsgID
}
