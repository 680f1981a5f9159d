package util

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DiffStat holds the diff statistics between two catalogs.
type DiffStat struct {
	Added   int // Entries in dest but not in src
	Changed int // Same msgid but different msgstr
	Deleted int // Entries in src but not in dest
}

// IsZero reports whether nothing changed.
func (s DiffStat) IsZero() bool {
	return s.Added == 0 && s.Changed == 0 && s.Deleted == 0
}

func (s DiffStat) String() string {
	var parts []string
	if s.Added != 0 {
		parts = append(parts, fmt.Sprintf("%d new", s.Added))
	}
	if s.Changed != 0 {
		parts = append(parts, fmt.Sprintf("%d changed", s.Changed))
	}
	if s.Deleted != 0 {
		parts = append(parts, fmt.Sprintf("%d removed", s.Deleted))
	}
	if len(parts) == 0 {
		return "Nothing changed."
	}
	return strings.Join(parts, ", ")
}

// PoEntriesEqual checks if two entries carry the same message.
func PoEntriesEqual(e1, e2 *PoEntry) bool {
	return e1.MsgID == e2.MsgID && e1.MsgStr == e2.MsgStr
}

func sortedByMsgID(entries []*PoEntry) []*PoEntry {
	out := make([]*PoEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsHeader() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MsgID < out[j].MsgID })
	return out
}

// CompareCatalogs compares two deduplicated entry lists. Returns DiffStat and
// the entries of dest that are new or changed compared to src, ordered by
// msgid. Header entries are ignored.
func CompareCatalogs(src, dest []*PoEntry) (DiffStat, []*PoEntry) {
	oldEntries := sortedByMsgID(src)
	newEntries := sortedByMsgID(dest)

	var stat DiffStat
	var changed []*PoEntry
	i, j := 0, 0
	for i < len(oldEntries) && j < len(newEntries) {
		cmp := strings.Compare(oldEntries[i].MsgID, newEntries[j].MsgID)
		if cmp < 0 {
			stat.Deleted++
			i++
		} else if cmp > 0 {
			stat.Added++
			changed = append(changed, newEntries[j])
			j++
		} else {
			if !PoEntriesEqual(oldEntries[i], newEntries[j]) {
				stat.Changed++
				changed = append(changed, newEntries[j])
			}
			i++
			j++
		}
	}
	stat.Deleted += len(oldEntries) - i
	for ; j < len(newEntries); j++ {
		stat.Added++
		changed = append(changed, newEntries[j])
	}
	log.Debugf("compare stats: deleted=%d, added=%d, changed=%d", stat.Deleted, stat.Added, stat.Changed)
	return stat, changed
}

func loadMergedCatalog(data []byte, name string) (*MergeResult, error) {
	data, err := DecodeToUTF8(data, DetectCharset(data))
	if err != nil {
		return nil, fmt.Errorf("fail to decode %s: %w", name, err)
	}
	parsed := ParseCatalogBytes(data)
	return MergePoEntries(parsed.Entries, nil), nil
}

// PoCompare compares src and dest catalog content. Both sides are
// deduplicated first, so a repeated msgid counts once. Returns the header of
// dest (nil if it has none) with the new or changed entries.
func PoCompare(src, dest []byte) (DiffStat, *PoEntry, []*PoEntry, error) {
	oldMerged, err := loadMergedCatalog(src, "src")
	if err != nil {
		return DiffStat{}, nil, nil, err
	}
	newMerged, err := loadMergedCatalog(dest, "dest")
	if err != nil {
		return DiffStat{}, nil, nil, err
	}
	stat, entries := CompareCatalogs(oldMerged.Entries, newMerged.Entries)
	return stat, newMerged.Header, entries, nil
}
