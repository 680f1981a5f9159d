package util

import (
	log "github.com/sirupsen/logrus"
)

// Overrides is a read-only table of known-correct translations keyed by msgid.
type Overrides interface {
	Lookup(msgid string) (msgstr string, ok bool)
}

// Duplicate records an entry discarded because its msgid was already seen.
type Duplicate struct {
	MsgID     string
	Line      int    // line of the discarded entry
	FirstLine int    // line of the entry that was kept
	Discarded string // msgstr of the discarded entry
}

// MergeResult is the output of MergePoEntries.
type MergeResult struct {
	// Header is the entry with an empty msgid, nil if the catalog has none.
	Header *PoEntry
	// Entries are the surviving entries in first-seen order, header excluded.
	Entries []*PoEntry
	// Duplicates lists every discarded entry in input order.
	Duplicates []Duplicate
	// Overridden lists msgids whose msgstr was changed by the override table.
	Overridden []string
	// DroppedHeaders counts header entries replaced by a later one.
	DroppedHeaders int
}

// All returns the header (if any) followed by the surviving entries.
func (r *MergeResult) All() []*PoEntry {
	all := make([]*PoEntry, 0, len(r.Entries)+1)
	if r.Header != nil {
		all = append(all, r.Header)
	}
	return append(all, r.Entries...)
}

// MergePoEntries removes duplicate entries and applies the override table.
//
// The first entry for each msgid is kept and later ones are dropped together
// with their comments. The override table is applied to every surviving entry,
// whether or not it had duplicates. The header entry is never deduplicated or
// overridden; if more than one exists the last one is kept.
//
// Entries in the result are the same pointers as the input, so input entries
// may be modified.
func MergePoEntries(entries []*PoEntry, overrides Overrides) *MergeResult {
	var (
		result   = &MergeResult{}
		index    = make(map[string]*PoEntry, len(entries))
		original = make(map[string]string, len(entries))
	)

	lookup := func(msgid string) (string, bool) {
		if overrides == nil {
			return "", false
		}
		return overrides.Lookup(msgid)
	}

	for _, e := range entries {
		if e.IsHeader() {
			if result.Header != nil {
				log.Debugf("header entry at line %d replaced by the one at line %d",
					result.Header.Line, e.Line)
				result.DroppedHeaders++
			}
			result.Header = e
			continue
		}

		kept, ok := index[e.MsgID]
		if !ok {
			index[e.MsgID] = e
			original[e.MsgID] = e.MsgStr
			result.Entries = append(result.Entries, e)
			continue
		}

		result.Duplicates = append(result.Duplicates, Duplicate{
			MsgID:     e.MsgID,
			Line:      e.Line,
			FirstLine: kept.Line,
			Discarded: e.MsgStr,
		})
		if msgstr, ok := lookup(e.MsgID); ok {
			kept.MsgStr = msgstr
			kept.HasMsgStr = true
		} else if kept.MsgStr != e.MsgStr {
			log.Debugf("duplicate msgid %q at line %d, keep translation from line %d",
				e.MsgID, e.Line, kept.Line)
		}
	}

	for _, e := range result.Entries {
		msgstr, ok := lookup(e.MsgID)
		if !ok {
			continue
		}
		e.MsgStr = msgstr
		e.HasMsgStr = true
		if msgstr != original[e.MsgID] {
			result.Overridden = append(result.Overridden, e.MsgID)
		}
	}

	return result
}
