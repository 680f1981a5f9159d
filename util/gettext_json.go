// Package util provides gettext JSON output for merged catalogs (msg-cat --json).
package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// GettextJSON is the top-level structure for msg-cat --json output.
type GettextJSON struct {
	HeaderComment string         `json:"header_comment"`
	HeaderMeta    string         `json:"header_meta"`
	Entries       []GettextEntry `json:"entries"`
}

// GettextEntry represents one catalog entry in the JSON format.
// Strings are unescaped.
type GettextEntry struct {
	MsgID    string   `json:"msgid"`
	MsgStr   string   `json:"msgstr"`
	Comments []string `json:"comments"`
}

// NewGettextJSON builds the JSON object from the header entry (may be nil)
// and the content entries.
func NewGettextJSON(header *PoEntry, entries []*PoEntry) *GettextJSON {
	out := GettextJSON{
		Entries: make([]GettextEntry, 0, len(entries)),
	}
	if header != nil {
		if len(header.Comments) > 0 {
			out.HeaderComment = strings.Join(header.Comments, "\n") + "\n"
		}
		out.HeaderMeta = header.MsgStr
	}
	for _, e := range entries {
		if e.IsHeader() {
			continue
		}
		ent := GettextEntry{
			MsgID:    e.MsgID,
			MsgStr:   e.MsgStr,
			Comments: e.Comments,
		}
		if ent.Comments == nil {
			ent.Comments = []string{}
		}
		out.Entries = append(out.Entries, ent)
	}
	return &out
}

// BuildGettextJSON writes the JSON object for header and entries to w.
func BuildGettextJSON(header *PoEntry, entries []*PoEntry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewGettextJSON(header, entries)); err != nil {
		return fmt.Errorf("encode gettext JSON: %w", err)
	}
	return nil
}
