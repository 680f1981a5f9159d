// Package util provides PO catalog parsing, merging and serialization.
package util

import (
	"fmt"
	"strings"
)

const (
	msgidPrefix  = "msgid "
	msgstrPrefix = "msgstr "
)

// PoEntry represents a single PO catalog entry.
// MsgID and MsgStr hold unescaped text; escaping only happens on output.
type PoEntry struct {
	Comments  []string
	MsgID     string
	MsgStr    string
	HasMsgStr bool // false when no msgstr line was seen for this entry
	Line      int  // 1-based line number of the msgid line, 0 if built in memory
}

// IsHeader returns true for the catalog header entry (empty msgid).
func (e *PoEntry) IsHeader() bool {
	return e.MsgID == ""
}

// Diagnostic is a recoverable problem found while parsing.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// ParseResult holds entries in file order, including the header entry, and
// the diagnostics collected on the way. Parsing never fails: a malformed
// line yields a diagnostic and whatever content could be extracted.
type ParseResult struct {
	Entries     []*PoEntry
	Diagnostics []Diagnostic
}

type parseState int

const (
	stateComments parseState = iota
	stateMsgID
	stateMsgStr
)

type catalogParser struct {
	result  ParseResult
	state   parseState
	current *PoEntry
	hasKey  bool
	lineNo  int
}

func (p *catalogParser) warnf(format string, a ...interface{}) {
	p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{
		Line:    p.lineNo,
		Message: fmt.Sprintf(format, a...),
	})
}

func (p *catalogParser) entry() *PoEntry {
	if p.current == nil {
		p.current = &PoEntry{}
	}
	return p.current
}

// flush closes the current entry if it holds a key.
func (p *catalogParser) flush() {
	if p.current == nil || !p.hasKey {
		return
	}
	if !p.current.HasMsgStr {
		p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{
			Line:    p.current.Line,
			Message: fmt.Sprintf("msgid %q has no msgstr, using empty translation", p.current.MsgID),
		})
	}
	p.result.Entries = append(p.result.Entries, p.current)
	p.current = nil
	p.hasKey = false
	p.state = stateComments
}

// fieldValue extracts the unescaped content of a quoted field value.
func (p *catalogParser) fieldValue(raw string) string {
	content := strings.TrimSpace(raw)
	content, closed := strDeQuote(content)
	if !closed {
		p.warnf("missing closing quote")
	}
	return PoUnescape(content)
}

func (p *catalogParser) parseLine(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		// A blank line without a key keeps the accumulated comments for the
		// next entry, but not a stray msgstr.
		if !p.hasKey && p.current != nil && p.current.HasMsgStr {
			p.warnf("msgstr without msgid dropped")
			p.current.MsgStr, p.current.HasMsgStr = "", false
			p.state = stateComments
		}
		p.flush()
	case strings.HasPrefix(line, "#"):
		e := p.entry()
		e.Comments = append(e.Comments, line)
	case strings.HasPrefix(line, msgidPrefix):
		if p.hasKey {
			// Keep the previous entry rather than overwriting its msgid and
			// msgstr, so no translation is lost.
			p.warnf("msgid without preceding blank line, previous entry closed")
			p.flush()
		}
		e := p.entry()
		e.MsgID = p.fieldValue(strings.TrimPrefix(line, msgidPrefix))
		e.Line = p.lineNo
		p.hasKey = true
		p.state = stateMsgID
	case strings.HasPrefix(line, msgstrPrefix):
		e := p.entry()
		if !p.hasKey {
			p.warnf("msgstr before any msgid")
		}
		e.MsgStr = p.fieldValue(strings.TrimPrefix(line, msgstrPrefix))
		e.HasMsgStr = true
		p.state = stateMsgStr
	case strings.HasPrefix(trimmed, `"`):
		value := p.fieldValue(trimmed)
		switch p.state {
		case stateMsgID:
			p.current.MsgID += value
		case stateMsgStr:
			p.current.MsgStr += value
		default:
			p.warnf("continuation line outside of msgid or msgstr, ignored")
		}
	default:
		p.warnf("unsupported line ignored: %s", trimmed)
	}
}

// ParseCatalog parses catalog lines (without line terminators) into entries.
//
// Entries are separated by blank lines. Comment lines (starting with "#") are
// kept verbatim. Quoted continuation lines extend the msgid or msgstr that
// precedes them.
func ParseCatalog(lines []string) *ParseResult {
	p := catalogParser{}
	for i, line := range lines {
		p.lineNo = i + 1
		p.parseLine(line)
	}
	p.lineNo = len(lines)
	if p.hasKey {
		p.flush()
	} else if p.current != nil {
		if len(p.current.Comments) > 0 {
			p.warnf("%d trailing comment line(s) without entry dropped", len(p.current.Comments))
		}
		if p.current.HasMsgStr {
			p.warnf("msgstr without msgid dropped")
		}
	}
	return &p.result
}

// ParseCatalogBytes splits data into lines and parses them.
func ParseCatalogBytes(data []byte) *ParseResult {
	return ParseCatalog(SplitLines(data))
}

// SplitLines splits data on "\n", dropping a trailing "\r" from each line and
// the empty tail after a final newline.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
