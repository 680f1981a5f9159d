package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapOverrides map[string]string

func (m mapOverrides) Lookup(msgid string) (string, bool) {
	v, ok := m[msgid]
	return v, ok
}

func newEntry(msgid, msgstr string, comments ...string) *PoEntry {
	return &PoEntry{MsgID: msgid, MsgStr: msgstr, HasMsgStr: true, Comments: comments}
}

func msgPairs(entries []*PoEntry) [][2]string {
	pairs := make([][2]string, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, [2]string{e.MsgID, e.MsgStr})
	}
	return pairs
}

func TestMergeFirstSeenWins(t *testing.T) {
	entries := []*PoEntry{
		newEntry("A", "x", "# first"),
		newEntry("B", "y"),
		newEntry("A", "z", "# second"),
	}
	result := MergePoEntries(entries, nil)

	assert.Nil(t, result.Header)
	assert.Equal(t, [][2]string{{"A", "x"}, {"B", "y"}}, msgPairs(result.Entries))
	assert.Equal(t, []string{"# first"}, result.Entries[0].Comments)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "A", result.Duplicates[0].MsgID)
	assert.Equal(t, "z", result.Duplicates[0].Discarded)
	assert.Empty(t, result.Overridden)
}

func TestMergeOverridePrecedence(t *testing.T) {
	entries := []*PoEntry{
		newEntry("A", "x"),
		newEntry("A", "z"),
	}
	result := MergePoEntries(entries, mapOverrides{"A": "OVERRIDE"})

	assert.Equal(t, [][2]string{{"A", "OVERRIDE"}}, msgPairs(result.Entries))
	assert.Len(t, result.Duplicates, 1)
	assert.Equal(t, []string{"A"}, result.Overridden)
}

func TestMergeUnconditionalOverride(t *testing.T) {
	entries := []*PoEntry{
		newEntry("A", "x"),
		newEntry("B", "y"),
	}
	result := MergePoEntries(entries, mapOverrides{"A": "OVERRIDE", "C": "unused"})

	assert.Equal(t, [][2]string{{"A", "OVERRIDE"}, {"B", "y"}}, msgPairs(result.Entries))
	assert.Empty(t, result.Duplicates)
	assert.Equal(t, []string{"A"}, result.Overridden)
}

func TestMergeOverrideSameValueNotReported(t *testing.T) {
	result := MergePoEntries([]*PoEntry{newEntry("A", "fixed")}, mapOverrides{"A": "fixed"})

	assert.Equal(t, "fixed", result.Entries[0].MsgStr)
	assert.Empty(t, result.Overridden)
}

func TestMergeOverrideFillsMissingMsgStr(t *testing.T) {
	e := &PoEntry{MsgID: "A"}
	result := MergePoEntries([]*PoEntry{e}, mapOverrides{"A": "a"})

	assert.Equal(t, "a", result.Entries[0].MsgStr)
	assert.True(t, result.Entries[0].HasMsgStr)
}

func TestMergeHeaderIsolation(t *testing.T) {
	header := newEntry("", "Project-Id-Version: X", "# header")
	entries := []*PoEntry{
		newEntry("A", "x"),
		header,
		newEntry("A", "y"),
	}
	result := MergePoEntries(entries, mapOverrides{"": "must not apply"})

	require.NotNil(t, result.Header)
	assert.Equal(t, "Project-Id-Version: X", result.Header.MsgStr)
	all := result.All()
	require.Len(t, all, 2)
	assert.Same(t, header, all[0])
	assert.Equal(t, [2]string{"A", "x"}, msgPairs(all)[1])
	assert.Empty(t, result.Overridden)
}

func TestMergeLastHeaderWins(t *testing.T) {
	entries := []*PoEntry{
		newEntry("", "first"),
		newEntry("A", "a"),
		newEntry("", "second"),
	}
	result := MergePoEntries(entries, nil)

	require.NotNil(t, result.Header)
	assert.Equal(t, "second", result.Header.MsgStr)
	assert.Equal(t, 1, result.DroppedHeaders)
	assert.Len(t, result.All(), 2)
}

func TestMergeScenario(t *testing.T) {
	parsed := ParseCatalogBytes([]byte(`msgid ""
msgstr "Project-Id-Version: X"

msgid "Hello"
msgstr "Bonjour"

msgid "Hello"
msgstr "Salut"
`))
	require.Empty(t, parsed.Diagnostics)

	result := MergePoEntries(parsed.Entries, mapOverrides{"Hello": "Salut, mon ami"})

	require.NotNil(t, result.Header)
	assert.Equal(t, "Project-Id-Version: X", result.Header.MsgStr)
	assert.Equal(t, [][2]string{{"Hello", "Salut, mon ami"}}, msgPairs(result.Entries))
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, 7, result.Duplicates[0].Line)
	assert.Equal(t, 4, result.Duplicates[0].FirstLine)
}
