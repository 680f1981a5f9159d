package util

import (
	"os"
	"path/filepath"
	"testing"
)

const statCatalog = `msgid ""
msgstr "Content-Type: text/plain; charset=UTF-8\n"

# Translated
msgid "Hello"
msgstr "Bonjour"

# Untranslated
msgid "World"
msgstr ""

# Same as msgid (suspect)
msgid "File"
msgstr "File"

msgid "Hello"
msgstr "Salut"

msgid "Save"
msgstr "Sauver"
`

func TestCountCatalogStats(t *testing.T) {
	stats := CountCatalogStats([]byte(statCatalog), mapOverrides{"Save": "Enregistrer"})

	want := CatalogStats{
		Entries:      5,
		Unique:       4,
		Duplicates:   1,
		Overridable:  1,
		Untranslated: 1,
		Same:         1,
		HasHeader:    true,
	}
	if *stats != want {
		t.Errorf("got %+v, want %+v", *stats, want)
	}
	expected := "4 messages, 1 untranslated message, 1 same message, 1 duplicate entry, 1 pending override.\n"
	if got := FormatCatalogStats(stats); got != expected {
		t.Errorf("FormatCatalogStats() = %q, want %q", got, expected)
	}
}

func TestCountCatalogFileStats(t *testing.T) {
	tmpDir := t.TempDir()
	poFile := filepath.Join(tmpDir, "test.po")
	if err := os.WriteFile(poFile, []byte(statCatalog), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	stats, err := CountCatalogFileStats(poFile, nil)
	if err != nil {
		t.Fatalf("CountCatalogFileStats failed: %v", err)
	}
	if stats.Unique != 4 || stats.Overridable != 0 {
		t.Errorf("got %+v", *stats)
	}

	data, _ := os.ReadFile(poFile)
	if string(data) != statCatalog {
		t.Error("statistics must not modify the catalog")
	}

	if _, err := CountCatalogFileStats(filepath.Join(tmpDir, "missing.po"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatCatalogStats(t *testing.T) {
	tests := []struct {
		stats CatalogStats
		want  string
	}{
		{CatalogStats{HasHeader: true}, "0 messages.\n"},
		{CatalogStats{Unique: 1, HasHeader: true}, "1 message.\n"},
		{CatalogStats{Unique: 3, Duplicates: 2, Diagnostics: 1}, "3 messages, 2 duplicate entries, 1 parse warning, no header.\n"},
	}
	for _, tt := range tests {
		if got := FormatCatalogStats(&tt.stats); got != tt.want {
			t.Errorf("FormatCatalogStats(%+v) = %q, want %q", tt.stats, got, tt.want)
		}
	}
}
