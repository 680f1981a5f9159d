package util

import (
	"bytes"
	"testing"
)

func TestDetectCharset(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "multi-line header",
			content: `msgid ""
msgstr ""
"Project-Id-Version: X\n"
"Content-Type: text/plain; charset=ISO-8859-1\n"

msgid "A"
msgstr "a"
`,
			want: "ISO-8859-1",
		},
		{
			name:    "single-line header",
			content: "msgid \"\"\nmsgstr \"Content-Type: text/plain; charset=UTF-8\\n\"\n",
			want:    "UTF-8",
		},
		{
			name:    "template placeholder",
			content: "msgid \"\"\nmsgstr \"Content-Type: text/plain; charset=CHARSET\\n\"\n",
			want:    "CHARSET",
		},
		{
			name:    "no header",
			content: "msgid \"Content-Type: text/plain; charset=KOI8-R\"\nmsgstr \"\"\n",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCharset([]byte(tt.content)); got != tt.want {
				t.Errorf("DetectCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNeedsConversion(t *testing.T) {
	for _, cs := range []string{"", "CHARSET", "UTF-8", "utf8", "ASCII", "us-ascii"} {
		if NeedsConversion(cs) {
			t.Errorf("NeedsConversion(%q) = true, want false", cs)
		}
	}
	for _, cs := range []string{"ISO-8859-1", "CP1256", "KOI8-R"} {
		if !NeedsConversion(cs) {
			t.Errorf("NeedsConversion(%q) = false, want true", cs)
		}
	}
}

func TestFixupLatin1Catalog(t *testing.T) {
	data := []byte("msgid \"\"\n" +
		"msgstr \"Content-Type: text/plain; charset=ISO-8859-1\\n\"\n" +
		"\n" +
		"msgid \"Coffee\"\n" +
		"msgstr \"Caf\xe9\"\n" +
		"\n" +
		"msgid \"Coffee\"\n" +
		"msgstr \"Kaffee\"\n" +
		"\n")

	result, err := FixupCatalogBytes(data, nil)
	if err != nil {
		t.Fatalf("FixupCatalogBytes failed: %v", err)
	}
	if result.Charset != "ISO-8859-1" {
		t.Errorf("expected charset ISO-8859-1, got %q", result.Charset)
	}
	if got := result.Merge.Entries[0].MsgStr; got != "Café" {
		t.Errorf("expected decoded msgstr %q, got %q", "Café", got)
	}
	if !bytes.Contains(result.Content, []byte("msgstr \"Caf\xe9\"\n")) {
		t.Errorf("expected output re-encoded to ISO-8859-1:\n%q", result.Content)
	}
	if bytes.Contains(result.Content, []byte("Kaffee")) {
		t.Error("duplicate entry was not removed")
	}
}

func TestEncodeCatalog(t *testing.T) {
	header := &PoEntry{MsgStr: "Content-Type: text/plain; charset=ISO-8859-1\n"}
	entry := &PoEntry{MsgID: "Coffee", MsgStr: "Café"}

	data, err := EncodeCatalog([]*PoEntry{header, entry})
	if err != nil {
		t.Fatalf("EncodeCatalog failed: %v", err)
	}
	if !bytes.Contains(data, []byte("msgstr \"Caf\xe9\"\n")) {
		t.Errorf("expected ISO-8859-1 output, got %q", data)
	}

	data, err = EncodeCatalog([]*PoEntry{entry})
	if err != nil {
		t.Fatalf("EncodeCatalog without header failed: %v", err)
	}
	if !bytes.Contains(data, []byte("msgstr \"Café\"\n")) {
		t.Errorf("expected UTF-8 output without header, got %q", data)
	}
}
