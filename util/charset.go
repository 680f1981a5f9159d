package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qiniu/iconv"
)

const defaultEncoding = "UTF-8"

var reHeaderCharset = regexp.MustCompile(`(?i)^Content-Type:.*charset=([A-Za-z0-9_.:-]+)`)

// DetectCharset returns the charset declared in the Content-Type field of the
// catalog header, or "" if there is no header or no declaration. The header
// is plain ASCII in every charset gettext supports, so data can be parsed
// before conversion.
func DetectCharset(data []byte) string {
	for _, e := range ParseCatalogBytes(data).Entries {
		if e.IsHeader() {
			if charset := HeaderCharset(e); charset != "" {
				return charset
			}
		}
	}
	return ""
}

// HeaderCharset returns the charset declared by a header entry, "" if none.
func HeaderCharset(header *PoEntry) string {
	if header == nil {
		return ""
	}
	for _, field := range strings.Split(header.MsgStr, "\n") {
		if m := reHeaderCharset.FindStringSubmatch(strings.TrimSpace(field)); m != nil {
			return m[1]
		}
	}
	return ""
}

// sameEncoding compares encoding names ignoring case and dashes.
func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// NeedsConversion returns false for charsets that are already UTF-8
// compatible, and for the "CHARSET" placeholder of templates.
func NeedsConversion(charset string) bool {
	if charset == "" || charset == "CHARSET" {
		return false
	}
	for _, enc := range []string{defaultEncoding, "ASCII", "US-ASCII"} {
		if sameEncoding(enc, charset) {
			return false
		}
	}
	return true
}

func convertCharset(data []byte, to, from string) ([]byte, error) {
	cd, err := iconv.Open(to, from)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open(%s, %s) failed: %w", to, from, err)
	}
	defer cd.Close()

	outbuf := make([]byte, len(data)*2+16)
	out, inleft, err := cd.Conv(data, outbuf)
	if err != nil {
		return nil, fmt.Errorf("bad %s characters at byte %d: %w",
			from, len(data)-inleft, err)
	}
	return out, nil
}

// DecodeToUTF8 converts data from charset to UTF-8.
func DecodeToUTF8(data []byte, charset string) ([]byte, error) {
	if !NeedsConversion(charset) {
		return data, nil
	}
	return convertCharset(data, defaultEncoding, charset)
}

// EncodeFromUTF8 converts UTF-8 data back to charset.
func EncodeFromUTF8(data []byte, charset string) ([]byte, error) {
	if !NeedsConversion(charset) {
		return data, nil
	}
	return convertCharset(data, charset, defaultEncoding)
}

// EncodeCatalog serializes entries and converts the result from UTF-8 to the
// charset declared by the first header entry among them.
func EncodeCatalog(entries []*PoEntry) ([]byte, error) {
	var charset string
	for _, e := range entries {
		if e.IsHeader() {
			charset = HeaderCharset(e)
			break
		}
	}
	return EncodeFromUTF8(BuildCatalogContent(entries), charset)
}
