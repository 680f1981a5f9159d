package util

import (
	"bytes"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// FixupResult holds every stage of one pipeline run.
type FixupResult struct {
	Parse   *ParseResult
	Merge   *MergeResult
	Content []byte // canonical catalog, in the catalog's own charset
	Charset string // charset declared in the header, "" if none
	Changed bool   // Content differs from the input
}

// FixupOptions controls where FixupCatalogFile writes its result.
type FixupOptions struct {
	// Output is the destination path. Empty means rewrite the input file,
	// "-" means write to Stdout.
	Output string
	// DryRun runs the pipeline without writing anything.
	DryRun bool
	// Stdout is used when Output is "-"; defaults to os.Stdout.
	Stdout io.Writer
}

// FixupCatalogBytes parses data, merges duplicate entries with overrides and
// serializes the result in canonical form.
func FixupCatalogBytes(data []byte, overrides Overrides) (*FixupResult, error) {
	result := &FixupResult{Charset: DetectCharset(data)}

	utf8Data, err := DecodeToUTF8(data, result.Charset)
	if err != nil {
		return nil, err
	}
	result.Parse = ParseCatalogBytes(utf8Data)
	result.Merge = MergePoEntries(result.Parse.Entries, overrides)
	content := BuildCatalogContent(result.Merge.All())
	result.Content, err = EncodeFromUTF8(content, result.Charset)
	if err != nil {
		return nil, err
	}
	result.Changed = !bytes.Equal(data, result.Content)
	return result, nil
}

// FixupCatalogFile runs the pipeline on the catalog at path and writes the
// canonical result according to opts. Read and write failures are returned
// to the caller.
func FixupCatalogFile(path string, overrides Overrides, opts FixupOptions) (*FixupResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read catalog: %w", err)
	}

	result, err := FixupCatalogBytes(data, overrides)
	if err != nil {
		return nil, fmt.Errorf("fail to convert %s: %w", path, err)
	}
	logFixupResult(path, result)

	if opts.DryRun {
		log.Debugf("dryrun: skip writing %s", path)
		return result, nil
	}

	switch opts.Output {
	case "-":
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := w.Write(result.Content); err != nil {
			return nil, fmt.Errorf("fail to write catalog: %w", err)
		}
	case "", path:
		if !result.Changed {
			log.Debugf("%s is already canonical", path)
			return result, nil
		}
		mode := os.FileMode(0644)
		if fi, err := os.Stat(path); err == nil {
			mode = fi.Mode().Perm()
		}
		if err := WriteFileAtomic(path, result.Content, mode); err != nil {
			return nil, err
		}
	default:
		if err := WriteFileAtomic(opts.Output, result.Content, 0644); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func logFixupResult(path string, result *FixupResult) {
	var msgs []string
	for _, d := range result.Parse.Diagnostics {
		msgs = append(msgs, d.String())
	}
	ReportWarnAndErrors(msgs, path+":", true)

	for _, d := range result.Merge.Duplicates {
		log.Debugf("%s:%d: duplicate of msgid %q from line %d removed",
			path, d.Line, d.MsgID, d.FirstLine)
	}
	for _, msgid := range result.Merge.Overridden {
		log.Debugf("%s: msgstr of %q replaced from override table", path, msgid)
	}
	log.Infof("%s: %d entries, %d duplicates removed, %d overrides applied",
		path, len(result.Merge.Entries), len(result.Merge.Duplicates),
		len(result.Merge.Overridden))
}
