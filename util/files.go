// Package util provides file selection and writing utilities for catalogs.
package util

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	log "github.com/sirupsen/logrus"
)

// ResolveCatalogFiles returns the catalogs to work on: the arguments if any
// were given, otherwise the catalogs from configuration. Relative configured
// paths are resolved against baseDir; arguments are used as given.
func ResolveCatalogFiles(args, configured []string, baseDir string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(configured) == 0 {
		return nil, fmt.Errorf("no catalog given and none configured\nHint: pass a PO file or set \"catalogs\" in po-fixup.yaml")
	}
	files := make([]string, 0, len(configured))
	for _, f := range configured {
		if !filepath.IsAbs(f) && baseDir != "" {
			f = filepath.Join(baseDir, f)
		}
		log.Debugf("using configured catalog: %s", f)
		files = append(files, f)
	}
	return files, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path once the data is synced, then sets perm on the result. On
// failure path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fail to write %s: %w", path, err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.Mode().Perm() != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("fail to chmod %s: %w", path, err)
		}
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}
