package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arbricks/po-fixup/config"
	"github.com/arbricks/po-fixup/flag"
	"github.com/arbricks/po-fixup/repository"
	"github.com/arbricks/po-fixup/util"
	log "github.com/sirupsen/logrus"
)

// loadFixupConfig loads configuration and applies --preset and
// --override-file on top of it.
func loadFixupConfig() (*config.FixupConfig, error) {
	cfg, err := config.LoadFixupConfig(flag.ConfigFile(), repository.WorkDirOrCwd())
	if err != nil {
		return nil, err
	}
	if preset := flag.Preset(); preset != "" {
		cfg.Preset = preset
	}
	cfg.OverrideFiles = append(cfg.OverrideFiles, flag.OverrideFiles()...)
	return cfg, nil
}

// loadOverrides returns the effective override table.
func loadOverrides(cfg *config.FixupConfig) (util.Overrides, error) {
	table, err := cfg.OverrideTable()
	if err != nil {
		return nil, err
	}
	log.Debugf("using %d overrides", table.Len())
	return table, nil
}

// resolveCatalogs returns args, or the configured catalogs when args is
// empty, and checks every file exists.
func resolveCatalogs(args []string, cfg *config.FixupConfig) ([]string, error) {
	files, err := util.ResolveCatalogFiles(args, cfg.Catalogs, repository.WorkDirOrCwd())
	if err != nil {
		return nil, newUserError(err)
	}
	for _, f := range files {
		if !util.IsFile(f) {
			return nil, newUserError("file does not exist:", f)
		}
	}
	return files, nil
}

// writeOutput calls fn with the file named by output, or stdout when output
// is empty or "-".
func writeOutput(output string, fn func(w io.Writer) error) error {
	if output == "" || output == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", output, err)
	}
	return nil
}

// writeCatalogOutput serializes entries in the charset declared by their
// header and writes them to output.
func writeCatalogOutput(output string, entries []*util.PoEntry) error {
	data, err := util.EncodeCatalog(entries)
	if err != nil {
		return err
	}
	return writeOutput(output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
