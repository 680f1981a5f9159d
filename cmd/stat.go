package cmd

import (
	"fmt"
	"strings"

	"github.com/arbricks/po-fixup/flag"
	"github.com/arbricks/po-fixup/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat [po-file]...",
		Short: "Report statistics for PO catalogs",
		Long: `Report entry statistics for PO catalogs:
  messages     - distinct msgids, header excluded
  untranslated - entries with empty msgstr
  same         - entries where msgstr equals msgid (suspect untranslated)
  duplicates   - entries "fix" would remove
  overrides    - entries whose msgstr "fix" would replace
  warnings     - recoverable parse problems

Without arguments, the catalogs listed in po-fixup.yaml are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	cfg, err := loadFixupConfig()
	if err != nil {
		return err
	}
	files, err := resolveCatalogs(args, cfg)
	if err != nil {
		return err
	}
	overrides, err := loadOverrides(cfg)
	if err != nil {
		return err
	}

	for _, file := range files {
		stats, err := util.CountCatalogFileStats(file, overrides)
		if err != nil {
			return err
		}
		if flag.Verbose() > 0 {
			title := fmt.Sprintf("PO file: %s", file)
			fmt.Println(title)
			fmt.Println(strings.Repeat("-", len(title)))
			fmt.Printf("  header:       %v\n", stats.HasHeader)
			fmt.Printf("  entries:      %d\n", stats.Entries)
			fmt.Printf("  messages:     %d\n", stats.Unique)
			fmt.Printf("  untranslated: %d\n", stats.Untranslated)
			fmt.Printf("  same:         %d\n", stats.Same)
			fmt.Printf("  duplicates:   %d\n", stats.Duplicates)
			fmt.Printf("  overrides:    %d\n", stats.Overridable)
			fmt.Printf("  warnings:     %d\n", stats.Diagnostics)
		} else {
			fmt.Printf("%s: %s", file, util.FormatCatalogStats(stats))
		}
	}
	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
