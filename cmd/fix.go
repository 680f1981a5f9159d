package cmd

import (
	"fmt"
	"os"

	"github.com/arbricks/po-fixup/flag"
	"github.com/arbricks/po-fixup/util"
	"github.com/spf13/cobra"
)

type fixCommand struct {
	cmd *cobra.Command
	O   struct {
		Output string
	}
}

func (v *fixCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "fix [-o <output>] [po-file]...",
		Short: "Deduplicate PO catalogs and rewrite them in canonical form",
		Long: `Parse each PO catalog, keep the first entry for every msgid, apply the
override table and rewrite the catalog in canonical form.

The override table is built from the preset, the override files and the inline
overrides in po-fixup.yaml, then --preset and --override-file. A msgid found in the
override table always gets the corrected msgstr, whether it was duplicated or not.
The header entry (empty msgid) is kept first and is never overridden.

Without arguments, the catalogs listed in po-fixup.yaml are processed.
Catalogs are replaced atomically; use -o to write elsewhere (- for stdout).

Examples:
  po-fixup fix --preset arbricks-ar languages/arbricks-ar.po
  po-fixup fix --override-file fixes.json -o - po/fr.po`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file instead of rewriting the catalog (use - for stdout)")
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})
	setGroupedUsageTemplate(v.cmd)

	return v.cmd
}

func (v fixCommand) Execute(args []string) error {
	cfg, err := loadFixupConfig()
	if err != nil {
		return err
	}
	files, err := resolveCatalogs(args, cfg)
	if err != nil {
		return err
	}
	if v.O.Output != "" && len(files) > 1 {
		return newUserError("--output requires exactly one catalog")
	}
	overrides, err := loadOverrides(cfg)
	if err != nil {
		return err
	}

	opts := util.FixupOptions{
		Output: v.O.Output,
		DryRun: flag.DryRun(),
		Stdout: os.Stdout,
	}
	for _, file := range files {
		result, err := util.FixupCatalogFile(file, overrides, opts)
		if err != nil {
			return err
		}
		if v.O.Output == "-" {
			continue
		}
		switch {
		case opts.DryRun && result.Changed:
			fmt.Fprintf(os.Stderr, "%s: would be cleaned and formatted\n", file)
		case !opts.DryRun && v.O.Output != "" && v.O.Output != file:
			fmt.Fprintf(os.Stderr, "%s: cleaned and formatted into %s\n", file, v.O.Output)
		case opts.DryRun || !result.Changed:
			fmt.Fprintf(os.Stderr, "%s: already clean\n", file)
		default:
			fmt.Fprintf(os.Stderr, "%s: catalog cleaned and formatted\n", file)
		}
	}
	return nil
}

var fixCmd = fixCommand{}

func init() {
	rootCmd.AddCommand(fixCmd.Command())
}
