package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arbricks/po-fixup/util"
	"github.com/spf13/cobra"
)

type msgCatCommand struct {
	cmd *cobra.Command
	O   struct {
		Output       string
		JSON         bool
		NoOverrides  bool
		Translated   bool
		Untranslated bool
		OnlySame     bool
	}
}

func (v *msgCatCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "msg-cat [-o <output>] [--json] <po-file>...",
		Short: "Concatenate and merge PO catalogs",
		Long: `Merge one or more PO catalogs into a single output.
Entries of all files are taken in file order; for a duplicate msgid the first
occurrence is kept, then the override table is applied (use --no-overrides to
skip it). The last header entry found is used.

By default, all entries are selected.
Use --translated, --untranslated to filter by state (OR relationship).
Use --only-same for entries where msgstr equals msgid.

Write result to the file given by -o; use -o - or omit -o to write to stdout.
Use --json to output gettext JSON; otherwise output is PO format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	// General options
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.BoolVar(&v.O.JSON, "json", false, "output JSON instead of PO text")
	fs.BoolVar(&v.O.NoOverrides, "no-overrides", false, "do not apply the override table")
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})
	_ = fs.SetAnnotation("json", groupAnnotationKey, []string{"General options"})
	_ = fs.SetAnnotation("no-overrides", groupAnnotationKey, []string{"General options"})

	// State filter: translated, untranslated (OR when combined)
	fs.BoolVar(&v.O.Translated, "translated", false, "select translated entries")
	fs.BoolVar(&v.O.Untranslated, "untranslated", false, "select untranslated entries")
	fs.BoolVar(&v.O.OnlySame, "only-same", false, "only entries where msgstr equals msgid")
	_ = fs.SetAnnotation("translated", groupAnnotationKey, []string{"State filter"})
	_ = fs.SetAnnotation("untranslated", groupAnnotationKey, []string{"State filter"})
	_ = fs.SetAnnotation("only-same", groupAnnotationKey, []string{"State filter"})

	setGroupedUsageTemplate(v.cmd)

	return v.cmd
}

func (v msgCatCommand) Execute(args []string) error {
	if len(args) == 0 {
		return newUserError("msg-cat requires at least one input file")
	}
	if v.O.OnlySame && (v.O.Translated || v.O.Untranslated) {
		return newUserError("--only-same is mutually exclusive with --translated, --untranslated")
	}

	var overrides util.Overrides
	if !v.O.NoOverrides {
		cfg, err := loadFixupConfig()
		if err != nil {
			return err
		}
		if overrides, err = loadOverrides(cfg); err != nil {
			return err
		}
	}

	var entries []*util.PoEntry
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		data, err = util.DecodeToUTF8(data, util.DetectCharset(data))
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		parsed := util.ParseCatalogBytes(data)
		var warns []string
		for _, d := range parsed.Diagnostics {
			warns = append(warns, d.String())
		}
		util.ReportWarnAndErrors(warns, path+":", true)
		entries = append(entries, parsed.Entries...)
	}
	merged := util.MergePoEntries(entries, overrides)
	selected := util.FilterPoEntries(merged.Entries, util.EntryStateFilter{
		Translated:   v.O.Translated,
		Untranslated: v.O.Untranslated,
		OnlySame:     v.O.OnlySame,
	})

	if v.O.JSON {
		return writeOutput(v.O.Output, func(w io.Writer) error {
			return util.BuildGettextJSON(merged.Header, selected, w)
		})
	}
	all := selected
	if merged.Header != nil {
		all = append([]*util.PoEntry{merged.Header}, selected...)
	}
	return writeCatalogOutput(v.O.Output, all)
}

var msgCatCmd = msgCatCommand{}

func init() {
	rootCmd.AddCommand(msgCatCmd.Command())
}
