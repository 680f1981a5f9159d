package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbricks/po-fixup/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type compareCommand struct {
	cmd *cobra.Command
	O   struct {
		Stat bool
	}
}

func (v *compareCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "compare [--stat] <po-file> [<new-po-file>]",
		Short: "Show changes between two PO catalogs",
		Long: `By default: output new or changed entries to stdout.
With --stat: show diff statistics between the two catalogs.

With one argument, the catalog is compared with the result "fix" would write,
so the output lists the translations that fixing would change.
With two arguments, the two catalogs are compared as they are.

Both sides are deduplicated before comparing: only the first translation of
a repeated msgid counts. Output is empty when there are no new or changed
entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().BoolVar(&v.O.Stat, "stat", false, "show diff statistics (default: output new or changed entries)")

	return v.cmd
}

func (v compareCommand) Execute(args []string) error {
	var (
		src, dest         []byte
		srcName, destName string
		err               error
	)

	switch len(args) {
	case 1:
		srcName, destName = args[0], args[0]+" (fixed)"
		if src, err = os.ReadFile(args[0]); err != nil {
			return newUserErrorF("fail to read %s: %v", args[0], err)
		}
		cfg, err := loadFixupConfig()
		if err != nil {
			return err
		}
		overrides, err := loadOverrides(cfg)
		if err != nil {
			return err
		}
		result, err := util.FixupCatalogBytes(src, overrides)
		if err != nil {
			return err
		}
		dest = result.Content
	case 2:
		srcName, destName = args[0], args[1]
		if src, err = os.ReadFile(args[0]); err != nil {
			return newUserErrorF("fail to read %s: %v", args[0], err)
		}
		if dest, err = os.ReadFile(args[1]); err != nil {
			return newUserErrorF("fail to read %s: %v", args[1], err)
		}
	default:
		return newUserError("compare requires one or two arguments")
	}

	stat, header, entries, err := util.PoCompare(src, dest)
	if err != nil {
		return err
	}
	log.Debugf("compared %s and %s: %s", srcName, destName, stat)

	if v.O.Stat {
		fmt.Printf("# Diff between %s and %s\n", filepath.Base(srcName), filepath.Base(destName))
		fmt.Println(stat)
		return nil
	}
	if len(entries) == 0 {
		return nil
	}
	if header != nil {
		entries = append([]*util.PoEntry{header}, entries...)
	}
	return writeCatalogOutput("-", entries)
}

var compareCmd = compareCommand{}

func init() {
	rootCmd.AddCommand(compareCmd.Command())
}
