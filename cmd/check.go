package cmd

import (
	"fmt"
	"os"

	"github.com/arbricks/po-fixup/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check [po-file]...",
		Short: "Check that PO catalogs are already deduplicated and canonical",
		Long: `Run the same pipeline as "fix" without writing anything, report parse
warnings, duplicate entries and pending overrides, and fail if any catalog would
be changed by "fix".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func checkCatalog(file string, overrides util.Overrides) (bool, error) {
	result, err := util.FixupCatalogFile(file, overrides, util.FixupOptions{DryRun: true})
	if err != nil {
		return false, err
	}

	var errs []string
	for _, d := range result.Merge.Duplicates {
		errs = append(errs, fmt.Sprintf("line %d: duplicate msgid %q (first defined at line %d)",
			d.Line, d.MsgID, d.FirstLine))
	}
	for _, msgid := range result.Merge.Overridden {
		errs = append(errs, fmt.Sprintf("msgid %q: msgstr differs from override table", msgid))
	}
	if result.Merge.DroppedHeaders > 0 {
		errs = append(errs, fmt.Sprintf("%d extra header entries", result.Merge.DroppedHeaders))
	}
	if result.Changed && len(errs) == 0 {
		errs = append(errs, "not in canonical form (escaping or layout)")
	}
	util.ReportInfoAndErrors(errs, file+":", !result.Changed)
	return !result.Changed, nil
}

func (v checkCommand) Execute(args []string) error {
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

	var bad int
	for _, file := range files {
		ok, err := checkCatalog(file, overrides)
		if err != nil {
			return err
		}
		if ok {
			log.Infof("%s: ok", file)
		} else {
			bad++
		}
	}
	if bad > 0 {
		fmt.Fprintln(os.Stderr, `Hint: run "po-fixup fix" to clean up`)
		return fmt.Errorf("%d of %d catalogs need fixing", bad, len(files))
	}
	return nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
