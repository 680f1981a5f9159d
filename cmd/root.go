// Package cmd provides CLI implementations.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arbricks/po-fixup/config"
	"github.com/arbricks/po-fixup/flag"
	"github.com/arbricks/po-fixup/repository"
	"github.com/arbricks/po-fixup/version"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = rootCommand{}

// errorWithUsage marks an error that should display command usage.
type errorWithUsage struct{ msg string }

func (e errorWithUsage) Error() string { return e.msg }

// newUserError creates an error that should display usage (e.g. argument/flag errors).
func newUserError(a ...interface{}) error {
	return errorWithUsage{msg: strings.TrimSuffix(fmt.Sprintln(a...), "\n")}
}

// newUserErrorF creates an error that should display usage.
func newUserErrorF(format string, a ...interface{}) error {
	return errorWithUsage{msg: fmt.Sprintf(format, a...)}
}

// IsErrorWithUsage returns true if the error should display command usage.
func IsErrorWithUsage(err error) bool {
	_, ok := err.(errorWithUsage)
	return ok
}

// Response wraps error for subcommand, and is returned from cmd package.
type Response struct {
	// Err contains error returned from the subcommand executed.
	Err error

	// Cmd contains the command object.
	Cmd *cobra.Command
}

// IsUserError returns true if the error was caused by bad arguments or flags.
func (v Response) IsUserError() bool {
	return IsErrorWithUsage(v.Err)
}

type rootCommand struct {
	cmd *cobra.Command
}

func (v *rootCommand) initLog() {
	f := new(log.TextFormatter)
	f.DisableTimestamp = true
	f.DisableLevelTruncation = true
	if isatty.IsTerminal(os.Stderr.Fd()) {
		f.ForceColors = true
	} else {
		f.DisableColors = true
	}
	log.SetFormatter(f)
	log.SetOutput(os.Stderr)
	verbose := flag.Verbose()
	quiet := flag.Quiet()
	if verbose == 1 {
		log.SetLevel(log.DebugLevel)
	} else if verbose > 1 {
		log.SetLevel(log.TraceLevel)
	} else if quiet == 1 {
		log.SetLevel(log.WarnLevel)
	} else if quiet > 1 {
		log.SetLevel(log.ErrorLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func (v *rootCommand) initConfig() {
	viper.SetEnvPrefix("PO_FIXUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func (v *rootCommand) initRepository() {
	repository.OpenRepository("")
}

// Command represents the base command when called without any subcommands
func (v *rootCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "po-fixup",
		Short: "Remove duplicate entries from PO catalogs and apply corrected translations",
		// Let main.go handle error output; do not show usage on every error
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Version = version.Version
	v.cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	v.cmd.PersistentFlags().Bool("dryrun",
		false,
		"dryrun mode, do not write any file")
	v.cmd.PersistentFlags().CountP("quiet",
		"q",
		"quiet mode")
	v.cmd.PersistentFlags().CountP("verbose",
		"v",
		"verbose mode")
	v.cmd.PersistentFlags().String("config",
		"",
		"load configuration from this file (instead of ~/."+config.DefaultConfigFile+
			" and "+config.DefaultConfigFile+" in the work tree)")
	v.cmd.PersistentFlags().String("preset",
		"",
		"use an embedded override table ("+strings.Join(config.PresetNames(), ", ")+")")
	v.cmd.PersistentFlags().StringSlice("override-file",
		nil,
		"JSON or YAML file of msgid to corrected msgstr; may be repeated or comma-separated")

	for _, name := range []string{
		"dryrun",
		"quiet",
		"verbose",
		"config",
		"preset",
		"override-file",
	} {
		_ = viper.BindPFlag(name, v.cmd.PersistentFlags().Lookup(name))
	}

	return v.cmd
}

func (v rootCommand) Execute(args []string) error {
	return newUserError("run 'po-fixup -h' for help")
}

func (v *rootCommand) AddCommand(cmds ...*cobra.Command) {
	v.Command().AddCommand(cmds...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() Response {
	var (
		resp Response
	)

	// Ensure all commands use SilenceErrors so main.go handles error output.
	setSilenceErrorsRecursive(rootCmd.Command())

	c, err := rootCmd.Command().ExecuteC()
	resp.Err = err
	resp.Cmd = c
	return resp
}

func init() {
	cobra.OnInitialize(rootCmd.initConfig)
	cobra.OnInitialize(rootCmd.initLog)
	cobra.OnInitialize(rootCmd.initRepository)
}

// setSilenceErrorsRecursive sets SilenceErrors on c and all its descendants.
func setSilenceErrorsRecursive(c *cobra.Command) {
	c.SilenceErrors = true
	for _, child := range c.Commands() {
		setSilenceErrorsRecursive(child)
	}
}
