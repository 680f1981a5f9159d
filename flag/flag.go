// Package flag gives access to global command line flags bound in viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of -v flags.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of -q flags.
func Quiet() int {
	return viper.GetInt("quiet")
}

// DryRun is true when nothing should be written.
func DryRun() bool {
	return viper.GetBool("dryrun")
}

// ConfigFile returns the explicit configuration file, "" for the defaults.
func ConfigFile() string {
	return viper.GetString("config")
}

// Preset returns the name of an embedded override table, overriding the
// one from configuration.
func Preset() string {
	return viper.GetString("preset")
}

// OverrideFiles returns override tables given on the command line; they are
// applied after those from configuration.
func OverrideFiles() []string {
	return viper.GetStringSlice("override-file")
}
