// Package flagx wraps spf13/pflag for the configuration loaders, which each
// read only the flags they own from the shared command line.
package flagx

import (
	"github.com/spf13/pflag"
)

// DefaultEnvFile is read when --env-file is not given.
const DefaultEnvFile = ".env"

// NewFlagSet returns a pflag set that tolerates flags it does not define,
// so several loaders can each parse their own subset of os.Args.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	return fs
}

// ConfigFile extracts the JSON config path passed as -c/--config.
// It returns an empty string when neither is present.
func ConfigFile(args []string) string {
	return lookupString(args, "config", "c", "", "path to JSON config file")
}

// EnvFile extracts the dotenv path passed as --env-file, falling back to
// DefaultEnvFile.
func EnvFile(args []string) string {
	return lookupString(args, "env-file", "", DefaultEnvFile, "path to .env file")
}

func lookupString(args []string, name, shorthand, def, usage string) string {
	var value string

	fs := NewFlagSet(name)
	fs.StringVarP(&value, name, shorthand, def, usage)
	_ = fs.Parse(args)

	return value
}
