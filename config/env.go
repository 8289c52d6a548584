package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags.
var Verbose = GBool("verbose", "V", false, "Enable verbose logging")
var Dumb = GBool("dumb", "D", IsTermDumb(), "Disable colored output")
var DebugLog = GString("debuglog", "", "", "Append debug log lines to this file")

var RootCommand = &cobra.Command{
	Use:   "hostsctl",
	Short: "hostsctl reconciles hosts tables against desired address-to-hostname definitions.",
}

func getenv(name string) (string, bool) {
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "_")
	return os.LookupEnv("HCTL_" + name)
}
func GString(name, shorthand string, value string, usage string) *string {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		value = env
	}
	flags.StringVarP(&value, name, shorthand, value, usage)
	return &value
}
func GBool(name, shorthand string, value bool, usage string) *bool {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		if v, e := strconv.ParseBool(env); e == nil {
			value = v
		}
	}
	flags.BoolVarP(&value, name, shorthand, value, usage)
	return &value
}

// Utils.
func IsTermDumb() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}

	isTrue := map[string]bool{
		"1": true, "t": true, "y": true,
		"true": true, "yes": true, "on": true,
		"0": false, "f": false, "n": false,
		"false": false, "no": false, "off": false,
	}
	envs := []string{"HCTL_NON_INTERACTIVE", "CI", "DEBIAN_FRONTEND", "NON_INTERACTIVE"}
	for _, env := range envs {
		if v, ok := os.LookupEnv(env); ok {
			if b, ok := isTrue[strings.ToLower(v)]; ok {
				return b
			}
		}
	}
	return false
}
