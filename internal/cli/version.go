package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + CliName,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (built at %s)\n", CliName, displayVersion(Version), BuildTime)
		},
	}
}

// displayVersion prefixes semantic versions with "v" and leaves other
// build labels as they are.
func displayVersion(v string) string {
	if semver.IsValid("v" + v) {
		return "v" + v
	}
	return v
}
