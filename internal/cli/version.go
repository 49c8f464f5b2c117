package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/zelenko/pkg/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print a single line")
}
