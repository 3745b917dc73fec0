package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden with -ldflags "-X campusai/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "campusai %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
