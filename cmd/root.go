package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "campusai",
	Short: "Terminal client for the CampusAI campus assistant",
	Long: `CampusAI answers questions about exams, scholarships, the library and
notices. Run without arguments to open the terminal UI, or use one of the
subcommands for a single exchange with the backend.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".campusai.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
