package cmd

import (
	"fmt"
	"os"

	"campusai/src/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Creates the config file named by --config with every setting at its
default value. An existing file is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	initCmd.Flags().String("base-url", "", "backend URL to write instead of the default")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	baseURL, _ := cmd.Flags().GetString("base-url")

	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	cfg := config.DefaultConfig()
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
	return nil
}
