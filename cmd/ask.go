package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"campusai/src/i18n"
	"campusai/src/models"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the assistant a single question",
	Long: `Sends one message to the backend tagged with a category and prints the
answer. The default category is "general".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringP("category", "c", models.DefaultCategory, "chat category: "+strings.Join(models.Categories, ", "))
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("message is empty")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	loc, err := newLocalizer(cfg)
	if err != nil {
		return err
	}
	client, _, _, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	resp, err := client.Ask(cmd.Context(), models.TagMessage(category, text))
	if err != nil {
		logger.Error("chat request failed", "error", err)
		return errors.New(loc.T(i18n.ServerError))
	}
	answer := resp.Answer
	if answer == "" {
		answer = loc.T(i18n.NoResponse)
	}
	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
