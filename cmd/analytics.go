package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"campusai/src/chart"
	"campusai/src/i18n"
	"campusai/src/models"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the query counters (admin only)",
	Long: `Fetches the analytics counters and prints them with a bar chart.
The backend only answers for an admin session; run ` + "`campusai login --role admin`" + ` first.`,
	Args: cobra.NoArgs,
	RunE: runAnalytics,
}

func init() {
	analyticsCmd.Flags().Bool("json", false, "output counters as JSON")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

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

	snap, err := client.Analytics(cmd.Context())
	if errors.Is(err, models.ErrUnauthorized) {
		return errors.New(loc.T(i18n.NeedAdmin))
	}
	if err != nil {
		return fmt.Errorf("loading analytics: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	printAnalytics(cmd.OutOrStdout(), loc, snap)
	return nil
}

func printAnalytics(w io.Writer, loc *i18n.Localizer, snap *models.AnalyticsSnapshot) {
	fmt.Fprintf(w, "%-22s %d\n", loc.T(i18n.TotalQueries), snap.TotalQueries)
	fmt.Fprintf(w, "%-22s %d\n", loc.T(i18n.ExamQueries), snap.Exam)
	fmt.Fprintf(w, "%-22s %d\n\n", loc.T(i18n.ScholarshipQueries), snap.Scholarship)

	c := chart.New(loc.T(i18n.ChartTitle), models.ChartLabels, snap.ChartValues())
	defer c.Destroy()
	fmt.Fprintln(w, c.Render(60, 12))
}
