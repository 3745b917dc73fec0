package cmd

import (
	"fmt"
	"io"
	"os"

	"campusai/src/i18n"
	"campusai/src/models"

	"github.com/spf13/cobra"
)

var scholarshipCmd = &cobra.Command{
	Use:   "scholarship",
	Short: "Check scholarship eligibility for a student profile",
	Long: `Sends the profile to the backend and prints one block per evaluated
scholarship. Values are passed through exactly as given.`,
	Args: cobra.NoArgs,
	RunE: runScholarship,
}

func init() {
	scholarshipCmd.Flags().String("course", "", "course, e.g. B.Tech")
	scholarshipCmd.Flags().String("year", "", "year of study")
	scholarshipCmd.Flags().String("category", "", "reservation category")
	scholarshipCmd.Flags().String("income", "", "annual family income")
	rootCmd.AddCommand(scholarshipCmd)
}

func runScholarship(cmd *cobra.Command, args []string) error {
	var profile models.ScholarshipProfile
	profile.Course, _ = cmd.Flags().GetString("course")
	profile.Year, _ = cmd.Flags().GetString("year")
	profile.Category, _ = cmd.Flags().GetString("category")
	profile.Income, _ = cmd.Flags().GetString("income")

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

	resp, err := client.RecommendScholarship(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("scholarship evaluation: %w", err)
	}
	printScholarships(cmd.OutOrStdout(), loc, resp)
	return nil
}

func printScholarships(w io.Writer, loc *i18n.Localizer, resp *models.ScholarshipResponse) {
	fmt.Fprintln(w, loc.T(i18n.ScholarshipHeader))
	if resp == nil || len(resp.Data) == 0 {
		fmt.Fprintln(w, loc.T(i18n.NoScholarships))
		return
	}
	for _, s := range resp.Data {
		badge := loc.T(i18n.Eligible)
		if !s.Eligible {
			badge = loc.T(i18n.NotEligible)
		}
		fmt.Fprintf(w, "\n🎓 %s\n%s\n", s.Name, badge)
		fmt.Fprintln(w, loc.T(i18n.Benefit, map[string]any{"Benefit": s.Benefit.String()}))
		fmt.Fprintln(w, loc.T(i18n.Chance, map[string]any{"Probability": s.Probability.String()}))
		for _, reason := range s.Reasons {
			fmt.Fprintln(w, reason)
		}
	}
}
