package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/services/storage"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend and remember the session",
	Long: `Prompts for the password (and the username when --username is not
given), logs in and stores the session cookie in the state directory so
the terminal UI and the analytics command can reuse it.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the backend session and forget it",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new student account",
	Args:  cobra.NoArgs,
	RunE:  runSignup,
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "account username")
	loginCmd.Flags().StringP("role", "r", models.RoleStudent, "role to log in as: student or admin")
	signupCmd.Flags().StringP("email", "e", "", "account email")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
}

func notEmpty(loc *i18n.Localizer) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(loc.T(i18n.ValueRequired))
		}
		return nil
	}
}

func promptValue(loc *i18n.Localizer, label string, masked bool) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: notEmpty(loc),
	}
	if masked {
		prompt.Mask = '*'
	}
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return value, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	role, _ := cmd.Flags().GetString("role")
	role = strings.ToLower(role)
	if role != models.RoleStudent && role != models.RoleAdmin {
		return fmt.Errorf("invalid role %q: must be student or admin", role)
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
	client, repo, _, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	if username == "" {
		if username, err = promptValue(loc, loc.T(i18n.FieldUsername), false); err != nil {
			return err
		}
	}
	password, err := promptValue(loc, loc.T(i18n.FieldPassword), true)
	if err != nil {
		return err
	}

	resp, err := client.Login(cmd.Context(), username, password, role)
	if err != nil {
		return errors.New(loc.T(i18n.LoginFailed, map[string]any{"Reason": models.Reason(err)}))
	}
	if resp.Role != "" {
		role = resp.Role
	}

	session := &models.Session{
		BaseURL:  client.BaseURL(),
		Username: username,
		Role:     role,
		Cookies:  storage.ToStored(client.Cookies()),
	}
	if err := repo.Save(session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc.T(i18n.LoggedIn, map[string]any{"Username": username, "Role": role}))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	loc, err := newLocalizer(cfg)
	if err != nil {
		return err
	}
	client, repo, _, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	if err := client.Logout(cmd.Context()); err != nil {
		logger.Warn("logout request failed", "error", err)
	}
	if err := repo.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc.T(i18n.LoggedOut))
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")

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

	if email == "" {
		if email, err = promptValue(loc, loc.T(i18n.FieldEmail), false); err != nil {
			return err
		}
	}
	password, err := promptValue(loc, loc.T(i18n.FieldPassword), true)
	if err != nil {
		return err
	}

	if err := client.Signup(cmd.Context(), email, password); err != nil {
		return errors.New(loc.T(i18n.SignupFailed, map[string]any{"Reason": models.Reason(err)}))
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc.T(i18n.SignupDone, map[string]any{"Email": email}))
	return nil
}
