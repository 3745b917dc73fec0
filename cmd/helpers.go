package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"campusai/src/config"
	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/services/api"
	"campusai/src/services/storage"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `campusai init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// newLogger builds a text logger at the configured level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))
}

// newFileLogger opens the log file for the TUI, which owns the terminal.
func newFileLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return newLogger(cfg, f), f, nil
}

// newClient creates the API client and restores the saved session when it
// belongs to the configured backend.
func newClient(cfg *config.Config, logger *slog.Logger) (*api.Client, *storage.SessionRepository, *models.Session, error) {
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating API client: %w", err)
	}
	repo := storage.NewSessionRepository(cfg.SessionPath())
	session, err := repo.Load()
	if err != nil {
		logger.Warn("ignoring saved session", "error", err)
		return client, repo, nil, nil
	}
	if session == nil || session.BaseURL != client.BaseURL() {
		return client, repo, nil, nil
	}
	client.SetCookies(storage.FromStored(session.Cookies))
	logger.Debug("restored session", "username", session.Username, "role", session.Role)
	return client, repo, session, nil
}

func newLocalizer(cfg *config.Config) (*i18n.Localizer, error) {
	loc, err := i18n.New(cfg.UI.Language)
	if err != nil {
		return nil, fmt.Errorf("loading messages for %q: %w", cfg.UI.Language, err)
	}
	return loc, nil
}
