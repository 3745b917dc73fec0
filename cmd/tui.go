package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"campusai/src/app"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newFileLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("Starting CampusAI client", "version", Version, "backend", cfg.API.BaseURL)

	loc, err := newLocalizer(cfg)
	if err != nil {
		return err
	}
	client, sessions, session, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := app.New(app.Options{
		Client:        client,
		Sessions:      sessions,
		Session:       session,
		Localizer:     loc,
		Logger:        logger,
		Context:       ctx,
		StartSection:  cfg.UI.StartSection,
		Particles:     cfg.UI.Particles,
		FrameInterval: cfg.UI.FrameInterval,
	})
	defer model.Shutdown()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	setupGracefulShutdown(program, logger)

	if _, err := program.Run(); err != nil && err != tea.ErrProgramKilled {
		logger.Error("Application failed", "error", err)
		return err
	}
	logger.Info("Application completed successfully")
	return nil
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(program *tea.Program, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Received shutdown signal, cleaning up...")
		program.Quit()
	}()
}
