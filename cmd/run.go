package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/app"
)

// runApp builds the logger and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, err := newLogger(true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	log.Debug("starting interactive assessment", zap.String("version", version))
	return app.Run(app.Options{Logger: log, SkipSplash: skipSplash})
}
