package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/config"
	"github.com/abhisek/vrfit/internal/logger"
)

// cfg is loaded before any command runs.
var cfg *config.Config

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"format":     "format",
	"output":     "output",
	"log.level":  "log-level",
	"log.format": "log-format",
	"log.file":   "log-file",
}

var rootCmd = &cobra.Command{
	Use:   "vrfit",
	Short: "VR Simulation Engineer career-fit assessment",
	Long: "vrfit runs a 21-question assessment of psychological fit, technical readiness " +
		"and WISCAR factors for a career in VR simulation engineering.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default .vrfit.yaml in . or $XDG_CONFIG_HOME/vrfit)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console or json")
	flags.String("log-file", "", "Write logs to this file")

	rootCmd.Flags().Bool("no-splash", false, "Skip the opening animation")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the configured logger. With no log file, interactive
// commands discard logs so they never reach the terminal UI, while batch
// commands log to stderr.
func newLogger(interactive bool) (*zap.Logger, error) {
	path := cfg.Log.File
	if path == "" && !interactive {
		path = "stderr"
	}
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, path)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}
