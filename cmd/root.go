// Package cmd implements the mathbot CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/mathbot/internal/config"
)

var configPath string

// logLevel is the process-wide log level, swappable at runtime by the
// config watcher.
var logLevel = new(slog.LevelVar)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mathbot",
		Short: "Telegram bot serving a catalog of math study materials",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})))
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default mathbot.json5)")

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(seedCmd())
	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(doctorCmd())
	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return "mathbot.json5"
}

// loadConfig loads the config and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	logLevel.Set(config.ParseLevel(cfg.Log.Level))
	return cfg, nil
}
