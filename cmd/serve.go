package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
	"github.com/nextlevelbuilder/mathbot/internal/channels/telegram"
	"github.com/nextlevelbuilder/mathbot/internal/config"
	"github.com/nextlevelbuilder/mathbot/internal/nav"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is not set (config telegram.token or TELEGRAM_BOT_TOKEN)")
	}

	store, err := catalog.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An inconsistent catalog would undermine every intent, so a seeding
	// failure is fatal here and nowhere else.
	if err := store.SeedIfEmpty(ctx, catalog.DefaultSeed()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	// Log-level changes apply without a restart; everything else needs one.
	if watcher, werr := config.Watch(resolveConfigPath()); werr == nil {
		watcher.OnChange(func(next *config.Config) {
			logLevel.Set(config.ParseLevel(next.Log.Level))
		})
		defer watcher.Close()
	} else if !errors.Is(werr, os.ErrNotExist) {
		slog.Warn("config watcher unavailable", "error", werr)
	}

	ch, err := telegram.New(telegram.Config{
		Token:         cfg.Telegram.Token,
		MaxMessageLen: cfg.Telegram.MaxMessageLen,
	}, nav.New(store, cfg.Telegram.MaxMessageLen))
	if err != nil {
		return err
	}

	if err := ch.Run(ctx); err != nil {
		return fmt.Errorf("telegram channel: %w", err)
	}
	slog.Info("shutting down")
	return nil
}
