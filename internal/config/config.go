// Package config loads and watches the bot's JSON5 configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/titanous/json5"
)

// DefaultMaxMessageLen is the safe per-message limit. Telegram's hard limit
// is 4096, but 4000 leaves headroom for formatting overhead.
const DefaultMaxMessageLen = 4000

// Config is the full bot configuration.
type Config struct {
	Telegram TelegramConfig `json:"telegram"`
	Store    StoreConfig    `json:"store"`
	Log      LogConfig      `json:"log"`
}

// TelegramConfig configures the Telegram transport.
type TelegramConfig struct {
	Token         string `json:"token"`
	MaxMessageLen int    `json:"maxMessageLen"`
}

// StoreConfig configures the catalog store.
type StoreConfig struct {
	Path string `json:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"` // debug | info | warn | error
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{MaxMessageLen: DefaultMaxMessageLen},
		Store:    StoreConfig{Path: "mathbot.db"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads a JSON5 config file, applies defaults for missing fields and
// the TELEGRAM_BOT_TOKEN env override. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if cfg.Telegram.MaxMessageLen <= 0 {
		cfg.Telegram.MaxMessageLen = DefaultMaxMessageLen
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "mathbot.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// ParseLevel converts a config level string to a slog.Level. Unknown values
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
