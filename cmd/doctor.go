package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
	"github.com/nextlevelbuilder/mathbot/internal/config"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment, configuration and store health",
		Run: func(cmd *cobra.Command, args []string) {
			runDoctor()
		},
	}
}

func runDoctor() {
	fmt.Println("mathbot doctor")
	fmt.Printf("  OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  Go: %s\n", runtime.Version())
	fmt.Println()

	cfgPath := resolveConfigPath()
	fmt.Printf("  Config:   %s", cfgPath)
	if _, err := os.Stat(cfgPath); err != nil {
		fmt.Println(" (not found, defaults in effect)")
	} else {
		fmt.Println(" (OK)")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  ❌ Config load error: %s\n", err)
		return
	}

	if cfg.Telegram.Token != "" {
		fmt.Println("  ✅ Telegram token present")
	} else {
		fmt.Println("  ❌ Telegram token missing (config telegram.token or TELEGRAM_BOT_TOKEN)")
	}

	fmt.Printf("  Store:    %s", cfg.Store.Path)
	store, err := catalog.Open(cfg.Store.Path)
	if err != nil {
		fmt.Printf("\n  ❌ Store open error: %s\n", err)
		return
	}
	defer store.Close()
	fmt.Println(" (OK)")

	sections, materials, quotes, err := store.Counts(context.Background())
	if err != nil {
		fmt.Printf("  ❌ Store query error: %s\n", err)
		return
	}
	if sections == 0 {
		fmt.Println("  ⚠️ Catalog unseeded — run: mathbot seed")
	} else {
		fmt.Printf("  ✅ Catalog seeded: %d sections, %d materials, %d quotes\n",
			sections, materials, quotes)
	}
}
