package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Initialize the catalog database and load the built-in dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := catalog.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.SeedIfEmpty(ctx, catalog.DefaultSeed()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	sections, materials, quotes, err := store.Counts(ctx)
	if err != nil {
		return fmt.Errorf("count rows: %w", err)
	}

	fmt.Printf("Catalog at %s:\n", cfg.Store.Path)
	fmt.Printf("  Sections:  %d\n", sections)
	fmt.Printf("  Materials: %d\n", materials)
	fmt.Printf("  Quotes:    %d\n", quotes)
	return nil
}
