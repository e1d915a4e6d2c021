package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/mathbot/internal/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog from the terminal",
	}
	cmd.AddCommand(catalogSectionsCmd())
	cmd.AddCommand(catalogMaterialsCmd())
	cmd.AddCommand(catalogQuoteCmd())
	return cmd
}

func withStore(run func(ctx context.Context, store *catalog.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := catalog.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	return run(context.Background(), store)
}

func catalogSectionsCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List all sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, store *catalog.Store) error {
				sections, err := store.ListSections(ctx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return json.NewEncoder(os.Stdout).Encode(sections)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
				for _, sec := range sections {
					fmt.Fprintf(w, "%d\t%s\t%s\n", sec.ID, sec.Name, sec.Description)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func catalogMaterialsCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "materials <section-id>",
		Short: "List the materials of a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid section id %q", args[0])
			}
			return withStore(func(ctx context.Context, store *catalog.Store) error {
				materials, err := store.MaterialsBySection(ctx, sectionID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return json.NewEncoder(os.Stdout).Encode(materials)
				}
				if len(materials) == 0 {
					fmt.Println("No materials in this section.")
					return nil
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tSIZE")
				for _, m := range materials {
					fmt.Fprintf(w, "%d\t%s\t%d\n", m.ID, m.Title, len(m.Content))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func catalogQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, store *catalog.Store) error {
				q, err := store.RandomQuote(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("«%s»\n— %s\n", q.Text, q.Author)
				return nil
			})
		},
	}
}
