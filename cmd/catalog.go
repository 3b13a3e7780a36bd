package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jdlms/donut-shop/internal/catalog"
	"github.com/jdlms/donut-shop/internal/logging"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "Print the menu",
	Long:  "Fetch every category (or only the given one) through the simulated loader and print the items",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, closeLog, err := setupLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		ds := catalog.DefaultDataset()
		loader := catalog.NewLoader(ds,
			catalog.WithDelay(cfg.FetchDelay),
			catalog.WithOutage(cfg.SimulateOutage),
			catalog.WithLogger(logging.Component(logger, "catalog")),
		)

		categories := ds.Categories()
		if len(args) == 1 {
			categories = []catalog.Category{catalog.Category(args[0])}
		}

		logger.Infof("Printing %d categories (delay %s per fetch)", len(categories), loader.Delay())
		if flagJSON {
			return printCatalogJSON(cmd.Context(), cmd.OutOrStdout(), loader, categories)
		}
		return printCatalog(cmd.Context(), cmd.OutOrStdout(), loader, categories)
	},
}

var flagJSON bool

func init() {
	catalogCmd.Flags().BoolVar(&flagJSON, "json", false, "print the menu as JSON")
	rootCmd.AddCommand(catalogCmd)
}

// categoryListing is one category in the JSON output
type categoryListing struct {
	Category catalog.Category `json:"category"`
	Items    []catalog.Item   `json:"items"`
}

func printCatalogJSON(ctx context.Context, out io.Writer, loader *catalog.Loader, categories []catalog.Category) error {
	if ctx == nil {
		ctx = context.Background()
	}

	listings := make([]categoryListing, 0, len(categories))
	for _, c := range categories {
		items, err := loader.Fetch(ctx, c)
		if err != nil {
			return fmt.Errorf("fetching %q: %w", c, err)
		}
		listings = append(listings, categoryListing{Category: c, Items: items})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}

func printCatalog(ctx context.Context, out io.Writer, loader *catalog.Loader, categories []catalog.Category) error {
	if ctx == nil {
		ctx = context.Background()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range categories {
		items, err := loader.Fetch(ctx, c)
		if err != nil {
			return fmt.Errorf("fetching %q: %w", c, err)
		}

		fmt.Fprintf(w, "%s (%d)\n", c, len(items))
		if len(items) == 0 {
			fmt.Fprintln(w, "  no items")
		}
		for _, item := range items {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", item.ID, item.Name, item.Price, item.Description)
		}
	}
	return w.Flush()
}
