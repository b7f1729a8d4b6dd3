package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateeksan/patterns/internal/demo"
	"github.com/prateeksan/patterns/internal/presentation"
)

var (
	listJSON     bool
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available pattern demos",
	Long: `List every demo in the catalog, grouped by category.

Examples:
  # List all demos
  patterns list

  # Only one category
  patterns list --category creational

  # Machine-readable output
  patterns list --json | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := demo.NewCatalog(catalogOptions())
		if err != nil {
			return err
		}

		entries := catalog.List()
		if listCategory != "" {
			entries = catalog.GetByCategory(demo.Category(listCategory))
			if len(entries) == 0 {
				return fmt.Errorf("unknown category %q (behavioural, creational, structural)", listCategory)
			}
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		if listJSON {
			return formatter.FormatJSON(presentation.FromDemos(entries))
		}
		return formatter.FormatTable(presentation.FromDemos(entries))
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	rootCmd.AddCommand(listCmd)
}

// catalogOptions maps the loaded configuration onto demo tunables.
func catalogOptions() demo.CatalogOptions {
	opts := demo.DefaultCatalogOptions()
	if cfg.Demos.PoolLimit > 0 {
		opts.PoolLimit = cfg.Demos.PoolLimit
	}
	if cfg.Demos.MementoMaxCheckpoints > 0 {
		opts.MementoMax = cfg.Demos.MementoMaxCheckpoints
	}
	// Zero is a valid seed; unset values are filled in by the viper
	// defaults before the config is unmarshalled.
	opts.FactorySeed = cfg.Demos.FactorySeed
	return opts
}
