package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateeksan/patterns/internal/demo"
	"github.com/prateeksan/patterns/internal/presentation"
	"github.com/prateeksan/patterns/internal/tracing"
)

var (
	runAll      bool
	runCategory string
)

var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run one or more pattern demos",
	Long: `Run the named demos, printing each one's narration under a header.
A failing demo does not stop the remaining ones; the command exits
non-zero if any demo failed.

Examples:
  # Run a single demo
  patterns run proxy

  # Run several
  patterns run state strategy observer

  # Run a whole category
  patterns run --category creational

  # Run the whole catalog
  patterns run --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		if !runAll && runCategory == "" && len(args) == 0 {
			return errors.New("name at least one demo or pass --all or --category")
		}
		if (runAll || runCategory != "") && len(args) > 0 {
			return errors.New("demo names cannot be combined with --all or --category")
		}
		if runAll && runCategory != "" {
			return errors.New("--all cannot be combined with --category")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := demo.NewCatalog(catalogOptions())
		if err != nil {
			return err
		}

		entries := catalog.List()
		switch {
		case runCategory != "":
			entries = catalog.GetByCategory(demo.Category(runCategory))
			if len(entries) == 0 {
				return fmt.Errorf("unknown category %q (behavioural, creational, structural)", runCategory)
			}
		case !runAll:
			entries = make([]*demo.Entry, 0, len(args))
			for _, name := range args {
				entry, err := catalog.Get(name)
				if err != nil {
					return fmt.Errorf("unknown demo %q, see 'patterns list'", name)
				}
				entries = append(entries, entry)
			}
		}

		provider, err := tracing.NewProvider(tracing.Config{
			Enabled:     cfg.Tracing.Enabled,
			ServiceName: cfg.Tracing.ServiceName,
			Writer:      os.Stderr,
		})
		if err != nil {
			return fmt.Errorf("setting up tracing: %w", err)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		defer func() { _ = provider.Shutdown(ctx) }()

		runner := demo.NewRunner(catalog, provider.Tracer())
		defer runner.Close()

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		narration := formatter.NarrationWriter()

		failed := 0
		for _, entry := range entries {
			if err := formatter.DemoHeader(entry.Name); err != nil {
				return err
			}
			report := runner.RunOne(ctx, narration, entry.Name)
			if err := formatter.DemoResult(entry.Name, report.Err); err != nil {
				return err
			}
			if report.Err != nil {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d demos failed", failed, len(entries))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every demo in the catalog")
	runCmd.Flags().StringVar(&runCategory, "category", "", "run every demo in a category")
	rootCmd.AddCommand(runCmd)
}
