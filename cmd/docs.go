package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateeksan/patterns/internal/docs"
	"github.com/prateeksan/patterns/internal/log"
)

var (
	docsWidth int
	docsRaw   bool
)

var docsCmd = &cobra.Command{
	Use:   "docs [demo]",
	Short: "Show the notes for a pattern",
	Long: `Render the bundled notes for a pattern demo. Without an argument,
list the demos that have notes.

Examples:
  patterns docs flyweight
  patterns docs --raw flyweight
  patterns docs --width 100 chain-of-responsibility`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, name := range docs.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		if docsRaw {
			source, err := docs.Source(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(out, source)
			return nil
		}

		log.Debug(log.CatDocs, "rendering note", "name", args[0], "width", docsWidth)
		renderer, err := docs.NewRenderer(docsWidth)
		if err != nil {
			return err
		}
		rendered, err := renderer.Render(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	docsCmd.Flags().IntVar(&docsWidth, "width", 80, "word wrap width")
	docsCmd.Flags().BoolVar(&docsRaw, "raw", false, "print raw markdown without styling")
	rootCmd.AddCommand(docsCmd)
}
