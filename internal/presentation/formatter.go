// Package presentation handles output formatting for the CLI commands.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"

	"github.com/prateeksan/patterns/internal/styles"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatJSON formats the demo list as indented JSON.
func (f *Formatter) FormatJSON(demos []DemoDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(demos)
}

// FormatTable formats the demo list as an aligned, styled table grouped
// by category. Alignment is rune-width aware so wide glyphs in
// descriptions don't skew columns.
func (f *Formatter) FormatTable(demos []DemoDTO) error {
	nameWidth := 0
	for _, d := range demos {
		if w := runewidth.StringWidth(d.Name); w > nameWidth {
			nameWidth = w
		}
	}

	lastCategory := ""
	for _, d := range demos {
		if d.Category != lastCategory {
			if lastCategory != "" {
				if _, err := fmt.Fprintln(f.writer); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(f.writer, styles.Category.Render(d.Category)); err != nil {
				return err
			}
			lastCategory = d.Category
		}

		name := runewidth.FillRight(d.Name, nameWidth)
		line := fmt.Sprintf("  %s  %s", styles.Highlight.Render(name), styles.Subtle.Render(d.Description))
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// DemoHeader prints the title line shown before a demo's narration.
func (f *Formatter) DemoHeader(name string) error {
	_, err := fmt.Fprintln(f.writer, styles.Title.Render("== "+name+" =="))
	return err
}

// DemoResult prints the status line shown after a demo's narration.
func (f *Formatter) DemoResult(name string, err error) error {
	if err != nil {
		_, werr := fmt.Fprintln(f.writer, styles.Error.Render(fmt.Sprintf("-- %s failed: %v", name, err)))
		return werr
	}
	_, werr := fmt.Fprintln(f.writer, styles.Success.Render(fmt.Sprintf("-- %s ok", name)))
	return werr
}

// NarrationWriter returns a writer that indents every narration line,
// visually nesting a demo's output under its header.
func (f *Formatter) NarrationWriter() io.Writer {
	return indent.NewWriterPipe(f.writer, 2, nil)
}
