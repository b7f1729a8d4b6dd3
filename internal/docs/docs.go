// Package docs serves the bundled pattern notes, rendered for the
// terminal.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed notes/*.md
var notesFS embed.FS

// ErrNoteNotFound wraps lookups for unknown demo names.
var ErrNoteNotFound = fmt.Errorf("no notes for demo")

// Names lists the demos that have notes, sorted.
func Names() []string {
	entries, err := notesFS.ReadDir("notes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw markdown notes for a demo.
func Source(name string) (string, error) {
	data, err := notesFS.ReadFile("notes/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNoteNotFound, name)
	}
	return string(data), nil
}

// noMarginStyle removes document margins while inheriting the auto
// dark/light style.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer renders pattern notes as styled terminal output.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewRenderer creates a renderer wrapping at the given width.
func NewRenderer(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render returns the styled notes for a demo.
func (r *Renderer) Render(name string) (string, error) {
	source, err := Source(name)
	if err != nil {
		return "", err
	}
	out, err := r.renderer.Render(source)
	if err != nil {
		return "", fmt.Errorf("rendering notes for %q: %w", name, err)
	}
	return out, nil
}
