// Package adapter demonstrates the adapter pattern: resources with
// non-uniform read methods homogenized behind the text-resource Read
// interface the server understands.
package adapter

import (
	"errors"
	"fmt"
)

// ErrIncompatibleResource is returned when the adapter has no conversion
// for the given resource type.
var ErrIncompatibleResource = errors.New("resource cannot be adapted")

// TextReader is the only interface the server knows how to consume.
type TextReader interface {
	Read() string
}

// TextResource is plain text already; it satisfies TextReader directly.
type TextResource struct{}

func (TextResource) Read() string {
	return "Sample plain text."
}

// BinaryResource wraps binary data with several output formats; only the
// plain-text one is useful to the server.
type BinaryResource struct{}

func (BinaryResource) ReadPlainText() string {
	return "Sample plain text from binary."
}

func (BinaryResource) ReadRaw() []byte { return nil }

// WebResource wraps web data; the server can only use the json output.
type WebResource struct{}

func (WebResource) ReadJSON() string {
	return "Sample plain text as json."
}

func (WebResource) ReadHTML() string { return "" }

// TextAdapter exposes any supported resource through the TextReader
// interface.
type TextAdapter struct {
	resource any
}

// NewTextAdapter wraps a resource, rejecting types it has no conversion
// for.
func NewTextAdapter(resource any) (*TextAdapter, error) {
	switch resource.(type) {
	case TextResource, BinaryResource, WebResource:
		return &TextAdapter{resource: resource}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrIncompatibleResource, resource)
	}
}

// Read returns the textual representation regardless of the wrapped
// resource's native interface.
func (a *TextAdapter) Read() string {
	switch r := a.resource.(type) {
	case BinaryResource:
		return r.ReadPlainText()
	case WebResource:
		return r.ReadJSON()
	case TextResource:
		return r.Read()
	}
	return ""
}

// ResourceName names the wrapped resource type for narration.
func (a *TextAdapter) ResourceName() string {
	switch a.resource.(type) {
	case BinaryResource:
		return "BinaryResource"
	case WebResource:
		return "WebResource"
	case TextResource:
		return "TextResource"
	}
	return ""
}
