// Package extract turns document files into ordered per-page plain text.
// It knows nothing about structure: recovering sections from the page text
// is the structure package's job.
package extract

import (
	"context"
	"fmt"
)

// Page is one page of extracted plain text. Numbers are 1-based and
// contiguous within a document.
type Page struct {
	Number int
	Text   string
}

// Extractor produces ordered pages of plain text for a document format.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]Page, error)
	SupportedFormats() []string
}

// Registry maps file formats (lowercase extensions without the dot) to
// extractors.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a Registry with all built-in extractors registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	for _, e := range []Extractor{
		&PDFExtractor{},
		&DOCXExtractor{},
		&XLSXExtractor{},
		&MarkdownExtractor{},
		&HTMLExtractor{},
		&TextExtractor{},
	} {
		for _, f := range e.SupportedFormats() {
			r.extractors[f] = e
		}
	}
	return r
}

// Get returns the extractor for a format.
func (r *Registry) Get(format string) (Extractor, error) {
	e, ok := r.extractors[format]
	if !ok {
		return nil, fmt.Errorf("no extractor for format: %s", format)
	}
	return e, nil
}

// Register adds or replaces the extractor for a format.
func (r *Registry) Register(format string, e Extractor) {
	r.extractors[format] = e
}

// Formats returns every registered format.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.extractors))
	for f := range r.extractors {
		out = append(out, f)
	}
	return out
}
