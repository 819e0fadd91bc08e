package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TextExtractor handles plain text (.txt) files. Form feeds split pages;
// a file without form feeds is a single page.
type TextExtractor struct{}

func (e *TextExtractor) SupportedFormats() []string { return []string{"txt"} }

func (e *TextExtractor) Extract(ctx context.Context, path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}

	var pages []Page
	for _, chunk := range strings.Split(string(data), "\f") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		pages = append(pages, Page{Number: len(pages) + 1, Text: chunk})
	}
	return pages, nil
}
