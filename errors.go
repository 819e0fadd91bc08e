package docsift

import "errors"

var (
	// ErrInvalidInput is returned when a run input is missing required fields.
	ErrInvalidInput = errors.New("docsift: invalid run input")

	// ErrUnsupportedFormat is returned for unrecognized file formats.
	ErrUnsupportedFormat = errors.New("docsift: unsupported document format")

	// ErrExtractionFailed is returned when text extraction fails.
	ErrExtractionFailed = errors.New("docsift: extraction failed")

	// ErrEmbeddingFailed is returned when embedding generation fails.
	ErrEmbeddingFailed = errors.New("docsift: embedding generation failed")

	// ErrNoDocuments is returned when none of the listed documents could be read.
	ErrNoDocuments = errors.New("docsift: no documents could be processed")

	// ErrNoSections is returned when parsing yields no rankable sections.
	ErrNoSections = errors.New("docsift: no sections found in any document")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("docsift: invalid configuration")
)
