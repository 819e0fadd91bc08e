// Package docsift ranks document sections and passages by relevance to
// a persona and the job they need done. Documents are parsed into a
// structural outline, scored against an enriched query embedding, and
// distilled into a ranked report.
package docsift

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/extract"
	"github.com/docsift/docsift/llm"
	"github.com/docsift/docsift/query"
	"github.com/docsift/docsift/rank"
	"github.com/docsift/docsift/report"
	"github.com/docsift/docsift/store"
	"github.com/docsift/docsift/structure"
)

// Engine is the main entry point for relevance analysis.
type Engine interface {
	// Analyze extracts, parses, and ranks every document in the input
	// and assembles the final report.
	Analyze(ctx context.Context, input RunInput, opts ...AnalyzeOption) (report.Report, error)

	// Close releases the engine's in-memory index.
	Close() error
}

// RunInput describes one analysis run: a document collection plus the
// persona and task driving relevance.
type RunInput struct {
	Documents   []DocumentRef `json:"documents"`
	Persona     Persona       `json:"persona"`
	JobToBeDone Job           `json:"job_to_be_done"`
}

// DocumentRef names one input document, resolved against the
// configured base directory.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// Persona is the reader the analysis is performed for.
type Persona struct {
	Role string `json:"role"`
}

// Job is the task the persona needs the documents for.
type Job struct {
	Task string `json:"task"`
}

// Validate checks that all required fields are present.
func (in RunInput) Validate() error {
	if len(in.Documents) == 0 {
		return fmt.Errorf("%w: no documents listed", ErrInvalidInput)
	}
	for i, d := range in.Documents {
		if d.Filename == "" {
			return fmt.Errorf("%w: document %d has no filename", ErrInvalidInput, i)
		}
	}
	if in.Persona.Role == "" {
		return fmt.Errorf("%w: persona role missing", ErrInvalidInput)
	}
	if in.JobToBeDone.Task == "" {
		return fmt.Errorf("%w: job_to_be_done task missing", ErrInvalidInput)
	}
	return nil
}

// LoadRunInput reads and validates a run input JSON file.
func LoadRunInput(path string) (RunInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunInput{}, fmt.Errorf("reading run input: %w", err)
	}
	var in RunInput
	if err := json.Unmarshal(data, &in); err != nil {
		return RunInput{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := in.Validate(); err != nil {
		return RunInput{}, err
	}
	return in, nil
}

// AnalyzeOption overrides engine limits for one run.
type AnalyzeOption func(*analyzeOptions)

type analyzeOptions struct {
	topSections       int
	subsectionSources int
	maxSubsections    int
}

// WithTopSections overrides how many ranked sections survive the first cut.
func WithTopSections(n int) AnalyzeOption {
	return func(o *analyzeOptions) { o.topSections = n }
}

// WithSubsectionSources overrides how many top sections feed subsection
// extraction.
func WithSubsectionSources(n int) AnalyzeOption {
	return func(o *analyzeOptions) { o.subsectionSources = n }
}

// WithMaxSubsections overrides the subsection cap.
func WithMaxSubsections(n int) AnalyzeOption {
	return func(o *analyzeOptions) { o.maxSubsections = n }
}

// engine is the concrete implementation of Engine.
type engine struct {
	cfg        Config
	index      *store.Index
	embedder   llm.Provider
	extractors *extract.Registry
	ranker     *rank.Ranker
}

// New creates an engine from configuration.
func New(cfg Config) (Engine, error) {
	cfg = cfg.withDefaults()

	embedder, err := llm.NewProvider(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	index, err := store.New(cfg.EmbeddingDim)
	if err != nil {
		return nil, fmt.Errorf("creating vector index: %w", err)
	}

	return &engine{
		cfg:        cfg,
		index:      index,
		embedder:   embedder,
		extractors: extract.NewRegistry(),
		ranker:     rank.New(embedder, index, cfg.Weights),
	}, nil
}

func (e *engine) Close() error {
	return e.index.Close()
}

func (e *engine) Analyze(ctx context.Context, input RunInput, opts ...AnalyzeOption) (report.Report, error) {
	if err := input.Validate(); err != nil {
		return report.Report{}, err
	}

	o := analyzeOptions{
		topSections:       e.cfg.TopSections,
		subsectionSources: e.cfg.SubsectionSources,
		maxSubsections:    e.cfg.MaxSubsections,
	}
	for _, opt := range opts {
		opt(&o)
	}

	docs := e.processDocuments(ctx, input.Documents)
	if len(docs) == 0 {
		return report.Report{}, ErrNoDocuments
	}

	profile := query.Build(input.Persona.Role, input.JobToBeDone.Task)
	slog.Info("query profile built",
		"persona_category", profile.PersonaCategory,
		"task_keywords", len(profile.TaskKeywords),
	)

	scored, err := e.ranker.RankSections(ctx, docs, profile)
	if err != nil {
		return report.Report{}, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(scored) == 0 {
		return report.Report{}, ErrNoSections
	}
	slog.Info("sections ranked", "total", len(scored))

	top := scored
	if len(top) > o.topSections {
		top = top[:o.topSections]
	}

	sources := top
	if len(sources) > o.subsectionSources {
		sources = sources[:o.subsectionSources]
	}
	subs, err := e.ranker.RankSubsections(ctx, sources, profile, o.maxSubsections)
	if err != nil {
		return report.Report{}, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	slog.Info("subsections ranked", "total", len(subs))

	inputDocs := make([]string, len(input.Documents))
	for i, d := range input.Documents {
		inputDocs[i] = d.Filename
	}

	return report.Build(inputDocs, input.Persona.Role, input.JobToBeDone.Task, top, subs), nil
}

// processDocuments extracts and parses every readable input document.
// Missing files are skipped with a warning; extraction failures produce
// error-marked documents so the rest of the collection still ranks.
func (e *engine) processDocuments(ctx context.Context, refs []DocumentRef) []structure.Document {
	var docs []structure.Document
	for _, ref := range refs {
		path := ref.Filename
		if e.cfg.BaseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(e.cfg.BaseDir, ref.Filename)
		}

		if _, err := os.Stat(path); err != nil {
			slog.Warn("document not found, skipping", "path", path)
			continue
		}

		docs = append(docs, e.processDocument(ctx, ref.Filename, path))
	}
	return docs
}

func (e *engine) processDocument(ctx context.Context, filename, path string) structure.Document {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	extractor, err := e.extractors.Get(format)
	if err != nil {
		slog.Warn("unsupported format", "path", path, "format", format)
		return structure.NewErrorDocument(filename, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format))
	}

	pages, err := extractor.Extract(ctx, path)
	if err != nil {
		slog.Warn("extraction failed", "path", path, "error", err)
		return structure.NewErrorDocument(filename, fmt.Errorf("%w: %v", ErrExtractionFailed, err))
	}

	doc := structure.ParseDocument(filename, pages)
	s := structure.Summarize(doc)
	slog.Info("document parsed",
		"filename", filename,
		"pages", s.TotalPages,
		"sections", s.TotalSections,
		"section_types", s.SectionTypes,
		"avg_section_words", s.AvgSectionLength,
	)
	return doc
}

// IsInputError reports whether err stems from the caller's input rather
// than the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNoDocuments)
}
