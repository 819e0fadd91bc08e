package docsift

import (
	"github.com/docsift/docsift/llm"
	"github.com/docsift/docsift/rank"
)

// Config holds all configuration for the analysis engine.
type Config struct {
	// BaseDir is the directory document filenames are resolved against.
	// Empty means the current working directory.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// Embedding configures the embedding provider.
	Embedding llm.Config `json:"embedding" yaml:"embedding"`

	// EmbeddingDim must match the embedding model's output dimension.
	EmbeddingDim int `json:"embedding_dim" yaml:"embedding_dim"`

	// Weights blends the semantic, keyword, and structural signals.
	Weights rank.Weights `json:"weights" yaml:"weights"`

	// TopSections is how many ranked sections survive the first cut.
	TopSections int `json:"top_sections" yaml:"top_sections"`

	// SubsectionSources is how many of the top sections feed subsection
	// extraction.
	SubsectionSources int `json:"subsection_sources" yaml:"subsection_sources"`

	// MaxSubsections caps the ranked subsections.
	MaxSubsections int `json:"max_subsections" yaml:"max_subsections"`
}

// DefaultConfig returns a Config with sensible defaults for local inference.
func DefaultConfig() Config {
	return Config{
		Embedding: llm.Config{
			Provider: "ollama",
			Model:    "nomic-embed-text",
			BaseURL:  "http://localhost:11434",
		},
		EmbeddingDim:      768,
		Weights:           rank.DefaultWeights,
		TopSections:       20,
		SubsectionSources: 5,
		MaxSubsections:    15,
	}
}

// withDefaults fills zero-valued limits from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.EmbeddingDim == 0 {
		c.EmbeddingDim = def.EmbeddingDim
	}
	if c.Weights == (rank.Weights{}) {
		c.Weights = def.Weights
	}
	if c.TopSections == 0 {
		c.TopSections = def.TopSections
	}
	if c.SubsectionSources == 0 {
		c.SubsectionSources = def.SubsectionSources
	}
	if c.MaxSubsections == 0 {
		c.MaxSubsections = def.MaxSubsections
	}
	return c
}
