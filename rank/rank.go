// Package rank scores document sections against a persona/task query by
// combining semantic similarity, keyword overlap, and structural weight.
package rank

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/docsift/docsift/llm"
	"github.com/docsift/docsift/query"
	"github.com/docsift/docsift/store"
	"github.com/docsift/docsift/structure"
)

// Weights controls how the three relevance signals combine.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	Keyword    float64 `json:"keyword"`
	Structural float64 `json:"structural"`
}

// DefaultWeights favours semantic similarity while keeping keyword and
// structural signals in play.
var DefaultWeights = Weights{Semantic: 0.5, Keyword: 0.3, Structural: 0.2}

const (
	// maxEnhancedLen bounds the text handed to the embedder per section.
	maxEnhancedLen = 1000
	// embedBatchSize is how many texts go to the provider per request.
	embedBatchSize = 32
)

// ScoredSection is a section annotated with its originating document
// and relevance signals.
type ScoredSection struct {
	structure.Section

	Document   string  `json:"document"`
	Semantic   float64 `json:"semantic_score"`
	Keyword    float64 `json:"keyword_score"`
	Structural float64 `json:"structural_score"`
	Relevance  float64 `json:"relevance_score"`
}

// Ranker embeds sections and scores them against a query profile.
type Ranker struct {
	embedder llm.Provider
	index    *store.Index
	weights  Weights
}

// New creates a Ranker. Zero weights fall back to DefaultWeights.
func New(embedder llm.Provider, index *store.Index, weights Weights) *Ranker {
	if weights == (Weights{}) {
		weights = DefaultWeights
	}
	return &Ranker{embedder: embedder, index: index, weights: weights}
}

// RankSections scores every section of every parsed document against
// the query profile and returns them sorted by descending relevance.
// Documents carrying an extraction error are skipped. Ties keep their
// input order.
func (r *Ranker) RankSections(ctx context.Context, docs []structure.Document, profile query.Profile) ([]ScoredSection, error) {
	var scored []ScoredSection
	var texts []string
	for _, doc := range docs {
		if doc.Err != nil {
			continue
		}
		for _, sec := range doc.Sections {
			scored = append(scored, ScoredSection{Section: sec, Document: doc.Filename})
			texts = append(texts, enhancedText(sec))
		}
	}
	if len(scored) == 0 {
		return nil, nil
	}

	queryVec, err := r.embedOne(ctx, profile.Text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	vecs, err := r.embedAll(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding sections: %w", err)
	}

	sims, err := r.similarities(ctx, vecs, queryVec)
	if err != nil {
		return nil, err
	}

	for i := range scored {
		scored[i].Semantic = sims[int64(i)]
		scored[i].Keyword = keywordScore(scored[i].CleanTitle, scored[i].Content, profile)
		scored[i].Structural = structuralScore(scored[i].Section)
		scored[i].Relevance = r.weights.Semantic*scored[i].Semantic +
			r.weights.Keyword*scored[i].Keyword +
			r.weights.Structural*scored[i].Structural
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})
	return scored, nil
}

// similarities loads vectors into the index and scores them against the
// query in one KNN pass.
func (r *Ranker) similarities(ctx context.Context, vecs [][]float32, queryVec []float32) (map[int64]float64, error) {
	if err := r.index.Reset(ctx); err != nil {
		return nil, fmt.Errorf("resetting index: %w", err)
	}
	for i, v := range vecs {
		if err := r.index.Add(ctx, int64(i), v); err != nil {
			return nil, fmt.Errorf("indexing vector %d: %w", i, err)
		}
	}
	sims, err := r.index.Similarities(ctx, queryVec)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return sims, nil
}

// embedOne embeds a single text through the cache.
func (r *Ranker) embedOne(ctx context.Context, text string) ([]float32, error) {
	vecs, err := r.embedAll(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// embedAll embeds texts, consulting the per-run cache first and sending
// only misses to the provider, in batches.
func (r *Ranker) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	var missIdx []int
	var missTexts []string

	for i, text := range texts {
		v, ok, err := r.index.CacheGet(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding cache lookup: %w", err)
		}
		if ok {
			vecs[i] = v
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	for start := 0; start < len(missTexts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(missTexts) {
			end = len(missTexts)
		}

		batch, err := r.embedder.Embed(ctx, missTexts[start:end])
		if err != nil {
			return nil, err
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("provider returned %d embeddings for %d texts", len(batch), end-start)
		}

		for j, v := range batch {
			i := missIdx[start+j]
			vecs[i] = v
			if err := r.index.CachePut(ctx, texts[i], v); err != nil {
				return nil, fmt.Errorf("embedding cache store: %w", err)
			}
		}
	}
	return vecs, nil
}

// enhancedText builds the embedding input for a section: its clean
// title and body, prefixed for structurally important types, bounded to
// maxEnhancedLen bytes.
func enhancedText(sec structure.Section) string {
	text := sec.CleanTitle + " " + sec.Content

	switch sec.Type {
	case structure.TypeChapter, structure.TypeMajorHeading, structure.TypeKeySection:
		text = "Important section: " + text
	}

	return truncate(text, maxEnhancedLen)
}

// keywordScore measures keyword overlap between a section and the query
// profile. Persona and task matches are normalized by their lexicon
// sizes and combined 60/40.
func keywordScore(title, content string, profile query.Profile) float64 {
	text := strings.ToLower(title + " " + content)

	personaMatches := 0
	for _, kw := range profile.PersonaKeywords {
		if strings.Contains(text, kw) {
			personaMatches++
		}
	}
	taskMatches := 0
	for _, kw := range profile.TaskKeywords {
		if strings.Contains(text, kw) {
			taskMatches++
		}
	}

	personaScore := ratio(personaMatches, len(profile.PersonaKeywords))
	taskScore := ratio(taskMatches, len(profile.TaskKeywords))

	return 0.6*personaScore + 0.4*taskScore
}

func ratio(matches, total int) float64 {
	if total < 1 {
		total = 1
	}
	r := float64(matches) / float64(total)
	if r > 1 {
		r = 1
	}
	return r
}

// typeBoosts rewards structurally prominent section types.
var typeBoosts = map[structure.SectionType]float64{
	structure.TypeChapter:      0.3,
	structure.TypeMajorHeading: 0.2,
	structure.TypeKeySection:   0.25,
	structure.TypeSection:      0.15,
	structure.TypeSubsection:   0.1,
}

// structuralScore starts from the section's intrinsic importance, adds
// a type boost, and adjusts for body length. Moderate-length sections
// score best. Capped at 1.0.
func structuralScore(sec structure.Section) float64 {
	score := sec.Importance
	score += typeBoosts[sec.Type]

	switch {
	case sec.WordCount >= 50 && sec.WordCount <= 500:
		score += 0.1
	case sec.WordCount < 20:
		score -= 0.2
	case sec.WordCount > 1000:
		score -= 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
