package rank

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docsift/docsift/chunker"
	"github.com/docsift/docsift/query"
)

// Subsection is a scored passage carved out of a ranked section.
type Subsection struct {
	Document      string  `json:"document"`
	ParentSection string  `json:"parent_section"`
	Content       string  `json:"content"`
	PageNumber    int     `json:"page_number"`
	Index         int     `json:"subsection_index"`
	Score         float64 `json:"relevance_score"`
}

// RankSubsections splits the given sections into passages, scores each
// by semantic similarity to the query alone, and returns the top
// maxSubsections sorted by descending score. Passages shorter than
// chunker.MinChunkLen are skipped.
func (r *Ranker) RankSubsections(ctx context.Context, sections []ScoredSection, profile query.Profile, maxSubsections int) ([]Subsection, error) {
	var subs []Subsection
	var texts []string

	for _, sec := range sections {
		for i, chunk := range chunker.Split(sec.Content) {
			chunk = strings.TrimSpace(chunk)
			if len(chunk) < chunker.MinChunkLen {
				continue
			}
			subs = append(subs, Subsection{
				Document:      sec.Document,
				ParentSection: sec.CleanTitle,
				Content:       chunk,
				PageNumber:    sec.PageNumber,
				Index:         i,
			})
			texts = append(texts, sec.CleanTitle+": "+chunk)
		}
	}
	if len(subs) == 0 {
		return nil, nil
	}

	queryVec, err := r.embedOne(ctx, profile.Text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	vecs, err := r.embedAll(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding subsections: %w", err)
	}

	sims, err := r.similarities(ctx, vecs, queryVec)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].Score = sims[int64(i)]
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].Score > subs[j].Score
	})
	if len(subs) > maxSubsections {
		subs = subs[:maxSubsections]
	}
	return subs, nil
}
