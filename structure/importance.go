package structure

import "strings"

// Importance keyword lexicon. Loaded once, never mutated at runtime.
// Scores accumulate additively per distinct keyword found and are clamped
// at 1.0 at the end.
var importanceKeywords = struct {
	high       []string
	medium     []string
	contextual []string
}{
	high:       []string{"introduction", "summary", "conclusion", "overview", "key", "important", "main", "primary"},
	medium:     []string{"method", "approach", "procedure", "process", "technique", "strategy"},
	contextual: []string{"example", "case", "illustration", "demonstration"},
}

// ImportanceScore assigns a structural prior in [0,1] to a section purely
// from its title text. Pure function of the title; no external state.
func ImportanceScore(title string) float64 {
	lower := strings.ToLower(title)
	score := 0.5

	for _, kw := range importanceKeywords.high {
		if strings.Contains(lower, kw) {
			score += 0.3
		}
	}
	for _, kw := range importanceKeywords.medium {
		if strings.Contains(lower, kw) {
			score += 0.2
		}
	}
	for _, kw := range importanceKeywords.contextual {
		if strings.Contains(lower, kw) {
			score += 0.1
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
