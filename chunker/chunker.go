// Package chunker decomposes a section body into coherent passages
// bounded by paragraph or sentence boundaries.
package chunker

import (
	"regexp"
	"strings"
)

const (
	// MaxChunkLen is the greedy accumulation bound for paragraph chunks.
	MaxChunkLen = 300
	// SentenceTargetLen is the tighter bound used by the sentence-level
	// fallback.
	SentenceTargetLen = 200
	// MinChunkLen is the shortest passage worth ranking; callers skip
	// shorter chunks.
	MinChunkLen = 30
)

var (
	paragraphSep = regexp.MustCompile(`\n\s*\n`)
	sentenceSep  = regexp.MustCompile(`[.!?]+\s+`)
)

// Split breaks a section body into passages. Paragraph boundaries are
// preferred; the sentence fallback kicks in only when paragraphs yield
// at most one chunk from a body longer than MaxChunkLen. A single
// paragraph longer than MaxChunkLen is emitted whole, never cut
// mid-paragraph.
func Split(content string) []string {
	var chunks []string
	var current string

	for _, paragraph := range paragraphSep.Split(content, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		switch {
		case current != "" && len(current)+len(paragraph) > MaxChunkLen:
			chunks = append(chunks, current)
			current = paragraph
		case current != "":
			current += " " + paragraph
		default:
			current = paragraph
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	if len(chunks) <= 1 && len(content) > MaxChunkLen {
		return splitBySentences(content, SentenceTargetLen)
	}
	return chunks
}

// splitBySentences greedily packs sentences into chunks of roughly
// targetLen characters. The split consumes sentence terminators, so
// accumulated sentences are re-joined with ". ".
func splitBySentences(content string, targetLen int) []string {
	var chunks []string
	var current string

	for _, sentence := range sentenceSep.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		switch {
		case current != "" && len(current)+len(sentence) > targetLen:
			chunks = append(chunks, current)
			current = sentence
		case current != "":
			current += ". " + sentence
		default:
			current = sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
