// Package textutil provides the text normalization and tokenization
// primitives shared by the extraction and structure packages: page/title
// cleaning, word and sentence tokenization, and the English stop-word set.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t\r\f]+`)
	collapseWS   = regexp.MustCompile(`\s+`)
	// Everything outside word characters, whitespace, and basic punctuation
	// is a PDF artifact (ligatures, bullets, control leftovers).
	specialChars = regexp.MustCompile(`[^\w\s.,!?:;\-()]`)
	// A standalone number at the end of a line is almost always a printed
	// page number.
	trailingPageNum = regexp.MustCompile(`\b\d+\s*$`)
)

// CleanLine normalizes a single line: whitespace collapsed to single
// spaces, non-text artifacts removed, trailing standalone page-number
// tokens stripped.
func CleanLine(s string) string {
	s = specialChars.ReplaceAllString(s, " ")
	s = collapseWS.ReplaceAllString(s, " ")
	s = trailingPageNum.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanText normalizes page text line by line, preserving line breaks so
// the structural parser can still see one candidate heading per line.
func CleanText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = specialChars.ReplaceAllString(line, " ")
		line = horizontalWS.ReplaceAllString(line, " ")
		line = trailingPageNum.ReplaceAllString(line, "")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Words tokenizes text into words. Runs of letters, digits, and internal
// apostrophes/hyphens count as one word; punctuation is dropped.
func Words(s string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cur.WriteRune(r)
		case (r == '\'' || r == '-') && cur.Len() > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

// Sentences splits text at sentence boundaries: a period, question mark,
// or exclamation mark followed by whitespace or end of input.
func Sentences(s string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '?' || runes[i] == '!' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if t := strings.TrimSpace(cur.String()); t != "" {
					sentences = append(sentences, t)
				}
				cur.Reset()
			}
		}
	}
	if t := strings.TrimSpace(cur.String()); t != "" {
		sentences = append(sentences, t)
	}
	return sentences
}

// IsStopWord reports whether the (lowercased) word is an English stop word.
func IsStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

// StopWordRatio returns the fraction of words in the slice that are stop
// words. Returns 0 for an empty slice.
func StopWordRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	n := 0
	for _, w := range words {
		if IsStopWord(w) {
			n++
		}
	}
	return float64(n) / float64(len(words))
}

// stopWords is the standard English stop-word set.
var stopWords = func() map[string]struct{} {
	list := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "you're", "you've", "you'll", "you'd", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she",
		"she's", "her", "hers", "herself", "it", "it's", "its", "itself",
		"they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "that'll", "these", "those", "am",
		"is", "are", "was", "were", "be", "been", "being", "have", "has",
		"had", "having", "do", "does", "did", "doing", "a", "an", "the",
		"and", "but", "if", "or", "because", "as", "until", "while", "of",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to",
		"from", "up", "down", "in", "out", "on", "off", "over", "under",
		"again", "further", "then", "once", "here", "there", "when",
		"where", "why", "how", "all", "any", "both", "each", "few",
		"more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "s", "t",
		"can", "will", "just", "don", "don't", "should", "should've",
		"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
		"aren't", "couldn", "couldn't", "didn", "didn't", "doesn",
		"doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven",
		"haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
		"mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
		"shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
		"won't", "wouldn", "wouldn't",
	}
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}()
