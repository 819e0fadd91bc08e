package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/docsift/docsift/textutil"
)

// headingRule pairs a boundary pattern with the section type it detects.
// The rule list is an ordered priority table: more specific patterns come
// first and the first match wins, so the order must not be changed.
type headingRule struct {
	re  *regexp.Regexp
	typ SectionType
}

var headingRules = []headingRule{
	// Explicit chapter markers: "Chapter 3: Origins", "CHAPTER 12."
	{regexp.MustCompile(`(?i)^chapter\s+\d+[:.]?\s*(.+)`), TypeChapter},
	// Decimal subsection numbering: "2.1 Background Theory"
	{regexp.MustCompile(`^\d+\.\d+\s+(.+)`), TypeSubsection},
	// Top-level numbering: "3. Methods"
	{regexp.MustCompile(`^\d+\.\s+(.+)`), TypeSection},
	// All-caps heading lines. Case-sensitive on purpose: a lowercase line
	// of plain words is body text, not a major heading.
	{regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`), TypeMajorHeading},
	// "Word Word: rest of line" titled lines; the title is the remainder.
	{regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*:(.+)`), TypeTitledSection},
	// Canonical section vocabulary anchored at line start.
	{regexp.MustCompile(`(?i)^(?:introduction|conclusion|summary|overview|background)`), TypeKeySection},
}

// MatchHeading classifies a trimmed line against the ordered rule table.
// The returned title is the pattern's capture group when it has one,
// otherwise the whole line. ok is false when no rule matches; callers
// should then consult LooksLikeHeading.
func MatchHeading(line string) (title string, typ SectionType, ok bool) {
	for _, rule := range headingRules {
		m := rule.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if len(m) > 1 && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1]), rule.typ, true
		}
		return strings.TrimSpace(line), rule.typ, true
	}
	return "", "", false
}

// LooksLikeHeading is the low-precision fallback for lines no rule
// matched. The thresholds are conservative: a false heading fragments
// otherwise-coherent body text.
func LooksLikeHeading(line string) bool {
	line = strings.TrimSpace(line)

	if len(line) < 3 || len(line) > 100 {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}

	// A line dominated by stop words is paragraph text.
	tokens := textutil.Words(strings.ToLower(line))
	if len(tokens) > 0 && textutil.StopWordRatio(tokens) > 0.5 {
		return false
	}

	// Short lines of mostly capitalized words read as headings.
	words := strings.Fields(line)
	if len(words) <= 5 {
		capped := 0
		for _, w := range words {
			if r := []rune(w)[0]; unicode.IsUpper(r) {
				capped++
			}
		}
		if float64(capped) >= float64(len(words))*0.6 {
			return true
		}
	}

	return false
}
