package structure

import (
	"fmt"
	"strings"

	"github.com/docsift/docsift/extract"
	"github.com/docsift/docsift/textutil"
)

const (
	// minLineLen is the shortest line the parser will consider at all.
	minLineLen = 3
	// minSectionLen drops finalized sections with almost no body.
	minSectionLen = 10
	// maxSectionLen bounds section bodies before embedding.
	maxSectionLen = 2000
)

// cleanPage normalizes one page of raw extracted text, preserving line
// breaks for the line-oriented boundary scan.
func cleanPage(text string) string {
	return textutil.CleanText(text)
}

// ParseDocument segments a document's ordered pages into finalized
// sections. Pages before the first detected heading fall into a single
// synthetic introduction section, so no content is lost on documents with
// no recognizable headings at all.
func ParseDocument(filename string, pages []extract.Page) Document {
	doc := Document{
		Filename: filename,
		Pages:    pagesFromExtract(pages),
	}

	var sections []Section
	var current *Section
	var body strings.Builder

	open := func(sec Section) {
		current = &sec
		body.Reset()
	}
	emit := func() {
		if current == nil {
			return
		}
		current.Content = body.String()
		sections = append(sections, *current)
		current = nil
	}

	for _, page := range doc.Pages {
		for _, raw := range strings.Split(page.CleanText, "\n") {
			line := strings.TrimSpace(raw)
			if len(line) < minLineLen {
				continue
			}

			title, typ, ok := MatchHeading(line)
			if !ok && LooksLikeHeading(line) {
				title, typ, ok = line, TypeImplicitHeading, true
			}

			switch {
			case ok:
				emit()
				open(Section{
					Title:      title,
					Type:       typ,
					PageNumber: page.Number,
					Importance: ImportanceScore(title),
				})
			case current != nil:
				body.WriteString(line)
				body.WriteString(" ")
			case len(sections) == 0:
				// Content before any heading: open the synthetic
				// introduction exactly once per document.
				open(Section{
					Title:      fmt.Sprintf("Introduction - Page %d", page.Number),
					Type:       TypeContent,
					PageNumber: page.Number,
					Importance: 0.5,
				})
				body.WriteString(line)
				body.WriteString(" ")
			}
		}
	}
	emit()

	doc.Sections = postProcess(sections)
	return doc
}

// postProcess finalizes raw sections: trims and bounds bodies, drops
// near-empty sections, and derives counts and the cleaned title.
func postProcess(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		content := strings.TrimSpace(sec.Content)
		if len(content) < minSectionLen {
			continue
		}
		if len(content) > maxSectionLen {
			content = truncateRunes(content, maxSectionLen) + "..."
		}

		sec.Content = content
		sec.WordCount = len(textutil.Words(content))
		sec.SentenceCount = len(textutil.Sentences(content))
		sec.CleanTitle = textutil.CleanLine(sec.Title)
		out = append(out, sec)
	}
	return out
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
