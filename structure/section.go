// Package structure infers the latent outline of a document — section
// boundaries, titles, and types — from ordered per-page plain text, with
// no layout or font information. Detection is purely textual: an ordered
// regex rule table, a conservative heading heuristic, and a keyword-based
// importance prior.
package structure

import "github.com/docsift/docsift/extract"

// SectionType tags how a section boundary was detected.
type SectionType string

const (
	TypeChapter         SectionType = "chapter"
	TypeSection         SectionType = "section"
	TypeSubsection      SectionType = "subsection"
	TypeMajorHeading    SectionType = "major_heading"
	TypeTitledSection   SectionType = "titled_section"
	TypeKeySection      SectionType = "key_section"
	TypeImplicitHeading SectionType = "implicit_heading"
	TypeContent         SectionType = "content"
)

// Section is a contiguous span of body text under one inferred heading.
type Section struct {
	Title         string      `json:"title"`
	CleanTitle    string      `json:"clean_title"`
	Type          SectionType `json:"type"`
	PageNumber    int         `json:"page_number"`
	Content       string      `json:"content"`
	WordCount     int         `json:"word_count"`
	SentenceCount int         `json:"sentence_count"`
	// Importance is a structural prior in [0,1] derived from the title.
	Importance float64 `json:"importance_score"`
}

// Page carries the raw extracted text of one page and its cleaned form.
type Page struct {
	Number    int    `json:"page_number"`
	Text      string `json:"text"`
	CleanText string `json:"clean_text"`
}

// Document is one ingested document. A Document with Err set has no pages
// and no sections and must be excluded from ranking.
type Document struct {
	Filename string    `json:"filename"`
	Pages    []Page    `json:"pages,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Err      error     `json:"-"`
}

// NewErrorDocument returns a Document marking a whole-document extraction
// failure.
func NewErrorDocument(filename string, err error) Document {
	return Document{Filename: filename, Err: err}
}

// Summary aggregates per-document parse statistics.
type Summary struct {
	Filename         string   `json:"filename"`
	TotalPages       int      `json:"total_pages"`
	TotalSections    int      `json:"total_sections"`
	SectionTypes     []string `json:"section_types"`
	AvgSectionLength float64  `json:"avg_section_length"`
}

// Summarize reports page/section statistics for a parsed document.
func Summarize(doc Document) Summary {
	s := Summary{
		Filename:      doc.Filename,
		TotalPages:    len(doc.Pages),
		TotalSections: len(doc.Sections),
	}
	seen := make(map[SectionType]bool)
	totalWords := 0
	for _, sec := range doc.Sections {
		if !seen[sec.Type] {
			seen[sec.Type] = true
			s.SectionTypes = append(s.SectionTypes, string(sec.Type))
		}
		totalWords += sec.WordCount
	}
	if len(doc.Sections) > 0 {
		s.AvgSectionLength = float64(totalWords) / float64(len(doc.Sections))
	}
	return s
}

// pagesFromExtract converts extractor pages into structure pages,
// attaching cleaned text.
func pagesFromExtract(pages []extract.Page) []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = Page{Number: p.Number, Text: p.Text, CleanText: cleanPage(p.Text)}
	}
	return out
}
