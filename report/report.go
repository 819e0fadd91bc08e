// Package report assembles and serializes the final analysis output.
package report

import (
	"encoding/json"
	"io"
	"time"
	"unicode/utf8"

	"github.com/docsift/docsift/rank"
)

const (
	// maxSections caps extracted_sections in the output.
	maxSections = 10
	// maxSubsections caps subsection_analysis in the output.
	maxSubsections = 15
	// maxRefinedLen bounds refined_text; longer passages are cut to 497
	// characters plus an ellipsis.
	maxRefinedLen = 500
)

// Report is the final output document.
type Report struct {
	Metadata           Metadata            `json:"metadata"`
	ExtractedSections  []ExtractedSection  `json:"extracted_sections"`
	SubsectionAnalysis []RefinedSubsection `json:"subsection_analysis"`
}

// Metadata describes the run that produced a report.
type Metadata struct {
	InputDocuments         []string `json:"input_documents"`
	Persona                string   `json:"persona"`
	JobToBeDone            string   `json:"job_to_be_done"`
	ProcessingTimestamp    string   `json:"processing_timestamp"`
	TotalSectionsAnalyzed  int      `json:"total_sections_analyzed"`
	TotalSubsectionsFound  int      `json:"total_subsections_generated"`
}

// ExtractedSection is one ranked section in the output.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// RefinedSubsection is one ranked passage in the output.
type RefinedSubsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Build assembles a report from ranked sections and subsections.
// Sections beyond the top ten and subsections beyond the top fifteen
// are dropped; metadata still reflects the full inputs.
func Build(inputDocs []string, persona, task string, sections []rank.ScoredSection, subs []rank.Subsection) Report {
	extracted := make([]ExtractedSection, 0, maxSections)
	for i, sec := range sections {
		if i >= maxSections {
			break
		}
		extracted = append(extracted, ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.CleanTitle,
			ImportanceRank: i + 1,
			PageNumber:     sec.PageNumber,
		})
	}

	analysis := make([]RefinedSubsection, 0, maxSubsections)
	for i, sub := range subs {
		if i >= maxSubsections {
			break
		}
		analysis = append(analysis, RefinedSubsection{
			Document:    sub.Document,
			RefinedText: refine(sub.Content),
			PageNumber:  sub.PageNumber,
		})
	}

	return Report{
		Metadata: Metadata{
			InputDocuments:        inputDocs,
			Persona:               persona,
			JobToBeDone:           task,
			ProcessingTimestamp:   time.Now().Format(time.RFC3339),
			TotalSectionsAnalyzed: len(sections),
			TotalSubsectionsFound: len(subs),
		},
		ExtractedSections:  extracted,
		SubsectionAnalysis: analysis,
	}
}

// refine bounds a passage to maxRefinedLen, ending over-long text with
// an ellipsis on a rune boundary.
func refine(text string) string {
	if len(text) <= maxRefinedLen {
		return text
	}
	n := maxRefinedLen - 3
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n] + "..."
}

// WriteJSON writes a report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rep)
}
