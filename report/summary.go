package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				MarginTop(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Width(14)

	summaryRankStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))
)

// Summary renders a human-readable run summary for the terminal.
func Summary(rep Report, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("Analysis summary"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(summaryLabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Elapsed", elapsed.Round(time.Millisecond).String())
	row("Documents", fmt.Sprintf("%d", len(rep.Metadata.InputDocuments)))
	row("Sections", fmt.Sprintf("%d", len(rep.ExtractedSections)))
	row("Subsections", fmt.Sprintf("%d", len(rep.SubsectionAnalysis)))
	row("Persona", rep.Metadata.Persona)
	row("Task", rep.Metadata.JobToBeDone)

	if len(rep.ExtractedSections) > 0 {
		b.WriteString("\nTop sections\n")
		for i, sec := range rep.ExtractedSections {
			if i >= 3 {
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s (%s, page %d)\n",
				summaryRankStyle.Render(fmt.Sprintf("%d.", sec.ImportanceRank)),
				sec.SectionTitle, sec.Document, sec.PageNumber))
		}
	}

	return b.String()
}
