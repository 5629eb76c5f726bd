package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

var sectionTitles = map[domain.ContentType]string{
	domain.ContentTypeTask:      "Tasks",
	domain.ContentTypeStory:     "Stories",
	domain.ContentTypeTechnical: "Technical Documents",
	domain.ContentTypeReport:    "Reports",
	domain.ContentTypeGeneral:   "General Documents",
}

// RenderMarkdown produces the human-readable serialization, one
// section per content type in closed-set order, plus an incomplete
// documents section when anything was skipped or degraded.
func RenderMarkdown(rep domain.Report) []byte {
	var b strings.Builder

	b.WriteString("# PDF Analysis Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", rep.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Documents Analyzed:** %d\n", rep.TotalDocuments())
	fmt.Fprintf(&b, "**Files Skipped:** %d\n\n", len(rep.Skips))

	for _, ct := range domain.AllContentTypes() {
		group := rep.Groups[ct]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sectionTitles[ct])
		for _, doc := range group {
			writeDocument(&b, doc)
		}
	}

	writeIncomplete(&b, rep)

	return []byte(b.String())
}

func writeDocument(b *strings.Builder, doc domain.DocumentResult) {
	fmt.Fprintf(b, "### %s\n\n", doc.Filename)

	a := doc.Analysis
	switch a.ContentType {
	case domain.ContentTypeTask:
		fmt.Fprintf(b, "**Urgency:** %s\n\n", a.Urgency)
		if len(a.ActionItems) > 0 {
			b.WriteString("**Action Items:**\n")
			for _, item := range a.ActionItems {
				fmt.Fprintf(b, "- [ ] %s\n", item)
			}
			b.WriteString("\n")
		}
	case domain.ContentTypeStory:
		if len(a.Characters) > 0 {
			fmt.Fprintf(b, "**Characters:** %s\n", strings.Join(a.Characters, ", "))
		}
		if len(a.Themes) > 0 {
			fmt.Fprintf(b, "**Themes:** %s\n", strings.Join(a.Themes, ", "))
		}
		if len(a.Characters) > 0 || len(a.Themes) > 0 {
			b.WriteString("\n")
		}
	default:
		if len(a.KeyPoints) > 0 {
			b.WriteString("**Key Points:**\n")
			for _, p := range a.KeyPoints {
				fmt.Fprintf(b, "- %s\n", p)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("**Summary:**\n")
	if a.Summary != "" {
		b.WriteString(a.Summary)
		b.WriteString("\n")
	} else {
		b.WriteString("_No summary available._\n")
	}
	b.WriteString("\n")
}

func writeIncomplete(b *strings.Builder, rep domain.Report) {
	var lines []string
	for _, skip := range rep.Skips {
		lines = append(lines, fmt.Sprintf("- `%s` — skipped: %s", skip.Filename, skip.Reason))
	}
	for _, ct := range domain.AllContentTypes() {
		for _, doc := range rep.Groups[ct] {
			if doc.Analysis.Degraded {
				lines = append(lines, fmt.Sprintf("- `%s` — degraded: analysis incomplete, summary only", doc.Filename))
			}
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("## Incomplete Documents\n\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
