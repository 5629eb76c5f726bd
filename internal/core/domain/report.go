package domain

import "time"

// DocumentResult pairs an analyzed document's identity with its
// analysis for reporting.
type DocumentResult struct {
	Filename string         `json:"filename"`
	Analysis AnalysisResult `json:"analysis"`
}

// SkipRecord accounts for a file the pipeline could not analyze. Skips
// are surfaced in both report formats; nothing is dropped silently.
type SkipRecord struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Report is the aggregate over one run. Built once after the last
// document, never mutated afterward.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Groups      map[ContentType][]DocumentResult
	Skips       []SkipRecord
}

// BuildReport groups results by content type. Order within a group
// follows input order.
func BuildReport(results []DocumentResult, skips []SkipRecord, generatedAt time.Time, runID string) Report {
	groups := make(map[ContentType][]DocumentResult)
	for _, r := range results {
		groups[r.Analysis.ContentType] = append(groups[r.Analysis.ContentType], r)
	}
	return Report{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Groups:      groups,
		Skips:       skips,
	}
}

// TotalDocuments counts analyzed documents across all groups.
func (r Report) TotalDocuments() int {
	n := 0
	for _, docs := range r.Groups {
		n += len(docs)
	}
	return n
}

// CountByType reports group sizes for every content type in the
// closed set, including empty ones.
func (r Report) CountByType() map[ContentType]int {
	counts := make(map[ContentType]int, len(AllContentTypes()))
	for _, ct := range AllContentTypes() {
		counts[ct] = len(r.Groups[ct])
	}
	return counts
}
