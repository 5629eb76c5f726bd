package domain

import "encoding/json"

type DocumentStatus string

const (
	StatusLoaded     DocumentStatus = "loaded"
	StatusClassified DocumentStatus = "classified"
	StatusSummarized DocumentStatus = "summarized"
	StatusReported   DocumentStatus = "reported"
	StatusSkipped    DocumentStatus = "skipped"
)

// Document is one input file moving through the pipeline. It advances
// strictly forward: loaded -> classified -> summarized -> reported,
// or terminally skipped when extraction fails.
type Document struct {
	Filename    string
	Path        string
	Text        string
	ContentType ContentType
	Analysis    AnalysisResult
	Status      DocumentStatus
}

// AnalysisResult is the variant output of summarization. Which fields
// carry meaning depends on ContentType: task documents have Urgency
// and ActionItems, story documents have Characters and Themes, the
// remaining types have optional KeyPoints. Summary is always set.
type AnalysisResult struct {
	ContentType ContentType
	Summary     string
	Urgency     Urgency
	ActionItems []string
	Characters  []string
	Themes      []string
	KeyPoints   []string
	// Degraded marks a summary-only record produced after the model
	// call exhausted its retry budget.
	Degraded bool
}

// MarshalJSON renders only the fields that belong to the result's
// variant, so the structured output never mixes shapes. ActionItems
// is always present for task results, even when empty.
func (a AnalysisResult) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"content_type": a.ContentType,
		"summary":      a.Summary,
	}
	switch a.ContentType {
	case ContentTypeTask:
		out["urgency"] = a.Urgency
		out["action_items"] = emptyIfNil(a.ActionItems)
	case ContentTypeStory:
		out["characters"] = emptyIfNil(a.Characters)
		out["themes"] = emptyIfNil(a.Themes)
	default:
		if len(a.KeyPoints) > 0 {
			out["key_points"] = a.KeyPoints
		}
	}
	if a.Degraded {
		out["degraded"] = true
	}
	return json.Marshal(out)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
