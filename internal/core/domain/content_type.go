package domain

import "strings"

// ContentType is the closed set of categories a document can be
// assigned. Anything the model returns outside this set collapses to
// ContentTypeGeneral.
type ContentType string

const (
	ContentTypeTask      ContentType = "task"
	ContentTypeStory     ContentType = "story"
	ContentTypeTechnical ContentType = "technical"
	ContentTypeReport    ContentType = "report"
	ContentTypeGeneral   ContentType = "general"
)

// AllContentTypes returns the closed set in stable rendering order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeTask,
		ContentTypeStory,
		ContentTypeTechnical,
		ContentTypeReport,
		ContentTypeGeneral,
	}
}

// contentTypeSynonyms maps label spellings the model is known to emit
// onto the canonical set.
var contentTypeSynonyms = map[string]ContentType{
	"task":               ContentTypeTask,
	"tasks":              ContentTypeTask,
	"todo":               ContentTypeTask,
	"action":             ContentTypeTask,
	"story":              ContentTypeStory,
	"narrative":          ContentTypeStory,
	"fiction":            ContentTypeStory,
	"technical":          ContentTypeTechnical,
	"technical document": ContentTypeTechnical,
	"documentation":      ContentTypeTechnical,
	"report":             ContentTypeReport,
	"general":            ContentTypeGeneral,
}

// ParseContentType coerces a raw model label into the closed set.
// Matching is case-insensitive with a fixed synonym table; unknown
// labels fall back to ContentTypeGeneral.
func ParseContentType(raw string) ContentType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if ct, ok := contentTypeSynonyms[key]; ok {
		return ct
	}
	return ContentTypeGeneral
}

// Urgency grades a task document.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency coerces a raw urgency label; unknown values fall back
// to UrgencyLow.
func ParseUrgency(raw string) Urgency {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "urgent", "critical":
		return UrgencyHigh
	case "medium", "normal", "moderate":
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
