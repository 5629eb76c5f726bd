package openai

import "github.com/rubendecampos/pdf-summarization/internal/core/domain"

const (
	maxClassifyChars  = 3000
	maxSummarizeChars = 4000
)

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func buildClassificationPrompt(text string) string {
	return `You are a document classifier.
Return a strict JSON object with exactly one key:
content_type (string), one of: task, story, technical, report, general.
No markdown, no extra keys.

Document:
` + truncate(text, maxClassifyChars)
}

func buildTaskPrompt(text string) string {
	return `Create a task-oriented summary of the following text.

Respond in exactly this layout:
Urgency: low, medium or high
Action Items:
- one action item per line
Summary:
A short prose summary covering deadlines, priorities, responsible parties and dependencies.

Text:
` + truncate(text, maxSummarizeChars)
}

func buildStoryPrompt(text string) string {
	return `Create a story summary of the following text.

Respond in exactly this layout:
Characters: comma-separated list of main characters
Themes: comma-separated list of key themes
Summary:
A short prose summary of the plot and setting.

Text:
` + truncate(text, maxSummarizeChars)
}

func buildGeneralPrompt(text string) string {
	return `Create a comprehensive summary of the following text.

Respond in exactly this layout:
Key Points:
- one key point per line
Summary:
A short prose summary covering the main information, important details and conclusions.

Text:
` + truncate(text, maxSummarizeChars)
}

// summaryPrompts is the dispatch table keyed by content type. Types
// without a dedicated template share the general one.
var summaryPrompts = map[domain.ContentType]func(string) string{
	domain.ContentTypeTask:      buildTaskPrompt,
	domain.ContentTypeStory:     buildStoryPrompt,
	domain.ContentTypeTechnical: buildGeneralPrompt,
	domain.ContentTypeReport:    buildGeneralPrompt,
	domain.ContentTypeGeneral:   buildGeneralPrompt,
}
