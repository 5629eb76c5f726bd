package openai

import (
	"context"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// Summarizer runs the content-type-specific summary completion and
// parses the free-form response into the matching analysis variant.
type Summarizer struct {
	client *Client
}

func NewSummarizer(client *Client) *Summarizer {
	return &Summarizer{client: client}
}

func (s *Summarizer) Summarize(ctx context.Context, contentType domain.ContentType, text string) (domain.AnalysisResult, error) {
	buildPrompt, ok := summaryPrompts[contentType]
	if !ok {
		contentType = domain.ContentTypeGeneral
		buildPrompt = summaryPrompts[contentType]
	}

	respText, err := s.client.Complete(ctx, buildPrompt(text))
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return parseAnalysis(contentType, respText), nil
}
