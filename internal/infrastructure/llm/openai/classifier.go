package openai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// Classifier assigns one content type per document via a JSON-mode
// completion. Whatever comes back is coerced into the closed set;
// unparsable responses collapse to "general" rather than failing the
// document.
type Classifier struct {
	client *Client
}

func NewClassifier(client *Client) *Classifier {
	return &Classifier{client: client}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.ContentType, error) {
	respText, err := c.client.CompleteJSON(ctx, buildClassificationPrompt(text))
	if err != nil {
		return "", err
	}

	var result struct {
		ContentType string `json:"content_type"`
	}
	if err := json.Unmarshal([]byte(extractJSONObject(respText)), &result); err != nil {
		return domain.ContentTypeGeneral, nil
	}
	return domain.ParseContentType(result.ContentType), nil
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
