package report

import (
	"encoding/json"
	"time"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

type jsonReport struct {
	RunID          string                             `json:"run_id"`
	GeneratedAt    string                             `json:"generated_at"`
	TotalDocuments int                                `json:"total_documents"`
	Documents      map[string][]domain.DocumentResult `json:"documents"`
	Skipped        []domain.SkipRecord                `json:"skipped"`
}

// RenderJSON produces the lossless machine-readable serialization.
// Output is a pure function of the report, so re-rendering the same
// report yields identical bytes.
func RenderJSON(rep domain.Report) ([]byte, error) {
	docs := make(map[string][]domain.DocumentResult, len(rep.Groups))
	for ct, group := range rep.Groups {
		if len(group) > 0 {
			docs[string(ct)] = group
		}
	}
	skipped := rep.Skips
	if skipped == nil {
		skipped = []domain.SkipRecord{}
	}

	out := jsonReport{
		RunID:          rep.RunID,
		GeneratedAt:    rep.GeneratedAt.UTC().Format(time.RFC3339),
		TotalDocuments: rep.TotalDocuments(),
		Documents:      docs,
		Skipped:        skipped,
	}
	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}
