package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAnalysisResultMarshalTaskVariantAlwaysHasActionItems(t *testing.T) {
	res := AnalysisResult{
		ContentType: ContentTypeTask,
		Summary:     "do things",
		Urgency:     UrgencyHigh,
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	items, ok := m["action_items"].([]any)
	if !ok {
		t.Fatalf("action_items absent or wrong type: %v", m["action_items"])
	}
	if len(items) != 0 {
		t.Fatalf("expected empty action_items, got %v", items)
	}
	if _, ok := m["characters"]; ok {
		t.Fatalf("task variant must not carry story fields")
	}
}

func TestAnalysisResultMarshalStoryVariant(t *testing.T) {
	res := AnalysisResult{
		ContentType: ContentTypeStory,
		Summary:     "a tale",
		Characters:  []string{"Ada", "Brahe"},
		Themes:      []string{"discovery"},
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, `"characters"`) || !strings.Contains(s, `"themes"`) {
		t.Fatalf("story variant missing fields: %s", s)
	}
	if strings.Contains(s, `"urgency"`) || strings.Contains(s, `"action_items"`) {
		t.Fatalf("story variant must not carry task fields: %s", s)
	}
}

func TestAnalysisResultMarshalDegradedFlag(t *testing.T) {
	res := AnalysisResult{ContentType: ContentTypeGeneral, Summary: "partial", Degraded: true}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"degraded":true`) {
		t.Fatalf("degraded flag missing: %s", raw)
	}
}

func TestBuildReportGroupsAndCounts(t *testing.T) {
	results := []DocumentResult{
		{Filename: "a.pdf", Analysis: AnalysisResult{ContentType: ContentTypeTask}},
		{Filename: "b.pdf", Analysis: AnalysisResult{ContentType: ContentTypeStory}},
		{Filename: "c.pdf", Analysis: AnalysisResult{ContentType: ContentTypeTask}},
	}
	skips := []SkipRecord{{Filename: "broken.pdf", Reason: "corrupt"}}

	rep := BuildReport(results, skips, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), "run-1")

	if rep.TotalDocuments() != 3 {
		t.Fatalf("expected 3 documents, got %d", rep.TotalDocuments())
	}
	counts := rep.CountByType()
	if counts[ContentTypeTask] != 2 || counts[ContentTypeStory] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if counts[ContentTypeGeneral] != 0 {
		t.Fatalf("empty groups must still be counted: %v", counts)
	}
	if len(rep.Skips) != 1 {
		t.Fatalf("skip record lost")
	}
	if got := rep.Groups[ContentTypeTask][0].Filename; got != "a.pdf" {
		t.Fatalf("group order not input order: %q", got)
	}
}
