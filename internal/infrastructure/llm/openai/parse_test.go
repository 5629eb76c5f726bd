package openai

import (
	"reflect"
	"testing"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

func TestParseAnalysisTaskVariant(t *testing.T) {
	raw := `Urgency: High
Action Items:
- fix the login bug
- update the changelog
* notify the team
Summary:
Several fixes are pending before the release.`

	got := parseAnalysis(domain.ContentTypeTask, raw)

	if got.Urgency != domain.UrgencyHigh {
		t.Fatalf("expected high urgency, got %q", got.Urgency)
	}
	want := []string{"fix the login bug", "update the changelog", "notify the team"}
	if !reflect.DeepEqual(got.ActionItems, want) {
		t.Fatalf("unexpected action items: %v", got.ActionItems)
	}
	if got.Summary != "Several fixes are pending before the release." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestParseAnalysisStoryVariantCommaLists(t *testing.T) {
	raw := `Characters: Ada, Brahe, Ada
Themes: discovery, perseverance
Summary:
Two scientists chase a comet.
It ends well.`

	got := parseAnalysis(domain.ContentTypeStory, raw)

	if !reflect.DeepEqual(got.Characters, []string{"Ada", "Brahe"}) {
		t.Fatalf("expected deduplicated characters, got %v", got.Characters)
	}
	if !reflect.DeepEqual(got.Themes, []string{"discovery", "perseverance"}) {
		t.Fatalf("unexpected themes: %v", got.Themes)
	}
	if got.Summary != "Two scientists chase a comet.\nIt ends well." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestParseAnalysisStoryVariantBulletLists(t *testing.T) {
	raw := `Characters:
- Ada
- Brahe
Themes:
- discovery
Summary: short tale.`

	got := parseAnalysis(domain.ContentTypeStory, raw)
	if !reflect.DeepEqual(got.Characters, []string{"Ada", "Brahe"}) {
		t.Fatalf("unexpected characters: %v", got.Characters)
	}
	if !reflect.DeepEqual(got.Themes, []string{"discovery"}) {
		t.Fatalf("unexpected themes: %v", got.Themes)
	}
	if got.Summary != "short tale." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestParseAnalysisGeneralVariantKeyPoints(t *testing.T) {
	raw := `Key Points:
1. revenue grew
2) costs fell
Summary:
A good quarter.`

	got := parseAnalysis(domain.ContentTypeReport, raw)
	if !reflect.DeepEqual(got.KeyPoints, []string{"revenue grew", "costs fell"}) {
		t.Fatalf("unexpected key points: %v", got.KeyPoints)
	}
	if got.Summary != "A good quarter." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestParseAnalysisMissingStructureLeavesFieldsEmpty(t *testing.T) {
	raw := "Just a plain paragraph with no recognizable structure at all."

	got := parseAnalysis(domain.ContentTypeTask, raw)
	if len(got.ActionItems) != 0 {
		t.Fatalf("expected no action items, got %v", got.ActionItems)
	}
	if got.Urgency != domain.UrgencyLow {
		t.Fatalf("expected default urgency, got %q", got.Urgency)
	}
	if got.Summary != raw {
		t.Fatalf("prose must become the summary, got %q", got.Summary)
	}
}

func TestParseAnalysisUnlabeledBulletsDefaultToVariantList(t *testing.T) {
	raw := "- do the thing\n- do the other thing"

	task := parseAnalysis(domain.ContentTypeTask, raw)
	if len(task.ActionItems) != 2 {
		t.Fatalf("task bullets must become action items: %v", task.ActionItems)
	}

	general := parseAnalysis(domain.ContentTypeGeneral, raw)
	if len(general.KeyPoints) != 2 {
		t.Fatalf("general bullets must become key points: %v", general.KeyPoints)
	}
}

func TestParseAnalysisProseEndsList(t *testing.T) {
	raw := `Action Items:
- first
This closing remark is prose.
- stray bullet`

	got := parseAnalysis(domain.ContentTypeTask, raw)
	// After the prose line the list is closed; the stray bullet starts a
	// new unlabeled list, which for tasks is still action items.
	if !reflect.DeepEqual(got.ActionItems, []string{"first", "stray bullet"}) {
		t.Fatalf("unexpected action items: %v", got.ActionItems)
	}
	if got.Summary != "This closing remark is prose." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}
