package openai

import (
	"regexp"
	"strings"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// Response parsing is best effort: structure the model omitted leaves
// the matching field empty, it never fails the document.

type section int

const (
	sectionNone section = iota
	sectionActions
	sectionKeyPoints
	sectionCharacters
	sectionThemes
	sectionSummary
)

var (
	labelRe  = regexp.MustCompile(`(?i)^(urgency|action items|key points|characters|themes|summary)\s*:\s*(.*)$`)
	bulletRe = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+(.*)$`)
)

func parseAnalysis(contentType domain.ContentType, raw string) domain.AnalysisResult {
	result := domain.AnalysisResult{ContentType: contentType, Urgency: domain.UrgencyLow}

	var summaryLines []string
	current := sectionNone

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := labelRe.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "urgency":
				if value != "" {
					result.Urgency = domain.ParseUrgency(value)
				}
				current = sectionNone
			case "action items":
				current = sectionActions
				if value != "" {
					result.ActionItems = append(result.ActionItems, stripBullet(value))
				}
			case "key points":
				current = sectionKeyPoints
				if value != "" {
					result.KeyPoints = append(result.KeyPoints, stripBullet(value))
				}
			case "characters":
				current = sectionCharacters
				result.Characters = appendUnique(result.Characters, splitCSV(value)...)
			case "themes":
				current = sectionThemes
				result.Themes = appendUnique(result.Themes, splitCSV(value)...)
			case "summary":
				current = sectionSummary
				if value != "" {
					summaryLines = append(summaryLines, value)
				}
			}
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			item := strings.TrimSpace(m[1])
			if item == "" {
				continue
			}
			switch current {
			case sectionActions:
				result.ActionItems = append(result.ActionItems, item)
			case sectionKeyPoints:
				result.KeyPoints = append(result.KeyPoints, item)
			case sectionCharacters:
				result.Characters = appendUnique(result.Characters, item)
			case sectionThemes:
				result.Themes = appendUnique(result.Themes, item)
			default:
				// Unlabeled bullets default to the variant's list.
				switch contentType {
				case domain.ContentTypeTask:
					result.ActionItems = append(result.ActionItems, item)
				case domain.ContentTypeStory:
					summaryLines = append(summaryLines, item)
				default:
					result.KeyPoints = append(result.KeyPoints, item)
				}
			}
			continue
		}

		// Prose after a list ends that list.
		if current != sectionSummary {
			current = sectionNone
		}
		summaryLines = append(summaryLines, line)
	}

	result.Summary = strings.TrimSpace(strings.Join(summaryLines, "\n"))
	return result
}

func stripBullet(value string) string {
	if m := bulletRe.FindStringSubmatch(value); m != nil {
		return strings.TrimSpace(m[1])
	}
	return value
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range dst {
			if strings.EqualFold(existing, v) {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
