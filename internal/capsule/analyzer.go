// Package capsule implements the capsule-wardrobe matching and
// recommendation engine: style analysis, template matching, completion and
// budget math, and cross-template ranking.
package capsule

import (
	"strings"

	"github.com/threadcount/threadcount/internal/model"
)

// fitDominanceRatio is the hysteresis band for fit classification: one side
// must outnumber the other by this factor before the wardrobe reads as
// tailored or relaxed rather than mixed. Tunable.
const fitDominanceRatio = 1.5

var (
	tailoredKeywords = []string{"tailored", "fitted", "structured"}
	relaxedKeywords  = []string{"relaxed", "loose", "oversized"}
)

// AnalyzeStyle inspects an inventory and infers categorical presence,
// dominant style vocabulary, and dominant garment fit. The text heuristics
// are deliberately fuzzy substring matches that favor recall over precision,
// since item descriptions come from a vision service as unstructured prose.
func AnalyzeStyle(inventory []model.WardrobeItem) model.WardrobeAnalysis {
	analysis := model.WardrobeAnalysis{PredominantFit: model.FitMixed}

	seen := make(map[model.Category]bool)
	var joined strings.Builder
	for _, item := range inventory {
		if item.Category.Valid() && !seen[item.Category] {
			seen[item.Category] = true
			analysis.Categories = append(analysis.Categories, item.Category)
		}

		text := strings.ToLower(item.Analysis)
		if item.Category == model.CategoryDress || strings.Contains(text, "dress") {
			analysis.HasDresses = true
		}
		if strings.Contains(text, "skirt") {
			analysis.HasSkirts = true
		}
		if strings.Contains(text, "suit") {
			analysis.HasSuits = true
		}

		joined.WriteString(text)
		joined.WriteString(" ")
	}

	text := joined.String()

	if strings.Contains(text, "formal") || strings.Contains(text, "professional") || analysis.HasSuits {
		analysis.StylePreferences = append(analysis.StylePreferences, "professional")
	}
	if strings.Contains(text, "casual") || strings.Contains(text, "relaxed") {
		analysis.StylePreferences = append(analysis.StylePreferences, "casual")
	}
	if strings.Contains(text, "athletic") || strings.Contains(text, "sport") {
		analysis.StylePreferences = append(analysis.StylePreferences, "athleisure")
	}
	if len(analysis.StylePreferences) == 0 {
		analysis.StylePreferences = []string{"casual"}
	}

	analysis.PredominantFit = predominantFit(text)
	return analysis
}

// predominantFit counts fit vocabulary on each side and only declares a
// winner when it clearly dominates.
func predominantFit(text string) model.Fit {
	tailored := countOccurrences(text, tailoredKeywords)
	relaxed := countOccurrences(text, relaxedKeywords)

	switch {
	case float64(tailored) > fitDominanceRatio*float64(relaxed):
		return model.FitTailored
	case float64(relaxed) > fitDominanceRatio*float64(tailored):
		return model.FitRelaxed
	default:
		return model.FitMixed
	}
}

func countOccurrences(text string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(text, keyword)
	}
	return total
}
