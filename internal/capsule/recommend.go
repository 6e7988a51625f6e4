package capsule

import (
	"sort"
	"strings"

	"github.com/threadcount/threadcount/internal/model"
)

// Recommendation ranks one template against the user's wardrobe.
type Recommendation struct {
	Template        model.CapsuleTemplate
	Score           float64
	MatchPercentage int
}

// Recommendation score weights. Category overlap dominates, then style
// overlap, then composition fit, with completion as a light tiebreaker.
const (
	categoryOverlapWeight = 40.0
	styleOverlapWeight    = 30.0
	compositionBonusFull  = 20.0
	compositionBonusMixed = 15.0
	completionWeight      = 0.1
)

// Recommend ranks every catalog template against the inventory, descending
// by score. An empty inventory returns all templates unscored in catalog
// order; matching an empty wardrobe would only produce meaningless
// all-missing results.
func Recommend(inventory []model.WardrobeItem, templates []model.CapsuleTemplate) []Recommendation {
	recommendations := make([]Recommendation, 0, len(templates))

	if len(inventory) == 0 {
		for _, tmpl := range templates {
			recommendations = append(recommendations, Recommendation{Template: tmpl})
		}
		return recommendations
	}

	// One analysis shared across all templates.
	analysis := AnalyzeStyle(inventory)

	for _, tmpl := range templates {
		score := categoryOverlapWeight * categoryOverlap(analysis, tmpl)
		score += styleOverlapWeight * styleOverlap(analysis, tmpl)
		score += compositionBonus(analysis, tmpl)

		matchPct := CompletionPercentage(MatchTemplate(inventory, tmpl, nil), tmpl)
		score += completionWeight * float64(matchPct)

		recommendations = append(recommendations, Recommendation{
			Template:        tmpl,
			Score:           score,
			MatchPercentage: matchPct,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	return recommendations
}

// categoryOverlap is the fraction of the template's categories the user
// already wears.
func categoryOverlap(analysis model.WardrobeAnalysis, tmpl model.CapsuleTemplate) float64 {
	if len(tmpl.Categories) == 0 {
		return 0
	}
	overlap := 0
	for _, cat := range tmpl.Categories {
		if analysis.HasCategory(cat) {
			overlap++
		}
	}
	return float64(overlap) / float64(len(tmpl.Categories))
}

// styleOverlap is the fraction of the template's style types present in the
// user's inferred style preferences.
func styleOverlap(analysis model.WardrobeAnalysis, tmpl model.CapsuleTemplate) float64 {
	denominator := len(tmpl.StyleTypes)
	if denominator < 1 {
		denominator = 1
	}
	overlap := 0
	for _, styleType := range tmpl.StyleTypes {
		for _, pref := range analysis.StylePreferences {
			if strings.EqualFold(styleType, pref) {
				overlap++
				break
			}
		}
	}
	return float64(overlap) / float64(denominator)
}

// compositionBonus rewards templates whose editorial shape fits how the
// user actually dresses. The conditions are written independently; in
// practice at most one applies to a given template.
func compositionBonus(analysis model.WardrobeAnalysis, tmpl model.CapsuleTemplate) float64 {
	var bonus float64
	if analysis.HasDresses && tmpl.Composition == model.CompositionDressesSkirts {
		bonus += compositionBonusFull
	}
	if !analysis.HasDresses && tmpl.Composition == model.CompositionPantsShirts {
		bonus += compositionBonusFull
	}
	if analysis.HasDresses && analysis.HasSkirts && tmpl.Composition == model.CompositionMixed {
		bonus += compositionBonusMixed
	}
	return bonus
}
