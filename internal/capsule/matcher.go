package capsule

import (
	"fmt"
	"strings"

	"github.com/threadcount/threadcount/internal/model"
)

// Band caps and classification thresholds. The bands are additive and
// independent, so the maximum achievable score is 100. Thresholds are
// absolute, not relative to other candidates. Treat these as tunable
// constants; changing any of them shifts the exact/similar/missing split.
const (
	categoryBandScore = 40
	itemTypeBandScore = 30
	styleBandScore    = 10

	exactThreshold         = 70
	similarThreshold       = 45
	strongSimilarThreshold = 60
)

// bandScore is the per-band breakdown for one template-item/user-item pair.
type bandScore struct {
	typeKey  string
	category int
	itemType int
	color    int
	style    int
}

func (b bandScore) total() int {
	return b.category + b.itemType + b.color + b.style
}

// MatchTemplate partitions a template's slots into exact, similar, and
// missing against the user's inventory. Manual matches short-circuit scoring
// for their slots and are never re-scored. Each user item fills at most one
// slot; an item that scores below the similar threshold everywhere stays
// available rather than being consumed.
//
// The result is deterministic for a fixed inventory order: ties keep the
// first candidate found.
func MatchTemplate(inventory []model.WardrobeItem, tmpl model.CapsuleTemplate, manualMatches map[string]model.WardrobeItem) model.MatchResult {
	var result model.MatchResult
	used := make(map[string]bool)

	for _, slot := range tmpl.Items {
		if item, ok := manualMatches[slot.ID]; ok {
			result.Exact = append(result.Exact, model.ExactMatch{TemplateItem: slot, UserItem: item})
			used[item.ID] = true
		}
	}

	for _, slot := range tmpl.Items {
		if _, ok := manualMatches[slot.ID]; ok {
			continue
		}

		var best bandScore
		var bestItem model.WardrobeItem
		found := false
		for _, item := range inventory {
			if used[item.ID] {
				continue
			}
			score := scoreCandidate(slot, item)
			if !found || score.total() > best.total() {
				best = score
				bestItem = item
				found = true
			}
		}

		switch {
		case found && best.total() >= exactThreshold:
			result.Exact = append(result.Exact, model.ExactMatch{TemplateItem: slot, UserItem: bestItem})
			used[bestItem.ID] = true
		case found && best.total() >= similarThreshold:
			result.Similar = append(result.Similar, model.SimilarMatch{
				TemplateItem: slot,
				UserItem:     bestItem,
				Reason:       similarReason(slot, best),
			})
			used[bestItem.ID] = true
		default:
			result.Missing = append(result.Missing, slot)
		}
	}

	return result
}

// scoreCandidate scores a single user item against a template slot across
// the four bands.
func scoreCandidate(slot model.TemplateItem, item model.WardrobeItem) bandScore {
	var score bandScore
	itemText := strings.ToLower(item.Analysis + " " + item.Notes)

	// Category band: full credit or nothing. Footwear and accessories share
	// a broader grouping in the catalog.
	if sameCategoryGroup(slot.Category, item.Category) {
		score.category = categoryBandScore
	}

	// Item-type band: identify the slot's garment type from the ordered
	// synonym table, then look for that type's vocabulary in the item text.
	if gt, ok := garmentTypeOf(slot.Description); ok {
		score.typeKey = gt.Key
		for _, syn := range gt.Synonyms {
			if strings.Contains(itemText, syn) {
				score.itemType = itemTypeBandScore
				break
			}
		}
	}

	score.color = scoreColor(slot.Color, item.Color)

	// Style band: any slot style tag (or its keyword expansion) appearing in
	// the item text earns the full band.
styleBand:
	for _, tag := range slot.StyleTags {
		for _, keyword := range expandStyle(tag) {
			if strings.Contains(itemText, keyword) {
				score.style = styleBandScore
				break styleBand
			}
		}
	}

	return score
}

func sameCategoryGroup(a, b model.Category) bool {
	if a == b {
		return true
	}
	return isFootwearOrAccessory(a) && isFootwearOrAccessory(b)
}

func isFootwearOrAccessory(c model.Category) bool {
	return c == model.CategoryShoes || c == model.CategoryAccessory
}

// similarReason renders the human-readable explanation attached to a
// similar match. Strong matches name the garment type and what lined up;
// weaker ones name the gap.
func similarReason(slot model.TemplateItem, score bandScore) string {
	if score.total() >= strongSimilarThreshold {
		subject := score.typeKey
		if subject == "" {
			subject = string(slot.Category)
		}
		var matched string
		switch {
		case score.color >= colorScoreFamily:
			matched = "matching color"
		case score.style > 0:
			matched = "matching style"
		case score.itemType > 0:
			matched = "same kind of piece"
		default:
			matched = "close match"
		}
		return fmt.Sprintf("Similar %s, %s", subject, matched)
	}

	var gap string
	switch {
	case score.category == 0:
		gap = "different category"
	case score.itemType == 0:
		gap = "different garment type"
	case score.color == 0:
		gap = "different color"
	default:
		gap = "different details"
	}
	return "Similar item, but " + gap
}
