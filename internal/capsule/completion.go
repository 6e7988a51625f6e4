package capsule

import (
	"math"

	"github.com/threadcount/threadcount/internal/model"
)

// CompletionPercentage returns how much of a template the user already owns,
// as a rounded percentage of the template's declared item count. The
// declared count is editorial data; catalog validation guarantees it agrees
// with the actual item list, so the math trusts it here.
func CompletionPercentage(match model.MatchResult, tmpl model.CapsuleTemplate) int {
	if tmpl.TotalItems <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(match.MatchedCount()) / float64(tmpl.TotalItems)))
}

// Budget returns the cheapest total cost to fill the missing slots. Each
// slot contributes its "Best Value" link price when one is badged, otherwise
// its cheapest link, otherwise nothing.
func Budget(missing []model.TemplateItem) float64 {
	var total float64
	for _, slot := range missing {
		total += slotPrice(slot)
	}
	return total
}

func slotPrice(slot model.TemplateItem) float64 {
	if len(slot.ShoppingLinks) == 0 {
		return 0
	}

	cheapest := slot.ShoppingLinks[0].Price
	for _, link := range slot.ShoppingLinks {
		if link.Badge == model.BadgeBestValue {
			return link.Price
		}
		if link.Price < cheapest {
			cheapest = link.Price
		}
	}
	return cheapest
}
