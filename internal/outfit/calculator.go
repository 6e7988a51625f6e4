// Package outfit provides the outfit combinatorics calculators.
package outfit

import (
	"sort"

	"github.com/threadcount/threadcount/internal/model"
)

// Counts holds per-category item tallies for a wardrobe snapshot.
type Counts struct {
	Tops        int
	Bottoms     int
	Shoes       int
	Dresses     int
	Outerwear   int
	Accessories int
}

// Tally counts items by category.
func Tally(items []model.WardrobeItem) Counts {
	var c Counts
	for _, item := range items {
		switch item.Category {
		case model.CategoryTop:
			c.Tops++
		case model.CategoryBottom:
			c.Bottoms++
		case model.CategoryShoes:
			c.Shoes++
		case model.CategoryDress:
			c.Dresses++
		case model.CategoryOuterwear:
			c.Outerwear++
		case model.CategoryAccessory:
			c.Accessories++
		}
	}
	return c
}

// Count returns the number of distinct outfit combinations for a wardrobe.
// Base outfits are top+bottom+shoes sets plus dress+shoes sets. Each piece
// of outerwear layers over every base outfit, which assumes independence
// rather than enumerating true combinations. Accessories never contribute
// to the count.
func Count(items []model.WardrobeItem) int {
	return countFrom(Tally(items))
}

func countFrom(c Counts) int {
	base := c.Tops*c.Bottoms*c.Shoes + c.Dresses*c.Shoes
	if c.Outerwear > 0 {
		return base + base*c.Outerwear
	}
	return base
}

// Suggestion ranks one candidate item by the outfits it would unlock.
type Suggestion struct {
	Item           model.WardrobeItem
	OutfitIncrease int
	NewTotal       int
}

// SuggestNext evaluates every candidate not already selected and returns the
// topN candidates by marginal outfit increase, descending. Ties keep the
// candidate pool's original order.
func SuggestNext(selected, pool []model.WardrobeItem, topN int) []Suggestion {
	if topN <= 0 {
		topN = 5
	}

	current := Count(selected)
	chosen := make(map[string]bool, len(selected))
	for _, item := range selected {
		chosen[item.ID] = true
	}

	suggestions := make([]Suggestion, 0, len(pool))
	for _, candidate := range pool {
		if chosen[candidate.ID] {
			continue
		}
		withCandidate := append(append([]model.WardrobeItem{}, selected...), candidate)
		total := Count(withCandidate)
		suggestions = append(suggestions, Suggestion{
			Item:           candidate,
			OutfitIncrease: total - current,
			NewTotal:       total,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].OutfitIncrease > suggestions[j].OutfitIncrease
	})

	if len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

// Potential returns the marginal number of complete outfits unlocked by
// acquiring one more item of the given category. The per-category formulas
// are intentionally asymmetric from Count: shoes unlock dress outfits too,
// and outerwear or accessories add onto every existing complete outfit
// rather than changing the base count.
func Potential(category model.Category, c Counts) int {
	switch category {
	case model.CategoryTop:
		return c.Bottoms * c.Shoes
	case model.CategoryBottom:
		return c.Tops * c.Shoes
	case model.CategoryShoes:
		return c.Tops*c.Bottoms + c.Dresses
	case model.CategoryDress:
		return c.Shoes
	case model.CategoryOuterwear, model.CategoryAccessory:
		return c.Tops*c.Bottoms*c.Shoes + c.Dresses*c.Shoes
	}
	return 0
}

// PotentialForInventory is a convenience wrapper that tallies the inventory
// before computing the marginal formula.
func PotentialForInventory(category model.Category, items []model.WardrobeItem) int {
	return Potential(category, Tally(items))
}
