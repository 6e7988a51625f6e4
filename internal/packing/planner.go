// Package packing builds trip packing lists from the wardrobe and a forecast.
package packing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/threadcount/threadcount/internal/capsule"
	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/outfit"
	"github.com/threadcount/threadcount/internal/weather"
)

// Forecaster is the slice of the weather client the planner needs.
type Forecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64, days int) (*weather.Forecast, error)
}

// Trip describes the journey being packed for.
type Trip struct {
	Destination string
	Latitude    float64
	Longitude   float64
	Days        int
}

// Plan is a packing list with the reasoning behind it.
type Plan struct {
	Trip    Trip
	Weather weather.Summary
	Quotas  map[model.Category]int
	Items   []model.WardrobeItem
	Advice  []string
	Outfits int
}

// Planner selects wardrobe items for a trip.
type Planner struct {
	forecaster Forecaster
	logger     *slog.Logger
}

// NewPlanner creates a packing planner.
func NewPlanner(forecaster Forecaster, logger *slog.Logger) *Planner {
	return &Planner{forecaster: forecaster, logger: logger}
}

// Plan fetches the forecast and assembles a packing list from the inventory.
func (p *Planner) Plan(ctx context.Context, inventory []model.WardrobeItem, trip Trip) (*Plan, error) {
	if trip.Days <= 0 {
		return nil, fmt.Errorf("trip length must be positive, got %d days", trip.Days)
	}
	if len(inventory) == 0 {
		return nil, common.ErrNoItems
	}

	forecastDays := trip.Days
	if forecastDays > 16 {
		forecastDays = 16
	}
	forecast, err := p.forecaster.Forecast(ctx, trip.Latitude, trip.Longitude, forecastDays)
	if err != nil {
		return nil, err
	}
	summary := weather.Summarize(forecast)

	analysis := capsule.AnalyzeStyle(inventory)
	quotas := quotasFor(trip.Days, summary, analysis)

	plan := &Plan{
		Trip:    trip,
		Weather: summary,
		Quotas:  quotas,
	}
	plan.Items = pickItems(inventory, quotas, summary)
	plan.Outfits = outfit.Count(plan.Items)
	plan.Advice = advice(summary, quotas, plan.Items)

	p.logger.Info("built packing plan",
		"destination", trip.Destination,
		"days", trip.Days,
		"condition", summary.Condition,
		"items", len(plan.Items),
		"outfits", plan.Outfits)
	return plan, nil
}

// quotasFor sizes the packing list. Tops rotate fastest, bottoms and shoes
// re-wear, and layers depend on the forecast rather than trip length.
func quotasFor(days int, summary weather.Summary, analysis model.WardrobeAnalysis) map[model.Category]int {
	quotas := map[model.Category]int{
		model.CategoryTop:    (days + 1) / 2,
		model.CategoryBottom: (days + 2) / 3,
		model.CategoryShoes:  1,
	}
	if quotas[model.CategoryTop] < 2 {
		quotas[model.CategoryTop] = 2
	}
	if quotas[model.CategoryBottom] < 1 {
		quotas[model.CategoryBottom] = 1
	}
	if days >= 4 {
		quotas[model.CategoryShoes] = 2
	}

	if analysis.HasDresses && (summary.Condition == weather.ConditionWarm || summary.Condition == weather.ConditionHot) {
		quotas[model.CategoryDress] = 1
	}
	if summary.NeedsWarmLayer() || summary.NeedsRainLayer() {
		quotas[model.CategoryOuterwear] = 1
	}
	if days >= 3 {
		quotas[model.CategoryAccessory] = 1
	}
	return quotas
}

// Outerwear vocabulary used to rank layers against the forecast, so a
// raincoat beats a blazer when rain is coming.
var (
	rainKeywords = []string{"rain", "waterproof", "trench", "windbreaker", "shell"}
	warmKeywords = []string{"wool", "coat", "puffer", "down", "fleece", "parka"}
)

func pickItems(inventory []model.WardrobeItem, quotas map[model.Category]int, summary weather.Summary) []model.WardrobeItem {
	var picked []model.WardrobeItem
	for _, category := range model.AllCategories {
		quota := quotas[category]
		if quota == 0 {
			continue
		}

		candidates := itemsInCategory(inventory, category)
		if category == model.CategoryOuterwear {
			candidates = orderOuterwear(candidates, summary)
		}
		if len(candidates) > quota {
			candidates = candidates[:quota]
		}
		picked = append(picked, candidates...)
	}
	return picked
}

func itemsInCategory(inventory []model.WardrobeItem, category model.Category) []model.WardrobeItem {
	var out []model.WardrobeItem
	for _, item := range inventory {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func orderOuterwear(candidates []model.WardrobeItem, summary weather.Summary) []model.WardrobeItem {
	score := func(item model.WardrobeItem) int {
		text := strings.ToLower(item.Analysis + " " + item.Notes)
		s := 0
		if summary.NeedsRainLayer() && containsAny(text, rainKeywords) {
			s += 2
		}
		if summary.NeedsWarmLayer() && containsAny(text, warmKeywords) {
			s++
		}
		return s
	}

	ordered := append([]model.WardrobeItem{}, candidates...)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && score(ordered[j]) > score(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func advice(summary weather.Summary, quotas map[model.Category]int, picked []model.WardrobeItem) []string {
	var notes []string
	if summary.NeedsRainLayer() {
		notes = append(notes, fmt.Sprintf("Rain expected on %d day(s), pack a waterproof layer.", summary.RainyDays))
	}
	if summary.NeedsWarmLayer() {
		notes = append(notes, "Lows are chilly, bring a warm layer.")
	}

	// Flag categories the wardrobe could not fill.
	counts := outfit.Tally(picked)
	have := map[model.Category]int{
		model.CategoryTop:       counts.Tops,
		model.CategoryBottom:    counts.Bottoms,
		model.CategoryShoes:     counts.Shoes,
		model.CategoryDress:     counts.Dresses,
		model.CategoryOuterwear: counts.Outerwear,
		model.CategoryAccessory: counts.Accessories,
	}
	for _, category := range model.AllCategories {
		if quota := quotas[category]; quota > have[category] {
			notes = append(notes, fmt.Sprintf("Wardrobe is short %d %s item(s) for this trip.", quota-have[category], category))
		}
	}
	return notes
}
