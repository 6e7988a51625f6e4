package capsule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threadcount/threadcount/internal/model"
)

func TestCompletionPercentage(t *testing.T) {
	tmpl := model.CapsuleTemplate{ID: "t", Name: "t", TotalItems: 8}

	tests := []struct {
		name    string
		exact   int
		similar int
		want    int
	}{
		{"nothing matched", 0, 0, 0},
		{"exact only", 4, 0, 50},
		{"exact and similar both count", 3, 2, 63}, // 5/8 = 62.5, rounds up
		{"fully covered", 6, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := model.MatchResult{
				Exact:   make([]model.ExactMatch, tt.exact),
				Similar: make([]model.SimilarMatch, tt.similar),
			}
			assert.Equal(t, tt.want, CompletionPercentage(match, tmpl))
		})
	}
}

func TestCompletionPercentageZeroItems(t *testing.T) {
	match := model.MatchResult{Exact: make([]model.ExactMatch, 1)}
	assert.Zero(t, CompletionPercentage(match, model.CapsuleTemplate{}))
}

func TestBudget(t *testing.T) {
	tests := []struct {
		name    string
		missing []model.TemplateItem
		want    float64
	}{
		{
			name:    "no missing items",
			missing: nil,
			want:    0,
		},
		{
			name: "best value badge wins over cheaper links",
			missing: []model.TemplateItem{
				{
					ID: "a",
					ShoppingLinks: []model.ShoppingLink{
						{Retailer: "Cheap Corner", Price: 10},
						{Retailer: "Solid Basics", Price: 25, Badge: model.BadgeBestValue},
						{Retailer: "Designer House", Price: 120},
					},
				},
			},
			want: 25,
		},
		{
			name: "cheapest link when nothing is badged",
			missing: []model.TemplateItem{
				{
					ID: "a",
					ShoppingLinks: []model.ShoppingLink{
						{Retailer: "Mid", Price: 60},
						{Retailer: "Low", Price: 40},
						{Retailer: "High", Price: 90},
					},
				},
			},
			want: 40,
		},
		{
			name: "item with no links contributes zero",
			missing: []model.TemplateItem{
				{ID: "a"},
				{ID: "b", ShoppingLinks: []model.ShoppingLink{{Retailer: "Only", Price: 30}}},
			},
			want: 30,
		},
		{
			name: "sums across items",
			missing: []model.TemplateItem{
				{ID: "a", ShoppingLinks: []model.ShoppingLink{{Retailer: "X", Price: 15, Badge: model.BadgeBestValue}}},
				{ID: "b", ShoppingLinks: []model.ShoppingLink{{Retailer: "Y", Price: 50}}},
				{ID: "c"},
			},
			want: 65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Budget(tt.missing), 0.001)
		})
	}
}
