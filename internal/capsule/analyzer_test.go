package capsule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threadcount/threadcount/internal/model"
)

func TestAnalyzeStyleCategories(t *testing.T) {
	inventory := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "white tee"},
		{ID: "2", Category: model.CategoryTop, Analysis: "black tee"},
		{ID: "3", Category: model.CategoryShoes, Analysis: "sneakers"},
	}

	analysis := AnalyzeStyle(inventory)

	assert.Equal(t, []model.Category{model.CategoryTop, model.CategoryShoes}, analysis.Categories)
	assert.True(t, analysis.HasCategory(model.CategoryTop))
	assert.False(t, analysis.HasCategory(model.CategoryDress))
}

func TestAnalyzeStyleGarmentPresence(t *testing.T) {
	tests := []struct {
		name       string
		items      []model.WardrobeItem
		hasDresses bool
		hasSkirts  bool
		hasSuits   bool
	}{
		{
			name: "dress by category",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryDress, Analysis: "navy midi"},
			},
			hasDresses: true,
		},
		{
			name: "dress by text only",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "goes well with a dress"},
			},
			hasDresses: true,
		},
		{
			name: "skirt and suit from text",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryBottom, Analysis: "pleated midi skirt"},
				{ID: "2", Category: model.CategoryTop, Analysis: "part of a wool suit"},
			},
			hasSkirts: true,
			hasSuits:  true,
		},
		{
			name: "plain wardrobe",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "grey hoodie"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := AnalyzeStyle(tt.items)
			assert.Equal(t, tt.hasDresses, analysis.HasDresses)
			assert.Equal(t, tt.hasSkirts, analysis.HasSkirts)
			assert.Equal(t, tt.hasSuits, analysis.HasSuits)
		})
	}
}

func TestAnalyzeStylePreferences(t *testing.T) {
	tests := []struct {
		name  string
		items []model.WardrobeItem
		want  []string
	}{
		{
			name: "professional from formal text",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "formal white blouse"},
			},
			want: []string{"professional"},
		},
		{
			name: "professional from suit presence",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "charcoal suit jacket"},
			},
			want: []string{"professional"},
		},
		{
			name: "casual and athleisure together",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "casual weekend tee"},
				{ID: "2", Category: model.CategoryBottom, Analysis: "sport leggings"},
			},
			want: []string{"casual", "athleisure"},
		},
		{
			name: "default casual when nothing matches",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "plain white tee"},
			},
			want: []string{"casual"},
		},
		{
			name:  "empty inventory defaults to casual",
			items: nil,
			want:  []string{"casual"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeStyle(tt.items).StylePreferences)
		})
	}
}

func TestAnalyzeStylePredominantFit(t *testing.T) {
	tests := []struct {
		name  string
		items []model.WardrobeItem
		want  model.Fit
	}{
		{
			name: "clearly tailored",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "tailored fitted structured blazer"},
				{ID: "2", Category: model.CategoryBottom, Analysis: "tailored trousers"},
			},
			want: model.FitTailored,
		},
		{
			name: "clearly relaxed",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "oversized loose hoodie"},
				{ID: "2", Category: model.CategoryBottom, Analysis: "relaxed joggers"},
			},
			want: model.FitRelaxed,
		},
		{
			name: "near-tied counts stay mixed",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "tailored shirt and tailored vest"},
				{ID: "2", Category: model.CategoryBottom, Analysis: "relaxed jeans, loose fit"},
			},
			// 2 tailored vs 2 relaxed: neither side clears the 1.5x band.
			want: model.FitMixed,
		},
		{
			name: "one tailored mention with no relaxed mentions",
			items: []model.WardrobeItem{
				{ID: "1", Category: model.CategoryTop, Analysis: "structured jacket"},
			},
			want: model.FitTailored,
		},
		{
			name:  "no fit vocabulary at all",
			items: []model.WardrobeItem{{ID: "1", Category: model.CategoryTop, Analysis: "blue shirt"}},
			want:  model.FitMixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeStyle(tt.items).PredominantFit)
		})
	}
}

func TestAnalyzeStyleEmptyAnalysisText(t *testing.T) {
	// Items with no vision text degrade to empty strings, never panic.
	inventory := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop},
		{ID: "2", Category: model.CategoryShoes},
	}

	analysis := AnalyzeStyle(inventory)
	assert.Equal(t, []string{"casual"}, analysis.StylePreferences)
	assert.Equal(t, model.FitMixed, analysis.PredominantFit)
	assert.False(t, analysis.HasDresses)
}
