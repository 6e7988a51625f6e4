package capsule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/catalog"
	"github.com/threadcount/threadcount/internal/model"
)

func TestRecommendEmptyInventory(t *testing.T) {
	templates := catalog.Builtin()

	recommendations := Recommend(nil, templates)

	require.Len(t, recommendations, len(templates))
	for i, rec := range recommendations {
		assert.Equal(t, templates[i].ID, rec.Template.ID, "catalog order preserved")
		assert.Zero(t, rec.Score)
		assert.Zero(t, rec.MatchPercentage)
	}
}

func TestRecommendDescendingScores(t *testing.T) {
	inventory := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "casual white tee", Color: "white"},
		{ID: "2", Category: model.CategoryBottom, Analysis: "dark jeans", Color: "black"},
		{ID: "3", Category: model.CategoryShoes, Analysis: "white sneakers", Color: "white"},
	}

	recommendations := Recommend(inventory, catalog.Builtin())

	require.Len(t, recommendations, len(catalog.Builtin()))
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].Score, recommendations[i].Score)
	}

	// A pants-and-tops casual wardrobe with no dresses should put the
	// pants-shirts capsule first: full category overlap is impossible for
	// the dress-heavy templates and the composition bonus applies.
	assert.Equal(t, "minimalist-essentials", recommendations[0].Template.ID)
}

func TestRecommendCompositionBonus(t *testing.T) {
	pantsTemplate := model.CapsuleTemplate{
		ID: "pants", Name: "pants", TotalItems: 1, Composition: model.CompositionPantsShirts,
		Categories: []model.Category{model.CategoryTop},
		StyleTypes: []string{"casual"},
		Items:      []model.TemplateItem{{ID: "s", Category: model.CategoryTop, Description: "White crew neck t-shirt", Color: "white"}},
	}
	dressTemplate := pantsTemplate
	dressTemplate.ID = "dresses"
	dressTemplate.Composition = model.CompositionDressesSkirts

	noDresses := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "casual white tee", Color: "white"},
	}
	withDresses := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "casual white tee", Color: "white"},
		{ID: "2", Category: model.CategoryDress, Analysis: "navy wrap dress", Color: "navy"},
	}

	recs := Recommend(noDresses, []model.CapsuleTemplate{pantsTemplate, dressTemplate})
	assert.Equal(t, "pants", recs[0].Template.ID)
	assert.Equal(t, compositionBonusFull, recs[0].Score-recs[1].Score, "only the composition bonus separates them")

	recs = Recommend(withDresses, []model.CapsuleTemplate{pantsTemplate, dressTemplate})
	assert.Equal(t, "dresses", recs[0].Template.ID)
}

func TestRecommendMixedCompositionBonus(t *testing.T) {
	mixed := model.CapsuleTemplate{
		ID: "mixed", Name: "mixed", TotalItems: 1, Composition: model.CompositionMixed,
		Categories: []model.Category{model.CategoryDress},
		StyleTypes: []string{"casual"},
		Items:      []model.TemplateItem{{ID: "s", Category: model.CategoryDress, Description: "Navy wrap dress", Color: "navy"}},
	}

	dressAndSkirt := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryDress, Analysis: "casual navy wrap dress", Color: "navy"},
		{ID: "2", Category: model.CategoryBottom, Analysis: "pleated skirt", Color: "tan"},
	}
	dressOnly := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryDress, Analysis: "casual navy wrap dress", Color: "navy"},
	}

	withBonus := Recommend(dressAndSkirt, []model.CapsuleTemplate{mixed})[0].Score
	withoutBonus := Recommend(dressOnly, []model.CapsuleTemplate{mixed})[0].Score
	assert.Equal(t, compositionBonusMixed, withBonus-withoutBonus)
}

func TestRecommendMatchPercentageFeedsScore(t *testing.T) {
	tmpl := model.CapsuleTemplate{
		ID: "t", Name: "t", TotalItems: 2, Composition: model.CompositionPantsShirts,
		Categories: []model.Category{model.CategoryTop},
		StyleTypes: []string{"casual"},
		Items: []model.TemplateItem{
			{ID: "s1", Category: model.CategoryTop, Description: "White crew neck t-shirt", Color: "white"},
			{ID: "s2", Category: model.CategoryTop, Description: "Black crew neck t-shirt", Color: "black"},
		},
	}

	half := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "casual white crew neck tee", Color: "white"},
	}
	full := []model.WardrobeItem{
		{ID: "1", Category: model.CategoryTop, Analysis: "casual white crew neck tee", Color: "white"},
		{ID: "2", Category: model.CategoryTop, Analysis: "casual black crew neck tee", Color: "black"},
	}

	halfRec := Recommend(half, []model.CapsuleTemplate{tmpl})[0]
	fullRec := Recommend(full, []model.CapsuleTemplate{tmpl})[0]

	assert.Equal(t, 50, halfRec.MatchPercentage)
	assert.Equal(t, 100, fullRec.MatchPercentage)
	assert.Greater(t, fullRec.Score, halfRec.Score)
}
