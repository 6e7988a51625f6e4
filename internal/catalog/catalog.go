// Package catalog holds the static capsule-template catalog. Templates are
// editorial reference data: read-only at runtime, versioned with the binary,
// optionally overridden by a JSON catalog file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/threadcount/threadcount/internal/model"
)

// builtinTemplates is the catalog shipped with the binary. Total outfit
// counts are editorial constants, not derived from the matcher.
var builtinTemplates = []model.CapsuleTemplate{
	{
		ID:           "minimalist-essentials",
		Name:         "Minimalist Essentials",
		Description:  "A neutral, season-proof core that mixes into dozens of outfits.",
		Composition:  model.CompositionPantsShirts,
		Categories:   []model.Category{model.CategoryTop, model.CategoryBottom, model.CategoryShoes, model.CategoryAccessory},
		StyleTypes:   []string{"casual", "smart-casual"},
		Occasions:    []string{"everyday", "office-casual", "travel"},
		Seasons:      []string{"spring", "summer", "fall", "winter"},
		ColorPalette: []string{"black", "white", "grey", "navy"},
		TotalItems:   8,
		TotalOutfits: 24,
		Items: []model.TemplateItem{
			{
				ID:          "black-tee",
				Category:    model.CategoryTop,
				Description: "Black crew neck t-shirt",
				Color:       "black",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Uniqlo", Price: 15, URL: "https://www.uniqlo.com/supima-cotton-crew-black", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "white-tee",
				Category:    model.CategoryTop,
				Description: "White crew neck t-shirt",
				Color:       "white",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Everlane", Price: 30, URL: "https://www.everlane.com/products/organic-cotton-crew"},
					{Retailer: "Uniqlo", Price: 15, URL: "https://www.uniqlo.com/supima-cotton-crew", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "white-oxford",
				Category:    model.CategoryTop,
				Description: "White oxford button-down shirt",
				Color:       "white",
				StyleTags:   []string{"smart-casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "J.Crew", Price: 79, URL: "https://www.jcrew.com/broken-in-oxford"},
					{Retailer: "Uniqlo", Price: 40, URL: "https://www.uniqlo.com/oxford-slim-fit", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "grey-sweater",
				Category:    model.CategoryTop,
				Description: "Grey merino crewneck sweater",
				Color:       "grey",
				StyleTags:   []string{"smart-casual"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Everlane", Price: 85, URL: "https://www.everlane.com/merino-crew"},
				},
			},
			{
				ID:          "black-jeans",
				Category:    model.CategoryBottom,
				Description: "Black slim jeans",
				Color:       "black",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Levi's", Price: 98, URL: "https://www.levi.com/511-slim-black"},
					{Retailer: "Uniqlo", Price: 50, URL: "https://www.uniqlo.com/slim-fit-jeans-black", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "navy-chinos",
				Category:    model.CategoryBottom,
				Description: "Navy slim chinos",
				Color:       "navy",
				StyleTags:   []string{"smart-casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Bonobos", Price: 99, URL: "https://bonobos.com/stretch-washed-chinos"},
					{Retailer: "Dockers", Price: 58, URL: "https://www.dockers.com/slim-chinos", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "white-sneakers",
				Category:    model.CategoryShoes,
				Description: "White leather sneakers",
				Color:       "white",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Adidas", Price: 100, URL: "https://www.adidas.com/stan-smith"},
					{Retailer: "Keds", Price: 60, URL: "https://www.keds.com/leather-court", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "brown-belt",
				Category:    model.CategoryAccessory,
				Description: "Brown leather belt",
				Color:       "brown",
				StyleTags:   []string{"smart-casual"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Timberland", Price: 35, URL: "https://www.timberland.com/classic-leather-belt"},
				},
			},
		},
	},
	{
		ID:           "workweek-professional",
		Name:         "Workweek Professional",
		Description:  "Dress-forward pieces that carry a full office week.",
		Composition:  model.CompositionDressesSkirts,
		Categories:   []model.Category{model.CategoryTop, model.CategoryBottom, model.CategoryDress, model.CategoryShoes, model.CategoryOuterwear, model.CategoryAccessory},
		StyleTypes:   []string{"professional", "formal"},
		Occasions:    []string{"office", "client-meetings", "evening"},
		Seasons:      []string{"spring", "fall", "winter"},
		ColorPalette: []string{"black", "navy", "grey", "white"},
		TotalItems:   7,
		TotalOutfits: 15,
		Items: []model.TemplateItem{
			{
				ID:          "black-sheath-dress",
				Category:    model.CategoryDress,
				Description: "Black sheath dress",
				Color:       "black",
				StyleTags:   []string{"formal"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Banana Republic", Price: 130, URL: "https://bananarepublic.gap.com/sheath-dress"},
					{Retailer: "Quince", Price: 70, URL: "https://www.quince.com/ponte-sheath", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "navy-midi-skirt",
				Category:    model.CategoryBottom,
				Description: "Navy pleated midi skirt",
				Color:       "navy",
				StyleTags:   []string{"professional"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "& Other Stories", Price: 89, URL: "https://www.stories.com/pleated-midi"},
				},
			},
			{
				ID:          "white-silk-blouse",
				Category:    model.CategoryTop,
				Description: "White silk blouse",
				Color:       "white",
				StyleTags:   []string{"formal"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Equipment", Price: 230, URL: "https://www.equipmentfr.com/signature-blouse"},
					{Retailer: "Quince", Price: 80, URL: "https://www.quince.com/washable-silk-blouse", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "grey-trousers",
				Category:    model.CategoryBottom,
				Description: "Grey tailored trousers",
				Color:       "grey",
				StyleTags:   []string{"professional"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Aritzia", Price: 128, URL: "https://www.aritzia.com/effortless-pant"},
				},
			},
			{
				ID:          "black-blazer",
				Category:    model.CategoryOuterwear,
				Description: "Black single-breasted blazer",
				Color:       "black",
				StyleTags:   []string{"formal"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "J.Crew", Price: 198, URL: "https://www.jcrew.com/parke-blazer"},
					{Retailer: "Mango", Price: 100, URL: "https://shop.mango.com/structured-blazer", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "black-heels",
				Category:    model.CategoryShoes,
				Description: "Black block heel pumps",
				Color:       "black",
				StyleTags:   []string{"formal"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Cole Haan", Price: 150, URL: "https://www.colehaan.com/go-to-block-heel"},
					{Retailer: "Naturalizer", Price: 89, URL: "https://www.naturalizer.com/karina-pump", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "structured-tote",
				Category:    model.CategoryAccessory,
				Description: "Structured leather tote bag",
				Color:       "tan",
				StyleTags:   []string{"professional"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Madewell", Price: 168, URL: "https://www.madewell.com/transport-tote"},
				},
			},
		},
	},
	{
		ID:           "weekend-athleisure",
		Name:         "Weekend Athleisure",
		Description:  "Performance pieces that move from the gym to the coffee run.",
		Composition:  model.CompositionAthleisure,
		Categories:   []model.Category{model.CategoryTop, model.CategoryBottom, model.CategoryShoes, model.CategoryOuterwear},
		StyleTypes:   []string{"athleisure", "casual"},
		Occasions:    []string{"gym", "errands", "travel"},
		Seasons:      []string{"spring", "summer", "fall"},
		ColorPalette: []string{"black", "grey", "white"},
		TotalItems:   6,
		TotalOutfits: 12,
		Items: []model.TemplateItem{
			{
				ID:          "black-leggings",
				Category:    model.CategoryBottom,
				Description: "Black high-rise leggings",
				Color:       "black",
				StyleTags:   []string{"athletic"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Lululemon", Price: 98, URL: "https://shop.lululemon.com/align-pant"},
					{Retailer: "Old Navy", Price: 35, URL: "https://oldnavy.gap.com/powersoft-leggings", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "grey-joggers",
				Category:    model.CategoryBottom,
				Description: "Grey tapered joggers",
				Color:       "grey",
				StyleTags:   []string{"athletic", "casual"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Vuori", Price: 94, URL: "https://vuoriclothing.com/sunday-performance-jogger"},
				},
			},
			{
				ID:          "white-performance-tee",
				Category:    model.CategoryTop,
				Description: "White performance t-shirt",
				Color:       "white",
				StyleTags:   []string{"athletic"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Nike", Price: 35, URL: "https://www.nike.com/dri-fit-tee", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "black-hoodie",
				Category:    model.CategoryTop,
				Description: "Black fleece hoodie",
				Color:       "black",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Champion", Price: 45, URL: "https://www.champion.com/reverse-weave-hoodie"},
				},
			},
			{
				ID:          "running-sneakers",
				Category:    model.CategoryShoes,
				Description: "Neutral running sneakers",
				Color:       "white",
				StyleTags:   []string{"athletic"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Brooks", Price: 140, URL: "https://www.brooksrunning.com/ghost"},
					{Retailer: "ASICS", Price: 90, URL: "https://www.asics.com/gel-contend", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "black-windbreaker",
				Category:    model.CategoryOuterwear,
				Description: "Black packable windbreaker",
				Color:       "black",
				StyleTags:   []string{"athletic"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Patagonia", Price: 119, URL: "https://www.patagonia.com/houdini-jacket"},
				},
			},
		},
	},
	{
		ID:           "four-season-mix",
		Name:         "Four Season Mix",
		Description:  "A balanced capsule that alternates dresses, skirts, and denim.",
		Composition:  model.CompositionMixed,
		Categories:   []model.Category{model.CategoryTop, model.CategoryBottom, model.CategoryDress, model.CategoryShoes, model.CategoryOuterwear},
		StyleTypes:   []string{"casual", "professional"},
		Occasions:    []string{"everyday", "office-casual", "weekend"},
		Seasons:      []string{"spring", "summer", "fall", "winter"},
		ColorPalette: []string{"navy", "white", "tan", "black"},
		TotalItems:   7,
		TotalOutfits: 18,
		Items: []model.TemplateItem{
			{
				ID:          "navy-wrap-dress",
				Category:    model.CategoryDress,
				Description: "Navy jersey wrap dress",
				Color:       "navy",
				StyleTags:   []string{"smart-casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Boden", Price: 120, URL: "https://www.bodenusa.com/jersey-wrap-dress"},
					{Retailer: "Amazon Essentials", Price: 40, URL: "https://www.amazon.com/essentials-wrap-dress", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "tan-skirt",
				Category:    model.CategoryBottom,
				Description: "Tan a-line skirt",
				Color:       "tan",
				StyleTags:   []string{"casual"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Sezane", Price: 110, URL: "https://www.sezane.com/a-line-skirt"},
				},
			},
			{
				ID:          "blue-jeans",
				Category:    model.CategoryBottom,
				Description: "Medium-wash straight jeans",
				Color:       "blue",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Levi's", Price: 98, URL: "https://www.levi.com/ribcage-straight"},
					{Retailer: "Madewell", Price: 80, URL: "https://www.madewell.com/perfect-vintage-jean", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "white-button-down",
				Category:    model.CategoryTop,
				Description: "White cotton button-down",
				Color:       "white",
				StyleTags:   []string{"smart-casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Gap", Price: 60, URL: "https://www.gap.com/classic-oxford", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "striped-tee",
				Category:    model.CategoryTop,
				Description: "Navy striped t-shirt",
				Color:       "navy",
				StyleTags:   []string{"casual"},
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Saint James", Price: 95, URL: "https://www.saint-james.com/breton-stripe"},
				},
			},
			{
				ID:          "ankle-boots",
				Category:    model.CategoryShoes,
				Description: "Brown leather ankle boots",
				Color:       "brown",
				StyleTags:   []string{"casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Blundstone", Price: 200, URL: "https://www.blundstone.com/chelsea-boot"},
					{Retailer: "Thursday Boots", Price: 149, URL: "https://thursdayboots.com/duchess", Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "trench-coat",
				Category:    model.CategoryOuterwear,
				Description: "Classic tan trench coat",
				Color:       "tan",
				StyleTags:   []string{"smart-casual"},
				Essential:   true,
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "London Fog", Price: 180, URL: "https://www.londonfog.com/heritage-trench"},
				},
			},
		},
	},
}

// Builtin returns a copy of the built-in template catalog.
func Builtin() []model.CapsuleTemplate {
	templates := make([]model.CapsuleTemplate, len(builtinTemplates))
	copy(templates, builtinTemplates)
	return templates
}

// Load returns the template catalog. When path is empty the built-in
// catalog is returned; otherwise the JSON catalog file at path replaces it.
// Every template is validated before use so that editorial data errors
// surface at load time instead of corrupting percentage math downstream.
func Load(path string) ([]model.CapsuleTemplate, error) {
	templates := Builtin()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-supplied catalog path
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		templates = nil
		if err := json.Unmarshal(data, &templates); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
	}

	for i := range templates {
		if err := templates[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog data: %w", err)
		}
	}
	return templates, nil
}

// ByID finds a template in the given catalog.
func ByID(templates []model.CapsuleTemplate, id string) (model.CapsuleTemplate, error) {
	for _, tmpl := range templates {
		if tmpl.ID == id {
			return tmpl, nil
		}
	}
	return model.CapsuleTemplate{}, fmt.Errorf("unknown template: %q", id)
}
