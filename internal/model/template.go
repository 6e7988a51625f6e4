package model

import "fmt"

// Composition classifies the editorial shape of a capsule template. It is
// only used for recommendation scoring.
type Composition string

// Composition constants.
const (
	CompositionPantsShirts   Composition = "pants-shirts"
	CompositionDressesSkirts Composition = "dresses-skirts"
	CompositionMixed         Composition = "mixed"
	CompositionAthleisure    Composition = "athleisure"
)

// ShoppingLink is a retailer offer for a template item.
type ShoppingLink struct {
	Retailer string  `json:"retailer"`
	URL      string  `json:"url"`
	Badge    string  `json:"badge,omitempty"` // e.g. "Best Value"
	Price    float64 `json:"price"`
}

// BadgeBestValue marks the editorially preferred shopping link.
const BadgeBestValue = "Best Value"

// TemplateItem is one garment slot in a capsule template. Catalog data,
// immutable at runtime.
type TemplateItem struct {
	ID            string         `json:"id"`
	Category      Category       `json:"category"`
	Description   string         `json:"description"`
	Color         string         `json:"color"`
	StyleTags     []string       `json:"style_tags,omitempty"`
	ShoppingLinks []ShoppingLink `json:"shopping_links,omitempty"`
	Essential     bool           `json:"essential"`
}

// CapsuleTemplate is an editorially curated list of garment slots designed
// to combine into many outfits.
type CapsuleTemplate struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Composition  Composition    `json:"composition"`
	Items        []TemplateItem `json:"items"`
	Categories   []Category     `json:"categories"`
	StyleTypes   []string       `json:"style_types"`
	Occasions    []string       `json:"occasions,omitempty"`
	Seasons      []string       `json:"seasons,omitempty"`
	ColorPalette []string       `json:"color_palette,omitempty"`
	TotalItems   int            `json:"total_items"`
	TotalOutfits int            `json:"total_outfits"` // Editorial constant, not derived
}

// Validate checks catalog data integrity. TotalItems must agree with the
// actual item list; downstream percentage math silently tolerates a mismatch,
// so it has to be caught at load time.
func (t *CapsuleTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template ID is required")
	}
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if len(t.Items) == 0 {
		return fmt.Errorf("template %q has no items", t.ID)
	}
	if t.TotalItems != len(t.Items) {
		return fmt.Errorf("template %q declares %d items but contains %d", t.ID, t.TotalItems, len(t.Items))
	}
	seen := make(map[string]bool, len(t.Items))
	for _, item := range t.Items {
		if item.ID == "" {
			return fmt.Errorf("template %q contains an item without an ID", t.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("template %q contains duplicate item %q", t.ID, item.ID)
		}
		seen[item.ID] = true
		if !item.Category.Valid() {
			return fmt.Errorf("template item %q has invalid category %q", item.ID, item.Category)
		}
	}
	return nil
}
