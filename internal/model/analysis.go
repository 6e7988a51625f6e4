package model

// Fit describes the predominant cut of a wardrobe.
type Fit string

// Fit constants.
const (
	FitTailored Fit = "tailored"
	FitRelaxed  Fit = "relaxed"
	FitMixed    Fit = "mixed"
)

// WardrobeAnalysis summarizes a wardrobe snapshot for recommendation
// scoring. Derived data, recomputed from the current inventory every time
// it is needed.
type WardrobeAnalysis struct {
	PredominantFit   Fit
	Categories       []Category
	StylePreferences []string
	HasDresses       bool
	HasSkirts        bool
	HasSuits         bool
}

// HasCategory reports whether the wardrobe contains at least one item of
// the given category.
func (a *WardrobeAnalysis) HasCategory(c Category) bool {
	for _, have := range a.Categories {
		if have == c {
			return true
		}
	}
	return false
}
