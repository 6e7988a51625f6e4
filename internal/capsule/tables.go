package capsule

import "strings"

// garmentType maps a canonical garment-type key to the substrings that
// identify it in free text.
type garmentType struct {
	Key      string
	Synonyms []string
}

// garmentTypes is evaluated in order and the first entry whose synonyms
// match wins, so ordering is significant: more specific entries must come
// before entries whose synonyms are substrings of theirs (oxford before
// dress, blazer before jacket).
var garmentTypes = []garmentType{
	{Key: "oxford", Synonyms: []string{"oxford", "button-down", "button down", "dress shirt"}},
	{Key: "loafer", Synonyms: []string{"loafer", "moccasin", "slip-on"}},
	{Key: "sneaker", Synonyms: []string{"sneaker", "trainer", "tennis shoe"}},
	{Key: "boot", Synonyms: []string{"boot", "chelsea", "chukka"}},
	{Key: "heel", Synonyms: []string{"heel", "pump", "stiletto"}},
	{Key: "sandal", Synonyms: []string{"sandal", "slide", "espadrille"}},
	{Key: "t-shirt", Synonyms: []string{"t-shirt", "t shirt", "tee", "crew neck", "v-neck"}},
	{Key: "polo", Synonyms: []string{"polo"}},
	{Key: "henley", Synonyms: []string{"henley"}},
	{Key: "blouse", Synonyms: []string{"blouse", "camisole", "silk top"}},
	{Key: "blazer", Synonyms: []string{"blazer", "sport coat", "suit jacket"}},
	{Key: "sweater", Synonyms: []string{"sweater", "pullover", "cardigan", "knit", "jumper"}},
	{Key: "hoodie", Synonyms: []string{"hoodie", "sweatshirt"}},
	{Key: "chino", Synonyms: []string{"chino", "khaki pant"}},
	{Key: "jean", Synonyms: []string{"jean", "denim"}},
	{Key: "trouser", Synonyms: []string{"trouser", "dress pant", "slack", "suit pant"}},
	{Key: "legging", Synonyms: []string{"legging", "yoga pant"}},
	{Key: "jogger", Synonyms: []string{"jogger", "sweatpant", "track pant"}},
	{Key: "shorts", Synonyms: []string{"shorts", "bermuda"}},
	{Key: "skirt", Synonyms: []string{"skirt"}},
	{Key: "dress", Synonyms: []string{"dress", "sundress", "shift", "sheath"}},
	{Key: "jacket", Synonyms: []string{"jacket", "coat", "parka", "trench", "windbreaker"}},
	{Key: "belt", Synonyms: []string{"belt"}},
	{Key: "scarf", Synonyms: []string{"scarf", "wrap"}},
	{Key: "bag", Synonyms: []string{"bag", "tote", "backpack", "clutch"}},
	{Key: "watch", Synonyms: []string{"watch"}},
}

// garmentTypeOf identifies the canonical garment type for a description.
// Returns the matching entry and true, or the zero value and false.
func garmentTypeOf(description string) (garmentType, bool) {
	text := strings.ToLower(description)
	for _, gt := range garmentTypes {
		for _, syn := range gt.Synonyms {
			if strings.Contains(text, syn) {
				return gt, true
			}
		}
	}
	return garmentType{}, false
}

// colorFamily groups color spellings that count as the same color.
type colorFamily struct {
	Canonical string
	Members   []string
}

// colorFamilies defines the same-family tier of color matching. The "navv"
// spelling appears in legacy catalog data and is kept for compatibility.
var colorFamilies = []colorFamily{
	{Canonical: "blue", Members: []string{"blue"}},
	{Canonical: "navy", Members: []string{"navy", "navv"}},
	{Canonical: "black", Members: []string{"black"}},
	{Canonical: "white", Members: []string{"white"}},
	{Canonical: "grey", Members: []string{"grey", "gray"}},
	{Canonical: "brown", Members: []string{"brown"}},
	{Canonical: "tan", Members: []string{"tan", "khaki"}},
}

// relatedColors defines the cross-family tier: colors that read as close
// relatives without being the same family.
var relatedColors = [][2]string{
	{"navy", "blue"},
	{"charcoal", "grey"},
}

// canonicalColor resolves a color to its family canonical, or returns the
// color itself when it belongs to no family.
func canonicalColor(color string) string {
	for _, family := range colorFamilies {
		for _, member := range family.Members {
			if color == member {
				return family.Canonical
			}
		}
	}
	return color
}

// Color band scores. Only the highest applicable tier fires.
const (
	colorScoreExact   = 20
	colorScoreFamily  = 15
	colorScoreRelated = 10
)

// scoreColor compares two colors and returns the color-band score.
func scoreColor(templateColor, itemColor string) int {
	a := strings.ToLower(strings.TrimSpace(templateColor))
	b := strings.ToLower(strings.TrimSpace(itemColor))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return colorScoreExact
	}

	ca, cb := canonicalColor(a), canonicalColor(b)
	if ca == cb {
		return colorScoreFamily
	}

	for _, pair := range relatedColors {
		if (ca == pair[0] && cb == pair[1]) || (ca == pair[1] && cb == pair[0]) {
			return colorScoreRelated
		}
	}
	return 0
}

// styleKeywords expands a style tag into the substrings that indicate it in
// free text.
var styleKeywords = map[string][]string{
	"formal":       {"formal", "elegant", "polished", "professional"},
	"casual":       {"casual", "everyday", "relaxed", "weekend"},
	"athletic":     {"athletic", "sport", "active", "performance"},
	"smart-casual": {"smart casual", "smart-casual", "business casual", "versatile"},
}

// expandStyle returns the tag itself plus its keyword expansion.
func expandStyle(tag string) []string {
	tag = strings.ToLower(tag)
	expanded := []string{tag}
	if extra, ok := styleKeywords[tag]; ok {
		expanded = append(expanded, extra...)
	}
	return expanded
}
