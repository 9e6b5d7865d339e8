package classify

// Closed vocabularies driving keyword generation and relevance scoring.
// These are curated snapshots, not exhaustive lists; unknown products fall
// back to the generic token strategies.

// stopWords are filler terms that never help a tariff search: articles,
// sizing and demographic words, and catalog boilerplate.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "are": true, "was": true,
	"used": true, "made": true, "sizes": true, "size": true,
	"adult": true, "men": true, "mens": true, "women": true, "womens": true,
	"boy": true, "boys": true, "girl": true, "girls": true,
	"not": true, "component": true, "another": true, "product": true,
	"printed": true, "screen": true,
}

// primaryNouns map directly onto tariff headings; a bare noun search
// retrieves the right heading far more reliably than a literal phrase.
var primaryNouns = []string{
	"sweatshirt", "sweater", "pullover", "cardigan", "shirt", "blouse",
	"trouser", "trousers", "pants", "jeans", "dress", "skirt", "jacket",
	"coat", "shoe", "shoes", "boot", "boots", "hat", "glove", "gloves",
	"sock", "socks", "scarf", "bag", "backpack", "wallet", "belt",
	"toy", "furniture", "chair", "table", "lamp",
	"earbuds", "headphones", "speaker", "cable", "charger", "phone",
	"laptop", "tablet", "monitor", "keyboard",
}

// modifierTerms describe construction method; they refine a heading but do
// not identify one on their own.
var modifierTerms = []string{
	"hooded", "knitted", "knit", "crocheted", "woven", "quilted",
	"lined", "padded", "embroidered", "waterproof",
}

// materialTerms are fiber/material words recognized in both the input
// description and tariff descriptions.
var materialTerms = []string{
	"cotton", "polyester", "silk", "wool", "cashmere", "linen", "nylon",
	"leather", "rubber", "plastic", "steel", "aluminum", "copper",
	"glass", "ceramic", "wood", "bamboo", "paper",
}

// scoreMaterials and scoreProductTerms are the match vocabularies used by
// the ranker; product terms include construction words because tariff
// descriptions lead with them ("knitted or crocheted").
var scoreMaterials = []string{
	"cotton", "polyester", "silk", "wool", "linen", "nylon",
	"leather", "rubber", "plastic", "steel", "aluminum",
	"glass", "ceramic", "wood",
}

var scoreProductTerms = []string{
	"sweater", "sweatshirt", "pullover", "cardigan", "shirt", "blouse",
	"trouser", "pant", "jean", "dress", "skirt", "jacket", "coat",
	"shoe", "boot", "hat", "glove", "sock", "scarf",
	"knitted", "crocheted", "woven", "hosiery",
}

func isPrimaryNoun(w string) bool  { return containsTerm(primaryNouns, w) }
func isModifierTerm(w string) bool { return containsTerm(modifierTerms, w) }
func isMaterialTerm(w string) bool { return containsTerm(materialTerms, w) }

func containsTerm(terms []string, w string) bool {
	for _, t := range terms {
		if t == w {
			return true
		}
	}
	return false
}
