package classify

import "strings"

// maxKeywordStrategies caps the search fan-out per classification request.
const maxKeywordStrategies = 5

// BuildKeywords derives an ordered set of search strategies from a free-text
// product description. Strategies are emitted in priority order: bare product
// nouns first, then material and construction refinements, then generic token
// fallbacks. Deterministic for a given description.
func BuildKeywords(description string) []string {
	tokens := tokenize(description)

	var nouns, modifiers, materials []string
	for _, t := range tokens {
		switch {
		case isPrimaryNoun(t):
			nouns = append(nouns, t)
		case isModifierTerm(t):
			modifiers = append(modifiers, t)
		case isMaterialTerm(t):
			materials = append(materials, t)
		}
	}

	var strategies []string

	// A single authoritative noun retrieves the correct heading far more
	// reliably than the full phrase; refinements come after.
	strategies = append(strategies, nouns...)
	for _, mat := range materials {
		for _, n := range nouns {
			strategies = append(strategies, mat+" "+n)
		}
	}
	for _, mod := range modifiers {
		for _, n := range nouns {
			strategies = append(strategies, mod+" "+n)
		}
	}

	if len(nouns) == 0 && len(materials) > 0 {
		strategies = append(strategies, materials[0])
	}
	if len(strategies) == 0 && len(tokens) > 0 {
		head := tokens
		if len(head) > 3 {
			head = head[:3]
		}
		strategies = append(strategies, strings.Join(head, " "), tokens[0])
	}

	return dedupeStrings(strategies, maxKeywordStrategies)
}

// tokenize lowercases, strips punctuation to spaces, splits on whitespace and
// drops short tokens and stop words.
func tokenize(description string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, strings.ToLower(description))

	var tokens []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func dedupeStrings(in []string, max int) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
