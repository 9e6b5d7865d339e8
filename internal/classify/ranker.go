package classify

import (
	"sort"
	"strings"
)

const (
	baselineScore = 50
	maxScore      = 95

	maxAlternatives = 3

	primaryConfidenceMin = 40
	primaryConfidenceMax = 95
	altConfidenceMin     = 10
	altConfidenceMax     = 85
)

// ScoredCandidate is a resolved candidate with its relevance score.
type ScoredCandidate struct {
	Candidate
	Score int `json:"score"`
}

// Rank scores every candidate against the product description and returns
// them sorted by score descending. The sort is stable: equal scores keep
// their input order, so earlier search strategies win ties.
func Rank(candidates []Candidate, description string) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredCandidate{Candidate: c, Score: scoreCandidate(c, description)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scoreCandidate rates a candidate's relevance to the description. Longer
// codes and deeper indents are more specific; shared material and
// product-type vocabulary is strong evidence; residual "other"/"parts"
// entries are disfavored. The score is capped below 100 to reflect the
// heuristic nature of the match.
func scoreCandidate(c Candidate, description string) int {
	desc := strings.ToLower(description)
	htsDesc := strings.ToLower(c.Description)

	score := baselineScore

	digits := 0
	for _, r := range c.HtsCode {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	score += digits * 2
	score += c.Indent * 3

	htsWords := strings.Fields(htsDesc)
	for _, word := range strings.Fields(desc) {
		if len(word) > 3 && anyWordContains(htsWords, word) {
			score += 5
		}
	}

	for _, mat := range scoreMaterials {
		if strings.Contains(desc, mat) && strings.Contains(htsDesc, mat) {
			score += 10
		}
	}
	for _, t := range scoreProductTerms {
		if strings.Contains(desc, t) && strings.Contains(htsDesc, t) {
			score += 15
		}
	}

	if htsDesc == "other" || htsDesc == "parts" {
		score -= 10
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func anyWordContains(words []string, sub string) bool {
	for _, w := range words {
		if strings.Contains(w, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
