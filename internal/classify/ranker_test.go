package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidate_RewardsSpecificity(t *testing.T) {
	description := "cotton sweatshirt"

	broad := Candidate{HtsCode: "6110", Description: "Sweaters and similar articles", Indent: 0}
	narrow := Candidate{HtsCode: "6110.20.20.69", Description: "Sweaters and similar articles", Indent: 3}

	assert.Greater(t, scoreCandidate(narrow, description), scoreCandidate(broad, description),
		"longer codes and deeper indents score higher")
}

func TestScoreCandidate_MonotonicOnProductTypeMatch(t *testing.T) {
	description := "knitted cotton pullover"

	base := Candidate{HtsCode: "6110.20.20", Description: "Garments of heading 6110", Indent: 2}
	withMatch := base
	withMatch.Description = base.Description + " pullover"

	assert.GreaterOrEqual(t, scoreCandidate(withMatch, description), scoreCandidate(base, description),
		"adding a matching product-type word never decreases the score")
}

func TestScoreCandidate_CappedAt95(t *testing.T) {
	description := "knitted woven cotton wool silk leather sweater sweatshirt pullover shirt"
	candidate := Candidate{
		HtsCode:     "6110.20.20.69",
		Description: "knitted woven cotton wool silk leather sweater sweatshirt pullover shirt",
		Indent:      9,
	}

	assert.Equal(t, maxScore, scoreCandidate(candidate, description))
}

func TestScoreCandidate_PenalizesResidualEntries(t *testing.T) {
	description := "aluminum widget"

	other := Candidate{HtsCode: "7616.99", Description: "Other", Indent: 2}
	named := Candidate{HtsCode: "7616.10", Description: "Nails, tacks and staples", Indent: 2}

	assert.Less(t, scoreCandidate(other, description), scoreCandidate(named, description))
}

func TestRank_SortsDescending(t *testing.T) {
	candidates := []Candidate{
		{HtsCode: "6110", Description: "Sweaters", Indent: 0},
		{HtsCode: "6110.20.20", Description: "Sweatshirts of cotton", Indent: 2},
		{HtsCode: "6110.20", Description: "Of cotton", Indent: 1},
	}

	ranked := Rank(candidates, "cotton sweatshirt")
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, "6110.20.20", ranked[0].HtsCode)
}

func TestRank_StableOnTies(t *testing.T) {
	// Identical candidates except for the code digits produce identical
	// scores; input order must be preserved.
	candidates := []Candidate{
		{HtsCode: "1111.11", Description: "widgets", Indent: 1},
		{HtsCode: "2222.22", Description: "widgets", Indent: 1},
		{HtsCode: "3333.33", Description: "widgets", Indent: 1},
	}

	ranked := Rank(candidates, "unrelated thing")
	require.Len(t, ranked, 3)
	require.Equal(t, ranked[0].Score, ranked[1].Score)
	require.Equal(t, ranked[1].Score, ranked[2].Score)

	assert.Equal(t, "1111.11", ranked[0].HtsCode)
	assert.Equal(t, "2222.22", ranked[1].HtsCode)
	assert.Equal(t, "3333.33", ranked[2].HtsCode)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 40, clamp(12, 40, 95))
	assert.Equal(t, 95, clamp(140, 40, 95))
	assert.Equal(t, 60, clamp(60, 40, 95))
}
