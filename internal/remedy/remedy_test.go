package remedy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ChinaTextile(t *testing.T) {
	result := Resolve("CN", "6110.20.20", "cotton sweatshirt")

	require.True(t, result.RemediesApply)
	require.Len(t, result.Remedies, 1)

	r := result.Remedies[0]
	assert.Equal(t, "Section 301", r.Type)
	assert.InDelta(t, 7.5, r.Rate, 1e-9)
	assert.Equal(t, "List 4A", r.List)
	assert.Equal(t, "9903.88.15", r.HtsProvision)

	assert.Equal(t, "China", result.CountryName)
	assert.False(t, result.FtaEligible)
	assert.Empty(t, result.FreeTradeAgreements)
}

func TestResolve_ChinaNonTextile(t *testing.T) {
	result := Resolve("cn", "8518.30.20", "wireless headphones")

	require.Len(t, result.Remedies, 1)
	r := result.Remedies[0]
	assert.InDelta(t, 25, r.Rate, 1e-9)
	assert.Equal(t, "Lists 1-3", r.List)
	assert.Equal(t, "9903.88.01-03", r.HtsProvision)
	assert.Equal(t, "CN", result.CountryOfOrigin, "code is normalized to upper case")
}

func TestResolve_ChinaSteelStacksRemedies(t *testing.T) {
	result := Resolve("CN", "7210.49.00", "galvanized steel sheet")

	require.Len(t, result.Remedies, 2, "Section 301 and Section 232 accumulate independently")
	assert.Equal(t, "Section 301", result.Remedies[0].Type)
	assert.InDelta(t, 25, result.Remedies[0].Rate, 1e-9)
	assert.Equal(t, "Section 232", result.Remedies[1].Type)
	assert.InDelta(t, 25, result.Remedies[1].Rate, 1e-9)
}

func TestResolve_AluminumFromGermany(t *testing.T) {
	result := Resolve("DE", "7604.21.00", "aluminum profiles")

	require.Len(t, result.Remedies, 1)
	assert.Equal(t, "Section 232", result.Remedies[0].Type)
	assert.InDelta(t, 10, result.Remedies[0].Rate, 1e-9)
}

func TestResolve_SteelHeadingBoundaries(t *testing.T) {
	assert.True(t, Resolve("DE", "7206.10.00", "").RemediesApply)
	assert.True(t, Resolve("DE", "7229.90.10", "").RemediesApply)
	assert.False(t, Resolve("DE", "7205.29.00", "").RemediesApply, "7205 is below the covered range")
	assert.False(t, Resolve("DE", "7230", "").RemediesApply)
	assert.False(t, Resolve("DE", "7602.00.00", "").RemediesApply, "7602 is not a covered aluminum heading")
}

func TestResolve_FtaPartners(t *testing.T) {
	mx := Resolve("MX", "6110.20.20", "cotton sweatshirt")
	assert.False(t, mx.RemediesApply)
	assert.Empty(t, mx.Remedies)
	assert.True(t, mx.FtaEligible)
	assert.Equal(t, []string{"USMCA"}, mx.FreeTradeAgreements)

	kr := Resolve("KR", "8518.30.20", "headphones")
	assert.Equal(t, []string{"KORUS FTA"}, kr.FreeTradeAgreements)

	au := Resolve("AU", "8518.30.20", "headphones")
	assert.Equal(t, []string{"AUSFTA"}, au.FreeTradeAgreements)
}

func TestCountryName_Fallback(t *testing.T) {
	assert.Equal(t, "Vietnam", CountryName("VN"))
	assert.Equal(t, "Vietnam", CountryName("vn"))
	assert.Equal(t, "ZZ", CountryName("ZZ"), "unknown codes fall back to the code")
}

func TestCountries(t *testing.T) {
	countries := Countries()
	require.NotEmpty(t, countries)

	assert.True(t, sort.SliceIsSorted(countries, func(i, j int) bool {
		return countries[i].Code < countries[j].Code
	}))

	byCode := make(map[string]CountryInfo, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}
	assert.True(t, byCode["CA"].FtaEligible)
	assert.Contains(t, byCode["CA"].Agreements, "USMCA")
	assert.False(t, byCode["CN"].FtaEligible)
}
