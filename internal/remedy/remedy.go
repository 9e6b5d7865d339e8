package remedy

import (
	"sort"
	"strings"
)

// Remedy is one applicable trade-remedy program for a country/code pair.
type Remedy struct {
	Type         string  `json:"type"`
	Rate         float64 `json:"rate"`
	List         string  `json:"list,omitempty"`
	HtsProvision string  `json:"htsProvision,omitempty"`
	Authority    string  `json:"authority"`
	Note         string  `json:"note,omitempty"`
}

// Result holds every remedy and FTA applicable to a classification.
type Result struct {
	CountryOfOrigin     string   `json:"countryOfOrigin"`
	CountryName         string   `json:"countryName"`
	HtsCode             string   `json:"htsCode"`
	ProductDescription  string   `json:"productDescription"`
	RemediesApply       bool     `json:"remediesApply"`
	Remedies            []Remedy `json:"remedies"`
	FreeTradeAgreements []string `json:"freeTradeAgreements"`
	FtaEligible         bool     `json:"ftaEligible"`
}

// Resolve determines the additional duties and FTA eligibility for a product
// by deterministic table lookup. Every independent check that matches is
// included; the two Section 301 branches are mutually exclusive with each
// other but independent of the Section 232 checks. FTA eligibility is
// reported as-is and does not zero out the general rate.
func Resolve(countryOfOrigin, htsCode, productDescription string) Result {
	country := strings.ToUpper(strings.TrimSpace(countryOfOrigin))
	remedies := []Remedy{}

	if country == section301Country {
		chapter := ""
		if len(htsCode) >= 2 {
			chapter = htsCode[:2]
		}
		if section301TextileChapters[chapter] {
			remedies = append(remedies, Remedy{
				Type:         "Section 301",
				Rate:         section301TextileRate,
				List:         "List 4A",
				HtsProvision: "9903.88.15",
				Authority:    "USTR",
				Note:         "Additional 7.5% ad valorem duty on List 4A Chinese imports",
			})
		} else {
			remedies = append(remedies, Remedy{
				Type:         "Section 301",
				Rate:         section301DefaultRate,
				List:         "Lists 1-3",
				HtsProvision: "9903.88.01-03",
				Authority:    "USTR",
				Note:         "Additional 25% ad valorem duty on Chinese imports",
			})
		}
	}

	if matchesHeading(htsCode, section232SteelHeadings) {
		remedies = append(remedies, Remedy{
			Type:      "Section 232",
			Rate:      section232SteelRate,
			Authority: "DOC/BIS",
			Note:      "25% tariff on steel imports for national security",
		})
	}
	if matchesHeading(htsCode, section232AluminumHeadings) {
		remedies = append(remedies, Remedy{
			Type:      "Section 232",
			Rate:      section232AluminumRate,
			Authority: "DOC/BIS",
			Note:      "10% tariff on aluminum imports for national security",
		})
	}

	ftas := []string{}
	for _, fta := range ftaAgreements {
		for _, partner := range fta.Partners {
			if partner == country {
				ftas = append(ftas, fta.Name)
				break
			}
		}
	}

	return Result{
		CountryOfOrigin:     country,
		CountryName:         CountryName(country),
		HtsCode:             htsCode,
		ProductDescription:  productDescription,
		RemediesApply:       len(remedies) > 0,
		Remedies:            remedies,
		FreeTradeAgreements: ftas,
		FtaEligible:         len(ftas) > 0,
	}
}

// CountryName returns the display name for a country code, falling back to
// the code itself.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

func matchesHeading(htsCode string, headings []string) bool {
	for _, h := range headings {
		if strings.HasPrefix(htsCode, h) {
			return true
		}
	}
	return false
}

// CountryInfo describes one known country for API listings.
type CountryInfo struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	FtaEligible bool     `json:"ftaEligible"`
	Agreements  []string `json:"agreements,omitempty"`
}

// Countries returns all known countries sorted by code.
func Countries() []CountryInfo {
	out := make([]CountryInfo, 0, len(countryNames))
	for code, name := range countryNames {
		info := CountryInfo{Code: code, Name: name}
		for _, fta := range ftaAgreements {
			for _, partner := range fta.Partners {
				if partner == code {
					info.Agreements = append(info.Agreements, fta.Name)
				}
			}
		}
		info.FtaEligible = len(info.Agreements) > 0
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
