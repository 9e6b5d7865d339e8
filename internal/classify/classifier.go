package classify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/importworks/hts-helpers/internal/calculator"
	"github.com/importworks/hts-helpers/internal/remedy"
	"github.com/importworks/hts-helpers/internal/usitc"
)

// Input validation errors; these fail fast before any network call.
var (
	ErrEmptyDescription = errors.New("product description must not be empty")
	ErrEmptyCountry     = errors.New("country of origin must not be empty")
)

// NoMatchMessage explains an empty classification result to the caller.
const NoMatchMessage = "No matching HTS codes found. Try a more specific product description."

// SpecialTariff is one trade-remedy entry attached to a classification.
type SpecialTariff struct {
	Name         string  `json:"name"`
	Rate         float64 `json:"rate"`
	Authority    string  `json:"authority"`
	HtsProvision string  `json:"htsProvision"`
}

// Alternative is a lower-ranked candidate offered alongside the primary.
type Alternative struct {
	HtsCode     string `json:"htsCode"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
	GeneralRate string `json:"generalRate"`
}

// Classification is the ranked result for a product/country pair.
type Classification struct {
	HtsCode         string          `json:"htsCode"`
	Description     string          `json:"description"`
	Confidence      int             `json:"confidence"`
	GeneralRate     string          `json:"generalRate"`
	GeneralDutyRate float64         `json:"generalDutyRate"`
	SpecialRate     string          `json:"specialRate"`
	OtherRate       string          `json:"otherRate"`
	Units           []string        `json:"units"`
	SpecialTariffs  []SpecialTariff `json:"specialTariffs"`
	Reasoning       []string        `json:"reasoning"`
	Alternatives    []Alternative   `json:"alternatives"`
	CountryOfOrigin string          `json:"countryOfOrigin"`
	CountryName     string          `json:"countryName"`
}

// Result is the full classification response. Classification is nil when
// nothing matched; that is an expected business outcome, not a failure.
type Result struct {
	Classification *Classification `json:"classification"`
	Message        string          `json:"message,omitempty"`
	Keywords       []string        `json:"keywords"`
	TotalResults   int             `json:"totalResults"`
}

// Classifier turns product descriptions into ranked tariff classifications.
// Stateless; a single instance serves concurrent requests.
type Classifier struct {
	searcher usitc.Searcher
}

// NewClassifier creates a classifier over the given tariff searcher.
func NewClassifier(searcher usitc.Searcher) *Classifier {
	return &Classifier{searcher: searcher}
}

// Classify searches the tariff schedule with multiple keyword strategies,
// resolves and ranks the candidates, and attaches trade remedies for the
// country of origin. Individual keyword failures are skipped; only invalid
// input returns an error.
func (c *Classifier) Classify(ctx context.Context, productDescription, countryOfOrigin string) (*Result, error) {
	if strings.TrimSpace(productDescription) == "" {
		return nil, ErrEmptyDescription
	}
	if strings.TrimSpace(countryOfOrigin) == "" {
		return nil, ErrEmptyCountry
	}

	keywords := BuildKeywords(productDescription)

	// Fan out sequentially in priority order; dedupe by code so the first
	// strategy to surface a code keeps its resolved rate data.
	var all []Candidate
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		records, err := c.searcher.Search(ctx, keyword)
		if err != nil {
			log.Printf("tariff search for %q failed, continuing: %v", keyword, err)
			continue
		}
		for _, cand := range ResolveRates(records) {
			if seen[cand.HtsCode] {
				continue
			}
			seen[cand.HtsCode] = true
			all = append(all, cand)
		}
	}

	if len(all) == 0 {
		return &Result{
			Classification: nil,
			Message:        NoMatchMessage,
			Keywords:       keywords,
		}, nil
	}

	ranked := Rank(all, productDescription)
	primary := ranked[0]

	alternatives := []Alternative{}
	for _, alt := range ranked[1:] {
		if len(alternatives) == maxAlternatives {
			break
		}
		alternatives = append(alternatives, Alternative{
			HtsCode:     alt.HtsCode,
			Description: alt.Description,
			Confidence:  clamp(alt.Score, altConfidenceMin, altConfidenceMax),
			GeneralRate: alt.GeneralRate,
		})
	}

	remedies := remedy.Resolve(countryOfOrigin, primary.HtsCode, productDescription)

	specialTariffs := []SpecialTariff{}
	for _, r := range remedies.Remedies {
		name := r.Type
		if r.List != "" {
			name = fmt.Sprintf("%s %s (%s)", r.Type, r.List, r.HtsProvision)
		}
		specialTariffs = append(specialTariffs, SpecialTariff{
			Name:         name,
			Rate:         r.Rate,
			Authority:    r.Authority,
			HtsProvision: r.HtsProvision,
		})
	}
	if primary.Section301Note != "" {
		specialTariffs = append(specialTariffs, SpecialTariff{
			Name:         "Additional Duties (see footnote)",
			Rate:         0,
			Authority:    "CBP",
			HtsProvision: primary.Section301Note,
		})
	}

	return &Result{
		Classification: &Classification{
			HtsCode:         primary.HtsCode,
			Description:     primary.Description,
			Confidence:      clamp(primary.Score, primaryConfidenceMin, primaryConfidenceMax),
			GeneralRate:     primary.GeneralRate,
			GeneralDutyRate: calculator.ParseDutyRate(primary.GeneralRate),
			SpecialRate:     primary.SpecialRate,
			OtherRate:       primary.OtherRate,
			Units:           primary.Units,
			SpecialTariffs:  specialTariffs,
			Reasoning:       buildReasoning(primary, remedies, keywords),
			Alternatives:    alternatives,
			CountryOfOrigin: remedies.CountryOfOrigin,
			CountryName:     remedies.CountryName,
		},
		Keywords:     keywords,
		TotalResults: len(all),
	}, nil
}

// buildReasoning produces the step-by-step explanation shown with a
// classification.
func buildReasoning(primary ScoredCandidate, remedies remedy.Result, keywords []string) []string {
	chapter := primary.HtsCode
	if len(chapter) > 2 {
		chapter = chapter[:2]
	}
	heading := primary.HtsCode
	if len(heading) > 4 {
		heading = heading[:4]
	}

	steps := []string{
		fmt.Sprintf("Analyzed product description and identified key terms: \"%s\"", strings.Join(keywords, "\", \"")),
		"Searched USITC Harmonized Tariff Schedule database (hts.usitc.gov) for matching codes",
		fmt.Sprintf("Matched to Chapter %s, Heading %s: %q", chapter, heading, primary.Description),
		fmt.Sprintf("Selected HTS %s with general duty rate of %s", primary.HtsCode, primary.GeneralRate),
	}

	if primary.SpecialRate != "" {
		steps = append(steps, fmt.Sprintf("Special program rates available: %s", primary.SpecialRate))
	}

	mentioned := false
	for _, r := range remedies.Remedies {
		switch r.Type {
		case "Section 301":
			steps = append(steps, fmt.Sprintf(
				"Country of origin %s triggers Section 301 tariff (%s) at %g%% additional duty",
				remedies.CountryName, r.List, r.Rate))
		case "Section 232":
			steps = append(steps, fmt.Sprintf(
				"Section 232 national security tariff applies at %g%%", r.Rate))
		}
		mentioned = true
	}
	if !mentioned {
		steps = append(steps, fmt.Sprintf(
			"No additional Section 301/232 tariffs apply for %s", remedies.CountryName))
	}

	if remedies.FtaEligible {
		steps = append(steps, fmt.Sprintf(
			"Eligible for preferential treatment under %s (subject to rules of origin)",
			strings.Join(remedies.FreeTradeAgreements, ", ")))
	}

	return steps
}
