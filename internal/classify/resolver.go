package classify

import (
	"regexp"
	"strings"

	"github.com/importworks/hts-helpers/internal/usitc"
)

// Candidate is a tariff record with effective duty rates resolved through
// hierarchical inheritance.
type Candidate struct {
	HtsCode        string   `json:"htsCode"`
	Description    string   `json:"description"`
	GeneralRate    string   `json:"generalRate"`
	SpecialRate    string   `json:"specialRate"`
	OtherRate      string   `json:"otherRate"`
	Units          []string `json:"units"`
	Section301Note string   `json:"section301Note,omitempty"`
	Indent         int      `json:"indent"`
}

// section301NotePattern matches footnote cross-references to the Chapter 99
// trade-remedy provisions (9903.88.*).
var section301NotePattern = regexp.MustCompile(`9903\.88`)

// ResolveRates folds over records in source order and resolves each entry's
// effective rates. Subordinate entries without their own rate inherit the
// nearest preceding rate; an entry carrying its own rate resets the
// accumulator for everything after it. Header rows (no code) seed
// inheritance for their descendants but are dropped from the output. A rate
// can legitimately resolve to empty when no ancestor carried one.
//
// The fold depends on the full sequence in original order; accumulators are
// local to the call, never shared across requests.
func ResolveRates(records []usitc.SearchResult) []Candidate {
	var lastGeneral, lastSpecial, lastOther string

	candidates := make([]Candidate, 0, len(records))
	for _, r := range records {
		if r.General != "" {
			lastGeneral = r.General
		}
		if r.Special != "" {
			lastSpecial = r.Special
		}
		if r.Other != "" {
			lastOther = r.Other
		}

		if r.HtsNo == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			HtsCode:        r.HtsNo,
			Description:    r.Description,
			GeneralRate:    lastGeneral,
			SpecialRate:    lastSpecial,
			OtherRate:      lastOther,
			Units:          r.Units,
			Section301Note: extractSection301Note(r.Footnotes),
			Indent:         r.IndentLevel(),
		})
	}
	return candidates
}

// extractSection301Note returns the first footnote value referencing the
// Section 301 provision family, or "".
func extractSection301Note(footnotes []usitc.Footnote) string {
	for _, fn := range footnotes {
		if fn.Value != "" && section301NotePattern.MatchString(fn.Value) {
			return strings.TrimSpace(fn.Value)
		}
	}
	return ""
}
