package calculator

import (
	"regexp"
	"strconv"
)

var (
	percentPattern = regexp.MustCompile(`([\d.]+)%`)
	centsPattern   = regexp.MustCompile(`([\d.]+)¢`)
)

// ParseDutyRate converts a tariff rate string like "16.5%" or "Free" into a
// numeric percentage. Compound unit rates such as "0.47¢/kg" have no exact
// ad-valorem equivalent; they are approximated by treating the cent figure as
// a fraction of a percent, matching long-standing display behavior. Anything
// unparseable yields 0 rather than an error so downstream output always has
// a renderable value.
func ParseDutyRate(rateStr string) float64 {
	if rateStr == "" || rateStr == "Free" {
		return 0
	}

	if m := percentPattern.FindStringSubmatch(rateStr); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	// Approximation, not a real conversion.
	if m := centsPattern.FindStringSubmatch(rateStr); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v / 100
		}
	}

	return 0
}
