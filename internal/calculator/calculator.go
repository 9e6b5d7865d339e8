package calculator

import (
	"fmt"
	"math"
)

// Customs fee formula constants (19 CFR 24).
const (
	MPFRate = 0.003464
	MPFMin  = 31.67
	MPFMax  = 614.35
	HMFRate = 0.00125
)

// Shipping methods accepted by Calculate. HMF applies to ocean entries only.
const (
	MethodOcean = "ocean"
	MethodAir   = "air"
	MethodLand  = "land"
)

// Params holds the inputs for a duty calculation. Rates are percentages
// (16.5 means 16.5%); zero means not applicable.
type Params struct {
	EnteredValue           float64
	GeneralDutyRatePercent float64
	Section301RatePercent  float64
	Section232RatePercent  float64
	AdCvdRatePercent       float64
	ShippingMethod         string
}

// Component is one fee line in the breakdown.
type Component struct {
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	Applicable bool    `json:"applicable"`
}

// DutyBreakdown is the complete landed-cost breakdown for an entry.
type DutyBreakdown struct {
	EnteredValue         float64   `json:"enteredValue"`
	GeneralDuty          Component `json:"generalDuty"`
	Section301           Component `json:"section301"`
	Section232           Component `json:"section232"`
	AdCvd                Component `json:"adCvd"`
	MPF                  Component `json:"mpf"`
	HMF                  Component `json:"hmf"`
	TotalDuties          float64   `json:"totalDuties"`
	EffectiveDutyRate    float64   `json:"effectiveDutyRate"`
	EffectiveRateDefined bool      `json:"effectiveRateDefined"`
	TotalLandedCost      float64   `json:"totalLandedCost"`
}

// Calculate computes the full duty and fee breakdown for an entry. Running
// totals use unrounded component values; rounding happens once at the output
// boundary so errors never compound across components. The landed cost is
// entered value plus the reported total, never re-derived.
func Calculate(p Params) (*DutyBreakdown, error) {
	if p.EnteredValue < 0 {
		return nil, fmt.Errorf("entered value must not be negative: %v", p.EnteredValue)
	}
	switch p.ShippingMethod {
	case MethodOcean, MethodAir, MethodLand:
	default:
		return nil, fmt.Errorf("unknown shipping method: %q", p.ShippingMethod)
	}

	generalDuty := p.EnteredValue * p.GeneralDutyRatePercent / 100
	section301 := p.EnteredValue * p.Section301RatePercent / 100
	section232 := p.EnteredValue * p.Section232RatePercent / 100
	adCvd := p.EnteredValue * p.AdCvdRatePercent / 100

	mpf := p.EnteredValue * MPFRate
	if mpf < MPFMin {
		mpf = MPFMin
	}
	if mpf > MPFMax {
		mpf = MPFMax
	}

	// HMF exists only for ocean entries; the multiplication is skipped
	// entirely for other modes.
	var hmf float64
	if p.ShippingMethod == MethodOcean {
		hmf = p.EnteredValue * HMFRate
	}

	totalDuties := round2(generalDuty + section301 + section232 + adCvd + mpf + hmf)

	breakdown := &DutyBreakdown{
		EnteredValue: round2(p.EnteredValue),
		GeneralDuty: Component{
			Rate:       p.GeneralDutyRatePercent,
			Amount:     round2(generalDuty),
			Applicable: p.GeneralDutyRatePercent > 0,
		},
		Section301: Component{
			Rate:       p.Section301RatePercent,
			Amount:     round2(section301),
			Applicable: p.Section301RatePercent > 0,
		},
		Section232: Component{
			Rate:       p.Section232RatePercent,
			Amount:     round2(section232),
			Applicable: p.Section232RatePercent > 0,
		},
		AdCvd: Component{
			Rate:       p.AdCvdRatePercent,
			Amount:     round2(adCvd),
			Applicable: p.AdCvdRatePercent > 0,
		},
		MPF: Component{
			Rate:       MPFRate * 100,
			Amount:     round2(mpf),
			Applicable: true,
		},
		HMF: Component{
			Amount:     round2(hmf),
			Applicable: p.ShippingMethod == MethodOcean,
		},
		TotalDuties:     totalDuties,
		TotalLandedCost: round2(p.EnteredValue + totalDuties),
	}
	if p.ShippingMethod == MethodOcean {
		breakdown.HMF.Rate = HMFRate * 100
	}

	if p.EnteredValue > 0 {
		breakdown.EffectiveDutyRate = round2(totalDuties / p.EnteredValue * 100)
		breakdown.EffectiveRateDefined = true
	}

	return breakdown, nil
}

// round2 rounds to 2 decimal places
func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
