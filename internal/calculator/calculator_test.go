package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_AirShipmentBreakdown(t *testing.T) {
	breakdown, err := Calculate(Params{
		EnteredValue:           9000,
		GeneralDutyRatePercent: 16.5,
		Section301RatePercent:  7.5,
		ShippingMethod:         MethodAir,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1485.00, breakdown.GeneralDuty.Amount, 1e-9)
	assert.InDelta(t, 675.00, breakdown.Section301.Amount, 1e-9)
	assert.InDelta(t, 31.67, breakdown.MPF.Amount, 1e-9, "0.3464%% of 9000 is below the floor")
	assert.InDelta(t, 0, breakdown.HMF.Amount, 1e-9)
	assert.False(t, breakdown.HMF.Applicable)
	assert.InDelta(t, 2191.67, breakdown.TotalDuties, 1e-9)
	assert.InDelta(t, 11191.67, breakdown.TotalLandedCost, 1e-9)
	assert.True(t, breakdown.EffectiveRateDefined)
	assert.InDelta(t, 24.35, breakdown.EffectiveDutyRate, 1e-9)
}

func TestCalculate_MPFClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below floor", 1000, 31.67},
		{"within band", 100000, 346.40},
		{"above ceiling", 200000, 614.35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := Calculate(Params{EnteredValue: tt.value, ShippingMethod: MethodLand})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, breakdown.MPF.Amount, 1e-9)
			assert.True(t, breakdown.MPF.Applicable, "MPF applies regardless of rates or mode")
		})
	}
}

func TestCalculate_HMFOnlyForOcean(t *testing.T) {
	value := 50000.0

	ocean, err := Calculate(Params{EnteredValue: value, ShippingMethod: MethodOcean})
	require.NoError(t, err)
	air, err := Calculate(Params{EnteredValue: value, ShippingMethod: MethodAir})
	require.NoError(t, err)

	assert.InDelta(t, 62.50, ocean.HMF.Amount, 1e-9)
	assert.True(t, ocean.HMF.Applicable)
	assert.InDelta(t, HMFRate*100, ocean.HMF.Rate, 1e-9)

	assert.Zero(t, air.HMF.Amount)
	assert.False(t, air.HMF.Applicable)
	assert.Zero(t, air.HMF.Rate)

	assert.InDelta(t, value*HMFRate, ocean.TotalDuties-air.TotalDuties, 1e-9,
		"the modes differ by exactly the harbor fee")
}

func TestCalculate_ZeroEnteredValue(t *testing.T) {
	breakdown, err := Calculate(Params{EnteredValue: 0, ShippingMethod: MethodAir})
	require.NoError(t, err)

	assert.False(t, breakdown.EffectiveRateDefined)
	assert.Zero(t, breakdown.EffectiveDutyRate)
	assert.InDelta(t, MPFMin, breakdown.TotalDuties, 1e-9, "the MPF floor still applies")
}

func TestCalculate_LandedCostUsesReportedTotal(t *testing.T) {
	// A rate chosen so the unrounded component sum differs from the rounded
	// reported total; the landed cost must track the reported one.
	breakdown, err := Calculate(Params{
		EnteredValue:           333.33,
		GeneralDutyRatePercent: 3.333,
		ShippingMethod:         MethodLand,
	})
	require.NoError(t, err)

	assert.InDelta(t, breakdown.EnteredValue+breakdown.TotalDuties, breakdown.TotalLandedCost, 1e-9)
}

func TestCalculate_Errors(t *testing.T) {
	_, err := Calculate(Params{EnteredValue: -1, ShippingMethod: MethodAir})
	assert.Error(t, err)

	_, err = Calculate(Params{EnteredValue: 100, ShippingMethod: "rail"})
	assert.Error(t, err)

	_, err = Calculate(Params{EnteredValue: 100, ShippingMethod: ""})
	assert.Error(t, err)
}
