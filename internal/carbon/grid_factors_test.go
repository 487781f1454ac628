package carbon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGridEmissionFactors_AllWithinValidRange validates that every factor is in
// metric tons (0 to 2.0 t CO2e/kWh), not kg or grams.
func TestGridEmissionFactors_AllWithinValidRange(t *testing.T) {
	const minValidFactor = 0.0
	const maxValidFactor = 2.0

	for region, factor := range GridEmissionFactors {
		t.Run(region, func(t *testing.T) {
			assert.GreaterOrEqual(t, factor, minValidFactor,
				"Grid factor for %s should be >= 0 (got %f)", region, factor)
			assert.LessOrEqual(t, factor, maxValidFactor,
				"Grid factor for %s should be <= 2.0 metric tons CO2e/kWh (got %f)", region, factor)
		})
	}
}

func TestLookupGridIntensity(t *testing.T) {
	tests := []struct {
		region string
		want   float64
		wantOK bool
	}{
		{"us-east-1", 0.379, true},
		{"eu-north-1", 0.0088, true},
		{"ap-southeast-2", 0.79, true},
		{"global", 0.39278, true},
		{"mars-north-1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, ok := LookupGridIntensity(tt.region)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestLookupGridIntensity_UsableAsOperationalInput verifies presets pass validation.
func TestLookupGridIntensity_UsableAsOperationalInput(t *testing.T) {
	for _, g := range GridIntensities() {
		t.Run(g.Region, func(t *testing.T) {
			profile := DefaultOperationalProfile()
			profile.CarbonIntensity = g.KgPerKWh
			assert.NoError(t, profile.Validate())
		})
	}
}

func TestGridIntensities(t *testing.T) {
	presets := GridIntensities()
	require.Len(t, presets, len(GridEmissionFactors)+1)

	regions := make([]string, 0, len(presets)-1)
	for _, p := range presets[:len(presets)-1] {
		regions = append(regions, p.Region)
	}
	assert.True(t, sort.StringsAreSorted(regions), "regions should be sorted")
	assert.Equal(t, "global", presets[len(presets)-1].Region)
}
