package carbon

import "sort"

//go:generate go run ../../tools/update-grid-factors --output grid_factors_data.go

// GlobalAverageGridFactor is the CCF global average in metric tons CO2-eq per kWh.
const GlobalAverageGridFactor = 0.00039278

// kgPerMetricTon converts the CCF factors to kg.
const kgPerMetricTon = 1000.0

// GridIntensity is a named carbon intensity preset.
type GridIntensity struct {
	Region string `json:"region" yaml:"region"`

	// KgPerKWh is the carbon intensity in kg CO2-eq per kWh.
	KgPerKWh float64 `json:"kg_per_kwh" yaml:"kg_per_kwh"`
}

// LookupGridIntensity returns the carbon intensity for region in kg CO2-eq
// per kWh. "global" returns the global average. Unknown regions return false.
func LookupGridIntensity(region string) (float64, bool) {
	if region == "global" {
		return GlobalAverageGridFactor * kgPerMetricTon, true
	}
	factor, ok := GridEmissionFactors[region]
	if !ok {
		return 0, false
	}
	return factor * kgPerMetricTon, true
}

// GridIntensities returns every preset sorted by region name, followed by "global".
func GridIntensities() []GridIntensity {
	regions := make([]string, 0, len(GridEmissionFactors))
	for r := range GridEmissionFactors {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	out := make([]GridIntensity, 0, len(regions)+1)
	for _, r := range regions {
		out = append(out, GridIntensity{Region: r, KgPerKWh: GridEmissionFactors[r] * kgPerMetricTon})
	}
	out = append(out, GridIntensity{Region: "global", KgPerKWh: GlobalAverageGridFactor * kgPerMetricTon})
	return out
}
