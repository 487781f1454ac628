package carbon

import "fmt"

// DailyCarbonFormula selects how daily carbon is derived from daily energy.
type DailyCarbonFormula int

const (
	// FormulaLegacyHoursSquared multiplies daily energy (already kWh per day)
	// by 24 a second time. It reproduces published v1 figures and is the default.
	FormulaLegacyHoursSquared DailyCarbonFormula = iota

	// FormulaCorrected uses intensity × daily energy.
	FormulaCorrected
)

// LegacyHoursSquaredQuirk is attached to results computed with
// FormulaLegacyHoursSquared.
const LegacyHoursSquaredQuirk = "daily carbon multiplies daily energy (kWh/day) by 24 again; " +
	"operational figures are 24x an energy-based estimate"

// String returns "legacy" or "corrected".
func (f DailyCarbonFormula) String() string {
	switch f {
	case FormulaLegacyHoursSquared:
		return "legacy"
	case FormulaCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("DailyCarbonFormula(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f DailyCarbonFormula) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DailyCarbonFormula) UnmarshalText(b []byte) error {
	switch string(b) {
	case "legacy", "":
		*f = FormulaLegacyHoursSquared
	case "corrected":
		*f = FormulaCorrected
	default:
		return fmt.Errorf("unknown daily carbon formula %q (want legacy or corrected)", string(b))
	}
	return nil
}

// OperationalResult is the lifetime energy and water footprint.
type OperationalResult struct {
	ITPowerKW float64 `json:"it_power_kw" yaml:"it_power_kw"`

	DailyEnergyKWh float64 `json:"daily_energy_kwh" yaml:"daily_energy_kwh"`
	DailyCarbonKg  float64 `json:"daily_carbon_kg" yaml:"daily_carbon_kg"`

	// LifetimeOperationalKg is lifetime years × 365 × daily carbon.
	LifetimeOperationalKg float64 `json:"lifetime_operational_kg" yaml:"lifetime_operational_kg"`

	// WaterConsumptionLiters is WUE × LifetimeOperationalKg.
	WaterConsumptionLiters float64 `json:"water_consumption_liters" yaml:"water_consumption_liters"`

	LifetimeWaterKg float64 `json:"lifetime_water_kg" yaml:"lifetime_water_kg"`

	// TotalOperationalKg is LifetimeOperationalKg + LifetimeWaterKg.
	TotalOperationalKg float64 `json:"total_operational_kg" yaml:"total_operational_kg"`

	Formula DailyCarbonFormula `json:"daily_carbon_formula" yaml:"daily_carbon_formula"`

	// Quirks lists known artifacts of the selected formula.
	Quirks []string `json:"quirks,omitempty" yaml:"quirks,omitempty"`
}

// Validate checks the profile against the domain of the operational formulas.
func (p OperationalProfile) Validate() error {
	if err := requireFinite(
		fieldValue{FieldCarbonIntensity, p.CarbonIntensity},
		fieldValue{FieldWUE, p.WUE},
	); err != nil {
		return err
	}
	if p.CarbonIntensity <= 0 {
		return invalidParam(FieldCarbonIntensity, p.CarbonIntensity, "must be > 0")
	}
	if p.LifetimeYears <= 0 {
		return invalidParam(FieldLifetimeYears, float64(p.LifetimeYears), "must be > 0")
	}
	if p.WUE < 0 {
		return invalidParam(FieldWUE, p.WUE, "must be >= 0")
	}
	if p.Formula != FormulaLegacyHoursSquared && p.Formula != FormulaCorrected {
		return invalidParam(FieldFormula, float64(p.Formula), "unknown formula")
	}
	return nil
}

// ComputeOperational calculates the operational footprint of itPowerKW of IT
// load over the profile's lifetime.
//
//  1. Daily energy (kWh) = IT power × 24
//  2. Daily carbon (kg) = intensity × daily energy × 24 (legacy) or intensity × daily energy (corrected)
//  3. Lifetime operational (kg) = years × 365 × daily carbon
//  4. Water (L) = WUE × lifetime operational
//  5. Water footprint (kg) = water × 0.376 × 0.001
func ComputeOperational(itPowerKW float64, p OperationalProfile) (OperationalResult, error) {
	if err := requireFinite(fieldValue{FieldITPower, itPowerKW}); err != nil {
		return OperationalResult{}, err
	}
	if itPowerKW < 0 {
		return OperationalResult{}, invalidParam(FieldITPower, itPowerKW, "must be >= 0")
	}
	if err := p.Validate(); err != nil {
		return OperationalResult{}, err
	}

	dailyEnergy := itPowerKW * HoursPerDay
	dailyCarbon := p.CarbonIntensity * dailyEnergy

	var quirks []string
	if p.Formula == FormulaLegacyHoursSquared {
		dailyCarbon *= HoursPerDay
		quirks = []string{LegacyHoursSquaredQuirk}
	}

	lifetime := float64(p.LifetimeYears) * DaysPerYear * dailyCarbon
	water := p.WUE * lifetime
	waterKg := water * WaterCarbonKgPerKL * LitersPerKL

	return OperationalResult{
		ITPowerKW:              itPowerKW,
		DailyEnergyKWh:         dailyEnergy,
		DailyCarbonKg:          dailyCarbon,
		LifetimeOperationalKg:  lifetime,
		WaterConsumptionLiters: water,
		LifetimeWaterKg:        waterKg,
		TotalOperationalKg:     lifetime + waterKg,
		Formula:                p.Formula,
		Quirks:                 quirks,
	}, nil
}

// Detail returns a human-readable explanation of the operational estimate.
func (r OperationalResult) Detail() string {
	return fmt.Sprintf("Operational: %.2f kW IT power, %.2f kWh/day, %.2f kgCO2e/day (%s formula), water %.2f L",
		r.ITPowerKW, r.DailyEnergyKWh, r.DailyCarbonKg, r.Formula, r.WaterConsumptionLiters)
}
