package carbon

// DataCenterPowerProfile describes the facility power envelope.
type DataCenterPowerProfile struct {
	// PowerCapacityKW is the facility power capacity in kW (> 0).
	PowerCapacityKW float64 `json:"power_capacity_kw" yaml:"power_capacity_kw"`

	// PUE is the Power Usage Effectiveness (>= 1.0).
	PUE float64 `json:"pue" yaml:"pue"`

	// Utilization is the average system utilization (0.0 to 1.0).
	Utilization float64 `json:"utilization" yaml:"utilization"`

	// PerRackPowerKW is the power budget of one rack in kW (> 0).
	PerRackPowerKW float64 `json:"per_rack_power_kw" yaml:"per_rack_power_kw"`
}

// ITPowerKW returns the IT equipment power draw:
// capacity × utilization / PUE. The profile is not validated.
func (p DataCenterPowerProfile) ITPowerKW() float64 {
	return p.PowerCapacityKW * p.Utilization / p.PUE
}

// Validate checks the profile against the domain of the embodied formulas.
func (p DataCenterPowerProfile) Validate() error {
	if err := requireFinite(
		fieldValue{FieldPowerCapacity, p.PowerCapacityKW},
		fieldValue{FieldPUE, p.PUE},
		fieldValue{FieldUtilization, p.Utilization},
		fieldValue{FieldPerRackPower, p.PerRackPowerKW},
	); err != nil {
		return err
	}
	if p.PowerCapacityKW <= 0 {
		return invalidParam(FieldPowerCapacity, p.PowerCapacityKW, "must be > 0")
	}
	if p.PUE < MinPUE {
		return invalidParam(FieldPUE, p.PUE, "must be >= 1.0")
	}
	if p.Utilization < 0 || p.Utilization > 1 {
		return invalidParam(FieldUtilization, p.Utilization, "must be between 0 and 1")
	}
	if p.PerRackPowerKW <= 0 {
		return invalidParam(FieldPerRackPower, p.PerRackPowerKW, "must be > 0")
	}
	return nil
}

// DefaultPowerProfile returns the interactive defaults.
func DefaultPowerProfile() DataCenterPowerProfile {
	return DataCenterPowerProfile{
		PowerCapacityKW: DefaultPowerCapacityKW,
		PUE:             DefaultPUE,
		Utilization:     DefaultUtilization,
		PerRackPowerKW:  DefaultPerRackPowerKW,
	}
}

// EmbodiedConfig contains the inputs for the embodied IT calculation.
type EmbodiedConfig struct {
	// ServerModel is a catalog model name. Unknown names use DefaultServerModel.
	ServerModel string

	Power DataCenterPowerProfile

	// PortCount is the number of ports per switch (even, > 0).
	PortCount int

	// Topology is informational only.
	Topology Topology

	// ServerCountOverride replaces the derived server count for network sizing.
	// Nil uses the rack topology's server count.
	ServerCountOverride *float64
}

// OperationalProfile contains the inputs for the operational calculation.
type OperationalProfile struct {
	// CarbonIntensity is the energy source intensity in kg CO2-eq per kWh (> 0).
	CarbonIntensity float64 `json:"carbon_intensity_kg_per_kwh" yaml:"carbon_intensity_kg_per_kwh"`

	// LifetimeYears is the IT equipment service life (> 0).
	LifetimeYears int `json:"lifetime_years" yaml:"lifetime_years"`

	// WUE is the Water Usage Effectiveness in liters per kWh (>= 0).
	WUE float64 `json:"wue" yaml:"wue"`

	// Formula selects the daily carbon formula. The zero value is
	// FormulaLegacyHoursSquared.
	Formula DailyCarbonFormula `json:"daily_carbon_formula" yaml:"daily_carbon_formula"`
}

// DefaultOperationalProfile returns the interactive defaults.
func DefaultOperationalProfile() OperationalProfile {
	return OperationalProfile{
		CarbonIntensity: DefaultCarbonIntensity,
		LifetimeYears:   DefaultLifetimeYears,
		WUE:             DefaultWUE,
		Formula:         FormulaLegacyHoursSquared,
	}
}
