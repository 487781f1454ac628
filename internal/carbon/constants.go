// Package carbon provides lifecycle carbon footprint estimation for a data
// center: embodied (servers, network gear, building), operational (energy and
// water over the equipment lifetime) and end-of-life recycling.
//
// Every calculator is a pure function of its inputs. Results are in kilograms
// of CO2-equivalent (kg CO2-eq) unless the field name says otherwise.
package carbon

const (
	// ServersPerRack is the number of servers assumed to fit in one rack.
	ServersPerRack = 52

	// NetworkSwitchManufacturingKg is the manufacturing footprint of one
	// network switch in kg CO2-eq.
	NetworkSwitchManufacturingKg = 80.7

	// NetworkRecyclingDivisor and NetworkRecyclingFactor give the network
	// recycling credit: (network manufacturing / 61) * -2.
	NetworkRecyclingDivisor = 61.0
	NetworkRecyclingFactor  = -2.0

	// HoursPerDay is the day length used for daily energy.
	HoursPerDay = 24.0

	// DaysPerYear is the year length used for lifetime totals (no leap days).
	DaysPerYear = 365.0

	// WaterCarbonKgPerKL is the carbon intensity of supplied water in
	// kg CO2-eq per 1000 liters.
	WaterCarbonKgPerKL = 0.376

	// LitersPerKL converts liters to kiloliters.
	LitersPerKL = 0.001
)

// Construction constants.
const (
	// ReferenceBuildingAreaSqft is the floor area of the reference building the
	// material footprints were measured on.
	ReferenceBuildingAreaSqft = 5700.0

	// WorstCaseSqmPerSqft converts square feet to square meters (rounded as in
	// the source model).
	WorstCaseSqmPerSqft = 0.092

	// WorstCaseKgPerSqm is the flat-rate construction footprint per square meter.
	WorstCaseKgPerSqm = 71.0
)

// Defaults for interactive inputs.
const (
	DefaultPowerCapacityKW = 4000.0
	DefaultPUE             = 1.2
	DefaultUtilization     = 0.5
	DefaultPerRackPowerKW  = 15.0
	DefaultPortCount       = 4
	DefaultFloorAreaSqft   = 5000.0

	// DefaultCarbonIntensity is in kg CO2-eq per kWh (electricitymaps.com low-carbon grid).
	DefaultCarbonIntensity = 0.026
	DefaultLifetimeYears   = 5
	DefaultWUE             = 0.2

	// MinPUE is the physical lower bound of Power Usage Effectiveness.
	MinPUE = 1.0
)
