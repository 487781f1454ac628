package carbon

// Inputs is the full parameter set for one footprint estimate.
type Inputs struct {
	Embodied      EmbodiedConfig
	FloorAreaSqft float64
	Operational   OperationalProfile
}

// DefaultInputs returns the interactive defaults for every parameter.
func DefaultInputs() Inputs {
	return Inputs{
		Embodied: EmbodiedConfig{
			ServerModel: DefaultServerModel,
			Power:       DefaultPowerProfile(),
			PortCount:   DefaultPortCount,
			Topology:    TopologyFatTree,
		},
		FloorAreaSqft: DefaultFloorAreaSqft,
		Operational:   DefaultOperationalProfile(),
	}
}

// Share is one slice of a named total.
type Share struct {
	Label      string  `json:"label" yaml:"label"`
	ValueKg    float64 `json:"value_kg" yaml:"value_kg"`
	Proportion float64 `json:"proportion" yaml:"proportion"`
}

// Totals aggregates the lifecycle stages.
type Totals struct {
	// ITManufacturingKg is server plus network manufacturing.
	ITManufacturingKg float64 `json:"it_manufacturing_kg" yaml:"it_manufacturing_kg"`

	// ConstructionKg is the worst-case construction footprint.
	ConstructionKg float64 `json:"construction_kg" yaml:"construction_kg"`

	// OperationalKg is the operational total including water.
	OperationalKg float64 `json:"operational_kg" yaml:"operational_kg"`

	// RecyclingKg is the end-of-life total (usually negative).
	RecyclingKg float64 `json:"recycling_kg" yaml:"recycling_kg"`

	// NetLifecycleKg is the sum of the four stages.
	NetLifecycleKg float64 `json:"net_lifecycle_kg" yaml:"net_lifecycle_kg"`
}

// Report is the combined result of all four calculators.
type Report struct {
	Embodied     EmbodiedResult     `json:"embodied" yaml:"embodied"`
	Construction ConstructionResult `json:"construction" yaml:"construction"`
	Operational  OperationalResult  `json:"operational" yaml:"operational"`
	Recycling    RecyclingResult    `json:"recycling" yaml:"recycling"`
	Totals       Totals             `json:"totals" yaml:"totals"`

	// TotalBreakdown splits IT manufacturing, construction and lifetime
	// operational (energy only) into shares of their sum.
	TotalBreakdown []Share `json:"total_breakdown" yaml:"total_breakdown"`
}

// Compute runs every calculator. The embodied result is passed by value to
// the operational (IT power) and recycling (server count, network footprint)
// calculators. The first invalid parameter aborts the run.
func Compute(in Inputs) (Report, error) {
	embodied, err := ComputeEmbodied(in.Embodied)
	if err != nil {
		return Report{}, err
	}

	construction, err := ComputeConstruction(in.FloorAreaSqft)
	if err != nil {
		return Report{}, err
	}

	operational, err := ComputeOperational(embodied.ITPowerKW, in.Operational)
	if err != nil {
		return Report{}, err
	}

	recycling, err := ComputeRecycling(embodied.NumberOfServers, embodied.Network.ManufacturingKg)
	if err != nil {
		return Report{}, err
	}

	totals := Totals{
		ITManufacturingKg: embodied.TotalManufacturingKg(),
		ConstructionKg:    construction.WorstCaseFootprintKg,
		OperationalKg:     operational.TotalOperationalKg,
		RecyclingKg:       recycling.TotalRecyclingKg,
	}
	totals.NetLifecycleKg = totals.ITManufacturingKg + totals.ConstructionKg +
		totals.OperationalKg + totals.RecyclingKg

	return Report{
		Embodied:     embodied,
		Construction: construction,
		Operational:  operational,
		Recycling:    recycling,
		Totals:       totals,
		TotalBreakdown: Shares(
			Share{Label: "IT Manufacturing", ValueKg: embodied.ServerManufacturingKg},
			Share{Label: "Construction", ValueKg: construction.WorstCaseFootprintKg},
			Share{Label: "Operational", ValueKg: operational.LifetimeOperationalKg},
		),
	}, nil
}

// Shares fills in each share's proportion of the sum of all values.
// A zero sum leaves every proportion at zero.
func Shares(parts ...Share) []Share {
	var sum float64
	for _, p := range parts {
		sum += p.ValueKg
	}
	out := make([]Share, len(parts))
	for i, p := range parts {
		out[i] = p
		if sum != 0 {
			out[i].Proportion = p.ValueKg / sum
		}
	}
	return out
}

// Details returns the per-stage explanations in report order.
func (r Report) Details() []string {
	return []string{
		r.Embodied.Detail(),
		r.Construction.Detail(),
		r.Operational.Detail(),
		r.Recycling.Detail(),
	}
}
