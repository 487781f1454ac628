package carbon

// RecyclingCredit is the per-server footprint of recovering or disposing of
// one material. Negative values are avoided emissions.
type RecyclingCredit struct {
	Material    string  `json:"material" yaml:"material"`
	KgPerServer float64 `json:"kg_per_server" yaml:"kg_per_server"`
}

// serverRecyclingCredits are per-server end-of-life values in kg CO2-eq.
var serverRecyclingCredits = []RecyclingCredit{
	{"aluminium", -5.3},
	{"steel", -21.1},
	{"paper", 5.13},
	{"thermal", 1.71},
	{"power", 0.7},
	{"copper", -8.8},
	{"gold", -169.14},
	{"palladium", -2.62},
	{"pwb", 0.81},
	{"silver", -0.17},
	{"platinum", -0.08},
	{"landfill", 0.06},
}

// ServerRecyclingCredits returns a copy of the per-server material table.
func ServerRecyclingCredits() []RecyclingCredit {
	out := make([]RecyclingCredit, len(serverRecyclingCredits))
	copy(out, serverRecyclingCredits)
	return out
}

// NetRecyclingPerServerKg returns the sum of all per-server material values.
func NetRecyclingPerServerKg() float64 {
	var sum float64
	for _, c := range serverRecyclingCredits {
		sum += c.KgPerServer
	}
	return sum
}

// RecyclingResult is the end-of-life footprint of servers and network gear.
type RecyclingResult struct {
	PerCategory []RecyclingCredit `json:"per_category" yaml:"per_category"`

	NetPerServerKg float64 `json:"net_per_server_kg" yaml:"net_per_server_kg"`

	// TotalServerRecyclingKg is NetPerServerKg × number of servers.
	TotalServerRecyclingKg float64 `json:"total_server_recycling_kg" yaml:"total_server_recycling_kg"`

	// NetworkRecyclingKg is (network manufacturing / 61) × -2.
	NetworkRecyclingKg float64 `json:"network_recycling_kg" yaml:"network_recycling_kg"`

	TotalRecyclingKg float64 `json:"total_recycling_kg" yaml:"total_recycling_kg"`
}

// ComputeRecycling calculates end-of-life credits for numberOfServers servers
// and a network with the given manufacturing footprint.
func ComputeRecycling(numberOfServers, networkManufacturingKg float64) (RecyclingResult, error) {
	if err := requireFinite(
		fieldValue{FieldNumberOfServers, numberOfServers},
		fieldValue{FieldNetworkFootprint, networkManufacturingKg},
	); err != nil {
		return RecyclingResult{}, err
	}
	if numberOfServers < 0 {
		return RecyclingResult{}, invalidParam(FieldNumberOfServers, numberOfServers, "must be >= 0")
	}
	if networkManufacturingKg < 0 {
		return RecyclingResult{}, invalidParam(FieldNetworkFootprint, networkManufacturingKg, "must be >= 0")
	}

	net := NetRecyclingPerServerKg()
	servers := net * numberOfServers
	network := networkManufacturingKg / NetworkRecyclingDivisor * NetworkRecyclingFactor

	return RecyclingResult{
		PerCategory:            ServerRecyclingCredits(),
		NetPerServerKg:         net,
		TotalServerRecyclingKg: servers,
		NetworkRecyclingKg:     network,
		TotalRecyclingKg:       servers + network,
	}, nil
}

// Detail returns a human-readable explanation of the recycling estimate.
func (r RecyclingResult) Detail() string {
	return "Recycling: " + formatInt(len(r.PerCategory)) + " materials, " +
		formatFloat(r.NetPerServerKg) + " kgCO2e/server; network credit " +
		formatFloat(r.NetworkRecyclingKg) + " kgCO2e"
}
