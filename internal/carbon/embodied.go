package carbon

import "fmt"

// EmbodiedResult is the embodied IT footprint: server manufacturing plus
// network equipment, with the rack sizing it was derived from.
type EmbodiedResult struct {
	Server ServerProfile `json:"server" yaml:"server"`

	// ITPowerKW is the IT equipment power draw in kW.
	ITPowerKW float64 `json:"it_power_kw" yaml:"it_power_kw"`

	NumberOfRacks   float64 `json:"number_of_racks" yaml:"number_of_racks"`
	NumberOfServers float64 `json:"number_of_servers" yaml:"number_of_servers"`

	// ServerManufacturingKg is NumberOfServers × Server.ManufacturingKg.
	ServerManufacturingKg float64 `json:"server_manufacturing_kg" yaml:"server_manufacturing_kg"`

	Network NetworkResult `json:"network" yaml:"network"`
}

// TotalManufacturingKg returns server plus network manufacturing footprint.
func (r EmbodiedResult) TotalManufacturingKg() float64 {
	return r.ServerManufacturingKg + r.Network.ManufacturingKg
}

// ComputeEmbodied calculates the embodied IT footprint.
//
// The calculation is a linear chain:
//  1. IT power (kW) = capacity × utilization / PUE
//  2. Racks = IT power / per-rack power
//  3. Servers = racks × 52
//  4. Server footprint = servers × model manufacturing footprint
//  5. Network sizing and footprint (see ComputeNetwork)
//
// The server model lookup never fails: unknown models use DefaultServerModel.
// Returns an *InvalidParameterError for inputs outside the formula domain.
func ComputeEmbodied(cfg EmbodiedConfig) (EmbodiedResult, error) {
	if err := cfg.Power.Validate(); err != nil {
		return EmbodiedResult{}, err
	}
	if err := validatePortCount(cfg.PortCount); err != nil {
		return EmbodiedResult{}, err
	}

	server := GetServerProfile(cfg.ServerModel)

	itPower := cfg.Power.ITPowerKW()
	racks := itPower / cfg.Power.PerRackPowerKW
	servers := racks * ServersPerRack

	networkServers := servers
	if cfg.ServerCountOverride != nil {
		networkServers = *cfg.ServerCountOverride
	}

	network, err := ComputeNetwork(networkServers, cfg.PortCount, cfg.Topology)
	if err != nil {
		return EmbodiedResult{}, err
	}

	return EmbodiedResult{
		Server:                server,
		ITPowerKW:             itPower,
		NumberOfRacks:         racks,
		NumberOfServers:       servers,
		ServerManufacturingKg: servers * server.ManufacturingKg,
		Network:               network,
	}, nil
}

// Detail returns a human-readable explanation of the embodied calculation.
func (r EmbodiedResult) Detail() string {
	return fmt.Sprintf("Embodied IT: %.2f kW IT power, %.2f racks × %d servers/rack = %.2f %s servers at %s kgCO2e/unit; "+
		"%.2f switches (%d-port %s) at %s kgCO2e/switch",
		r.ITPowerKW, r.NumberOfRacks, ServersPerRack, r.NumberOfServers, r.Server.Model, formatFloat(r.Server.ManufacturingKg),
		r.Network.NumberOfSwitches, r.Network.PortCount, r.Network.Topology, formatFloat(NetworkSwitchManufacturingKg))
}
