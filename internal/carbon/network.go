package carbon

import (
	"fmt"
	"strings"
)

// Topology is the data center network topology. It is informational only:
// every topology is sized with the same fat-tree formula.
type Topology int

const (
	// TopologyFatTree is a k-ary fat tree.
	TopologyFatTree Topology = iota

	// TopologyCLOS is a folded Clos network.
	TopologyCLOS

	// TopologyThreeTier is the classic core/aggregation/access design.
	TopologyThreeTier

	// TopologySpineLeaf is a two-tier spine-leaf fabric.
	TopologySpineLeaf
)

var topologyNames = map[Topology]string{
	TopologyFatTree:   "fat-tree",
	TopologyCLOS:      "clos",
	TopologyThreeTier: "three-tier",
	TopologySpineLeaf: "spine-leaf",
}

// String returns the canonical name, e.g. "fat-tree".
func (t Topology) String() string {
	if name, ok := topologyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// Topologies lists all known topologies in display order.
func Topologies() []Topology {
	return []Topology{TopologyFatTree, TopologyCLOS, TopologyThreeTier, TopologySpineLeaf}
}

// ParseTopology accepts the canonical name or the display label
// ("Fat Tree", "Spine Leaf", ...), case-insensitively.
func ParseTopology(s string) (Topology, error) {
	key := normalizeModelKey(s)
	for t, name := range topologyNames {
		if normalizeModelKey(name) == key {
			return t, nil
		}
	}
	return TopologyFatTree, fmt.Errorf("unknown network topology %q (want one of %s)", s, strings.Join(topologyList(), ", "))
}

func topologyList() []string {
	out := make([]string, 0, len(topologyNames))
	for _, t := range Topologies() {
		out = append(out, t.String())
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	parsed, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NetworkResult is the network equipment sizing and its manufacturing footprint.
type NetworkResult struct {
	Topology  Topology `json:"topology" yaml:"topology"`
	PortCount int      `json:"port_count" yaml:"port_count"`

	// ServerCount is the number of servers the fabric connects.
	ServerCount float64 `json:"server_count" yaml:"server_count"`

	// ServersPerSwitch is port_count^3 / 4.
	ServersPerSwitch float64 `json:"servers_per_switch" yaml:"servers_per_switch"`

	NumberOfSwitches float64 `json:"number_of_switches" yaml:"number_of_switches"`

	// CoreSwitches is (port_count/2)^2.
	CoreSwitches float64 `json:"core_switches" yaml:"core_switches"`

	// Pods equals port_count in a k-ary fat tree.
	Pods int `json:"pods" yaml:"pods"`

	// ManufacturingKg is NumberOfSwitches * NetworkSwitchManufacturingKg.
	ManufacturingKg float64 `json:"manufacturing_kg" yaml:"manufacturing_kg"`
}

// validatePortCount rejects port counts that make the fat-tree formulas
// ill-defined.
func validatePortCount(portCount int) error {
	if portCount <= 0 {
		return invalidParam(FieldPortCount, float64(portCount), "must be > 0")
	}
	if portCount%2 != 0 {
		return invalidParam(FieldPortCount, float64(portCount), "must be even")
	}
	return nil
}

// ComputeNetwork sizes the switch fabric for serverCount servers using
// port-count switches.
//
//  1. servers per switch = k^3 / 4
//  2. switches = servers / servers per switch
//  3. core switches = (k/2)^2, pods = k
//  4. footprint = switches × 80.7 kg CO2-eq
func ComputeNetwork(serverCount float64, portCount int, topology Topology) (NetworkResult, error) {
	if err := validatePortCount(portCount); err != nil {
		return NetworkResult{}, err
	}
	if err := requireFinite(fieldValue{FieldServerCount, serverCount}); err != nil {
		return NetworkResult{}, err
	}
	if serverCount < 0 {
		return NetworkResult{}, invalidParam(FieldServerCount, serverCount, "must be >= 0")
	}

	k := float64(portCount)
	perSwitch := k * k * k / 4
	switches := serverCount / perSwitch
	half := k / 2

	return NetworkResult{
		Topology:         topology,
		PortCount:        portCount,
		ServerCount:      serverCount,
		ServersPerSwitch: perSwitch,
		NumberOfSwitches: switches,
		CoreSwitches:     half * half,
		Pods:             portCount,
		ManufacturingKg:  switches * NetworkSwitchManufacturingKg,
	}, nil
}
