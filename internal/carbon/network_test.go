package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNetwork(t *testing.T) {
	tests := []struct {
		name          string
		servers       float64
		portCount     int
		wantPerSwitch float64
		wantSwitches  float64
		wantCore      float64
	}{
		{"4-port fat tree", 16, 4, 16, 1, 4},
		{"48-port fat tree", 27_648, 48, 27_648, 1, 576},
		{"2-port minimum", 10, 2, 2, 5, 1},
		{"no servers", 0, 8, 128, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeNetwork(tt.servers, tt.portCount, TopologyFatTree)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPerSwitch, result.ServersPerSwitch)
			assert.Equal(t, tt.wantSwitches, result.NumberOfSwitches)
			assert.Equal(t, tt.wantCore, result.CoreSwitches)
			assert.Equal(t, tt.portCount, result.Pods)
			assert.InDelta(t, tt.wantSwitches*NetworkSwitchManufacturingKg, result.ManufacturingKg, 1e-9)
		})
	}
}

// TestComputeNetwork_TopologyIsInformational verifies every topology sizes identically.
func TestComputeNetwork_TopologyIsInformational(t *testing.T) {
	base, err := ComputeNetwork(5777.78, 4, TopologyFatTree)
	require.NoError(t, err)

	for _, topo := range Topologies() {
		t.Run(topo.String(), func(t *testing.T) {
			result, err := ComputeNetwork(5777.78, 4, topo)
			require.NoError(t, err)
			assert.Equal(t, topo, result.Topology)
			assert.Equal(t, base.NumberOfSwitches, result.NumberOfSwitches)
			assert.Equal(t, base.ManufacturingKg, result.ManufacturingKg)
		})
	}
}

func TestComputeNetwork_InvalidPortCount(t *testing.T) {
	for _, ports := range []int{-2, 0, 1, 3, 47} {
		_, err := ComputeNetwork(100, ports, TopologyCLOS)
		assertInvalidField(t, err, FieldPortCount)
	}
}

func TestComputeNetwork_InvalidServerCount(t *testing.T) {
	for _, servers := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		result, err := ComputeNetwork(servers, 4, TopologyFatTree)
		assertInvalidField(t, err, FieldServerCount)
		assert.Equal(t, NetworkResult{}, result)
	}
}

func TestParseTopology(t *testing.T) {
	tests := []struct {
		input   string
		want    Topology
		wantErr bool
	}{
		{"fat-tree", TopologyFatTree, false},
		{"Fat Tree", TopologyFatTree, false},
		{"CLOS", TopologyCLOS, false},
		{"Three-Tier", TopologyThreeTier, false},
		{"three_tier", TopologyThreeTier, false},
		{"Spine Leaf", TopologySpineLeaf, false},
		{"spine-leaf", TopologySpineLeaf, false},
		{"torus", TopologyFatTree, true},
		{"", TopologyFatTree, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTopology(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopology_TextRoundTrip(t *testing.T) {
	for _, topo := range Topologies() {
		text, err := topo.MarshalText()
		require.NoError(t, err)

		var parsed Topology
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, topo, parsed)
	}

	assert.Equal(t, "Topology(9)", Topology(9).String())
}
