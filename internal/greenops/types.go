// Package greenops turns data center footprints (kg CO2e) into relatable
// equivalencies such as miles driven or smartphones charged, using EPA
// published factors, and formats the large numbers involved for display.
package greenops

import "fmt"

// EquivalencyType is a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays is days of average US home electricity use.
	EquivalencyHomeDays
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type by name for JSON and YAML output.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CarbonInput is a carbon amount in any recognized unit.
type CarbonInput struct {
	Value float64 `json:"value" yaml:"value"`

	// Unit is one of g, kg, t, lb or their CO2e forms (gCO2e, kgCO2e, ...).
	Unit string `json:"unit" yaml:"unit"`
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type" yaml:"type"`
	Value          float64         `json:"value" yaml:"value"`
	FormattedValue string          `json:"formatted_value" yaml:"formatted_value"`
	Label          string          `json:"label" yaml:"label"`
}

// EquivalencyOutput holds every equivalency for one input.
type EquivalencyOutput struct {
	// InputKg is the input normalized to kilograms.
	InputKg float64 `json:"input_kg" yaml:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results,omitempty" yaml:"results,omitempty"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text,omitempty" yaml:"display_text,omitempty"`

	// CompactText is the short form, e.g. "(≈ 781 mi, 18,248 phones)".
	CompactText string `json:"compact_text,omitempty" yaml:"compact_text,omitempty"`

	// IsEmpty is set when the input was below MinEquivalencyThresholdKg.
	IsEmpty bool `json:"is_empty" yaml:"is_empty"`
}
